package appointment

import (
	"context"

	"github.com/TurnosApp/turnos-api/internal/audit"
	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/models"
)

// UpdateTurno substitui os campos de um turno existente (PUT completo,
// mesmo contrato do sistema original).
type UpdateTurno struct {
	repo  domain.Repository
	cache ReportCache
	audit *audit.Dispatcher
}

func NewUpdateTurno(
	repo domain.Repository,
	cache ReportCache,
	audit *audit.Dispatcher,
) *UpdateTurno {
	return &UpdateTurno{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateTurno) Execute(
	ctx context.Context,
	id uint,
	in CreateTurnoInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("turno_not_found")
	}

	if err := validateTurnoFields(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// O dia antigo e o novo podem ambos mudar de disponibilidade.
	oldEmployee, oldDate := ap.EmployeeID, ap.Date

	ap.ClientID = in.ClientID
	ap.EmployeeID = in.EmployeeID
	ap.ServiceID = in.ServiceID
	ap.Date = in.Date
	ap.StartTime = in.StartTime
	ap.EndTime = in.EndTime
	ap.Status = in.Status
	ap.Notes = in.Notes
	ap.Price = in.Price

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, oldEmployee, oldDate)
		uc.cache.InvalidateDay(ctx, ap.EmployeeID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "turno_updated",
		Entity:   "turno",
		EntityID: &ap.ID,
	})

	return ap, nil
}
