package appointment

import (
	"context"
	"time"

	"github.com/TurnosApp/turnos-api/internal/audit"
	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateTurnoInput struct {
	ClientID   uint
	EmployeeID uint
	ServiceID  uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM

	Status string
	Notes  string
	Price  float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateTurno struct {
	repo  domain.Repository
	cache ReportCache
	audit *audit.Dispatcher
}

func NewCreateTurno(
	repo domain.Repository,
	cache ReportCache,
	audit *audit.Dispatcher,
) *CreateTurno {
	return &CreateTurno{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// validateTurnoFields concentra as validações compartilhadas entre criação e
// modificação de turnos. Devolve um BusinessError por campo inválido.
func validateTurnoFields(in CreateTurnoInput) error {
	if in.ClientID == 0 || in.EmployeeID == 0 || in.ServiceID == 0 {
		return httperr.ErrBusiness("invalid_ids")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	if !schedule.IsValidTime(in.StartTime) || !schedule.IsValidTime(in.EndTime) {
		return httperr.ErrBusiness("invalid_time")
	}

	if in.StartTime >= in.EndTime {
		return httperr.ErrBusiness("start_after_end")
	}

	if in.Status != "" && !domain.IsValidStatus(in.Status) {
		return httperr.ErrBusiness("invalid_status")
	}

	if in.Price < 0 {
		return httperr.ErrBusiness("invalid_price")
	}

	return nil
}

func (uc *CreateTurno) Execute(
	ctx context.Context,
	in CreateTurnoInput,
) (*models.Appointment, error) {

	if err := validateTurnoFields(in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	ap := &models.Appointment{
		ClientID:   in.ClientID,
		EmployeeID: in.EmployeeID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Status:     status,
		Notes:      in.Notes,
		Price:      in.Price,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, ap.EmployeeID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "turno_created",
		Entity:   "turno",
		EntityID: &ap.ID,
	})

	return ap, nil
}
