package appointment

import (
	"context"

	"github.com/TurnosApp/turnos-api/internal/audit"
	"github.com/TurnosApp/turnos-api/internal/domain/appointment"
	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/models"
)

type CompleteTurno struct {
	repo  domain.Repository
	cache ReportCache
	audit *audit.Dispatcher
}

func NewCompleteTurno(
	repo domain.Repository,
	cache ReportCache,
	audit *audit.Dispatcher,
) *CompleteTurno {
	return &CompleteTurno{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CompleteTurno) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("turno_not_found")
	}

	if err := appointment.Complete(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, ap.EmployeeID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "turno_completed",
		Entity:   "turno",
		EntityID: &ap.ID,
	})

	return ap, nil
}
