package appointment

import (
	"context"

	"github.com/TurnosApp/turnos-api/internal/audit"
	"github.com/TurnosApp/turnos-api/internal/domain/appointment"
	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/models"
)

type CancelTurno struct {
	repo  domain.Repository
	cache ReportCache
	audit *audit.Dispatcher
}

func NewCancelTurno(
	repo domain.Repository,
	cache ReportCache,
	audit *audit.Dispatcher,
) *CancelTurno {
	return &CancelTurno{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CancelTurno) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("turno_not_found")
	}

	if err := appointment.Cancel(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, ap.EmployeeID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "turno_cancelled",
		Entity:   "turno",
		EntityID: &ap.ID,
	})

	return ap, nil
}
