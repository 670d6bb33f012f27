package appointment

import (
	"context"

	"github.com/TurnosApp/turnos-api/internal/audit"
	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/httperr"
)

type DeleteTurno struct {
	repo  domain.Repository
	cache ReportCache
	audit *audit.Dispatcher
}

func NewDeleteTurno(
	repo domain.Repository,
	cache ReportCache,
	audit *audit.Dispatcher,
) *DeleteTurno {
	return &DeleteTurno{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteTurno) Execute(ctx context.Context, id uint) error {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("turno_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, ap.EmployeeID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "turno_deleted",
		Entity:   "turno",
		EntityID: &ap.ID,
	})

	return nil
}
