package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/httperr"
)

// ReportCache guarda relatórios de disponibilidade já calculados. A
// implementação fica na infra (Redis); aqui só importa o contrato. Todo uso
// é best-effort: cache indisponível nunca derruba a consulta.
type ReportCache interface {
	GetReport(ctx context.Context, employeeID, serviceID uint, fecha string) (*schedule.AvailabilityReport, bool)
	SetReport(ctx context.Context, employeeID, serviceID uint, fecha string, report *schedule.AvailabilityReport)
	InvalidateDay(ctx context.Context, employeeID uint, fecha string)
}

// GetAvailability é o motor de disponibilidade: dado (empleado, servicio,
// fecha), calcula os slots livres do dia cruzando o expediente semanal, o
// calendário de dias não laborables e os turnos já reservados.
//
// O motor não valida a existência do empleado: um empleado desconhecido
// produz um dia totalmente livre. Quem precisa da checagem (o handler da
// API) a faz antes de chamar aqui.
type GetAvailability struct {
	repo     domain.Repository
	hours    schedule.WeekSchedule
	calendar *schedule.CalendarStore
	cache    ReportCache
	log      zerolog.Logger
}

func NewGetAvailability(
	repo domain.Repository,
	hours schedule.WeekSchedule,
	calendar *schedule.CalendarStore,
	cache ReportCache,
	log zerolog.Logger,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		hours:    hours,
		calendar: calendar,
		cache:    cache,
		log:      log,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*schedule.AvailabilityReport, error) {

	// Fecha malformada é erro de validação; dia fechado, mais abaixo,
	// é um relatório normal.
	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	weekday := int(day.Weekday())

	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if uc.calendar != nil && uc.calendar.Current().Closed(in.Date) {
		return schedule.NewClosedReport(in.Date, in.EmployeeID, weekday), nil
	}

	hours, open := uc.hours.Day(day.Weekday())
	if !open {
		return schedule.NewClosedReport(in.Date, in.EmployeeID, weekday), nil
	}

	if uc.cache != nil {
		if report, ok := uc.cache.GetReport(ctx, in.EmployeeID, in.ServiceID, in.Date); ok {
			return report, nil
		}
	}

	occupied, err := uc.repo.ListBookedIntervals(ctx, in.EmployeeID, in.Date)
	if err != nil {
		// Falha de leitura do store propaga intacta; sem retry local.
		return nil, err
	}

	candidates := schedule.GenerateSlots(hours.OpensAt, hours.ClosesAt, svc.DurationMin)
	available := schedule.FilterAvailable(candidates, occupied)

	report := schedule.NewReport(
		in.Date,
		in.EmployeeID,
		hours,
		weekday,
		candidates,
		available,
		occupied,
	)

	if uc.cache != nil {
		uc.cache.SetReport(ctx, in.EmployeeID, in.ServiceID, in.Date, report)
	}

	uc.log.Debug().
		Uint("empleado_id", in.EmployeeID).
		Str("fecha", in.Date).
		Int("disponibles", report.TotalAvailable).
		Int("ocupados", report.TotalOccupied).
		Msg("disponibilidad calculada")

	return report, nil
}
