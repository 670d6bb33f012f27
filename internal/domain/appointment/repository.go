package appointment

import (
	"context"

	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/models"
)

// DetailFilter filtra a listagem detalhada de turnos; zero value = sem filtro.
type DetailFilter struct {
	EmployeeID uint
	Date       string
}

type Repository interface {
	// -------- Service --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Employee --------
	EmployeeExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Availability --------
	// ListBookedIntervals devolve os intervalos do empleado na fecha,
	// já sem os cancelados, ordenados por hora_inicio.
	ListBookedIntervals(
		ctx context.Context,
		employeeID uint,
		fecha string,
	) ([]schedule.BookedInterval, error)

	// -------- Appointment (CRUD) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsDetailed(
		ctx context.Context,
		filter DetailFilter,
	) ([]models.Appointment, error)
}
