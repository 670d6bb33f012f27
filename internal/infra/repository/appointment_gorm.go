package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *AppointmentGormRepository) EmployeeExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedIntervals(
	ctx context.Context,
	employeeID uint,
	fecha string,
) ([]schedule.BookedInterval, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("hora_inicio", "hora_fin", "estado").
		Where(
			"empleado_id = ? AND fecha = ? AND estado <> ?",
			employeeID, fecha, "cancelado",
		).
		Order("hora_inicio ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]schedule.BookedInterval, 0, len(rows))
	for _, ap := range rows {
		out = append(out, schedule.BookedInterval{
			Start:  ap.StartTime,
			End:    ap.EndTime,
			Status: ap.Status,
		})
	}

	return out, nil
}

// --------------------------------------------------
// Appointment (CRUD)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("fecha ASC").
		Order("hora_inicio ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsDetailed(
	ctx context.Context,
	filter domain.DetailFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service")

	if filter.EmployeeID != 0 {
		q = q.Where("empleado_id = ?", filter.EmployeeID)
	}
	if filter.Date != "" {
		q = q.Where("fecha = ?", filter.Date)
	}

	var aps []models.Appointment
	if err := q.
		Order("fecha ASC").
		Order("hora_inicio ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
