package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/models"
)

// ---------------------------------------------------
// Fakes
// ---------------------------------------------------

type fakeRepo struct {
	services  map[uint]*models.Service
	booked    []schedule.BookedInterval
	bookedErr error

	bookedCalls int
}

func (f *fakeRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return svc, nil
}

func (f *fakeRepo) EmployeeExists(ctx context.Context, id uint) (bool, error) {
	return true, nil
}

func (f *fakeRepo) ListBookedIntervals(ctx context.Context, employeeID uint, fecha string) ([]schedule.BookedInterval, error) {
	f.bookedCalls++
	if f.bookedErr != nil {
		return nil, f.bookedErr
	}
	return f.booked, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error { return nil }
func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error { return nil }
func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error                { return nil }
func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeRepo) ListAppointmentsDetailed(ctx context.Context, filter domain.DetailFilter) ([]models.Appointment, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeCache struct {
	stored map[string]*schedule.AvailabilityReport
	sets   int
	hits   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: map[string]*schedule.AvailabilityReport{}}
}

func (f *fakeCache) GetReport(ctx context.Context, employeeID, serviceID uint, fecha string) (*schedule.AvailabilityReport, bool) {
	r, ok := f.stored[fecha]
	if ok {
		f.hits++
	}
	return r, ok
}

func (f *fakeCache) SetReport(ctx context.Context, employeeID, serviceID uint, fecha string, report *schedule.AvailabilityReport) {
	f.sets++
	f.stored[fecha] = report
}

func (f *fakeCache) InvalidateDay(ctx context.Context, employeeID uint, fecha string) {
	f.stored = map[string]*schedule.AvailabilityReport{}
}

// ---------------------------------------------------
// Helpers
// ---------------------------------------------------

// Expediente de teste: segunda a sábado 09:00–18:00, domingo fechado.
func testSchedule() schedule.WeekSchedule {
	days := map[int]schedule.DaySchedule{}
	for wd := 1; wd <= 6; wd++ {
		days[wd] = schedule.DaySchedule{OpensAt: "09:00", ClosesAt: "18:00", Open: true}
	}
	return schedule.NewWeekSchedule(days)
}

func newEngine(repo *fakeRepo, cal schedule.Calendar, cache ReportCache) *GetAvailability {
	return NewGetAvailability(
		repo,
		testSchedule(),
		schedule.NewCalendarStore(cal),
		cache,
		zerolog.Nop(),
	)
}

func repoWith(durationMin int, booked ...schedule.BookedInterval) *fakeRepo {
	return &fakeRepo{
		services: map[uint]*models.Service{
			1: {ID: 1, Name: "Corte", DurationMin: durationMin},
		},
		booked: booked,
	}
}

// 2026-03-02 é segunda; 2026-03-01 é domingo.
const (
	monday = "2026-03-02"
	sunday = "2026-03-01"
)

// ---------------------------------------------------
// Tests
// ---------------------------------------------------

func TestGetAvailabilityOpenDayNoBookings(t *testing.T) {
	uc := newEngine(repoWith(30), schedule.NewCalendar(), nil)

	r, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: 4, ServiceID: 1, Date: monday,
	})
	require.NoError(t, err)

	assert.Equal(t, monday, r.Date)
	assert.Equal(t, uint(4), r.EmployeeID)
	assert.Equal(t, 18, r.TotalAvailable)
	assert.Equal(t, 0, r.TotalOccupied)
	assert.Equal(t, 18, r.Summary.TotalPossibleSlots)
	assert.Equal(t, 0, r.Summary.OccupancyPercentage)
	assert.Equal(t, "Lunes", r.Summary.Day)
	assert.False(t, r.Summary.Closed)
	assert.Equal(t, "09:00", r.AvailableSlots[0].Start)
	assert.Equal(t, "18:00", r.AvailableSlots[len(r.AvailableSlots)-1].End)
}

func TestGetAvailabilityWithBooking(t *testing.T) {
	uc := newEngine(
		repoWith(30, schedule.BookedInterval{Start: "09:00", End: "09:30", Status: "confirmado"}),
		schedule.NewCalendar(),
		nil,
	)

	r, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: 4, ServiceID: 1, Date: monday,
	})
	require.NoError(t, err)

	assert.Equal(t, 17, r.TotalAvailable)
	assert.Equal(t, 1, r.TotalOccupied)
	assert.Equal(t, 18, r.Summary.TotalPossibleSlots)
	assert.Equal(t, 6, r.Summary.OccupancyPercentage)
	assert.Equal(t, "09:30", r.AvailableSlots[0].Start, "o slot das 09:00 saiu da lista")
}

func TestGetAvailabilityLongerServiceMeansFewerSlots(t *testing.T) {
	uc := newEngine(repoWith(45), schedule.NewCalendar(), nil)

	r, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: 4, ServiceID: 1, Date: monday,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, r.Summary.TotalPossibleSlots)
	assert.Equal(t, "17:00", r.AvailableSlots[len(r.AvailableSlots)-1].Start)
}

func TestGetAvailabilityIdempotent(t *testing.T) {
	repo := repoWith(30, schedule.BookedInterval{Start: "10:00", End: "10:30", Status: "pendiente"})
	uc := newEngine(repo, schedule.NewCalendar(), nil)

	in := domain.AvailabilityInput{EmployeeID: 4, ServiceID: 1, Date: monday}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailabilityClosedWeekday(t *testing.T) {
	repo := repoWith(30)
	uc := newEngine(repo, schedule.NewCalendar(), nil)

	r, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: 4, ServiceID: 1, Date: sunday,
	})
	require.NoError(t, err)

	assert.True(t, r.Summary.Closed)
	assert.Equal(t, "Domingo", r.Summary.Day)
	assert.Equal(t, "El negocio está cerrado este día", r.Message)
	assert.Empty(t, r.AvailableSlots)
	assert.Zero(t, repo.bookedCalls, "dia fechado não consulta o banco")
}

func TestGetAvailabilityCalendarClosedDate(t *testing.T) {
	repo := repoWith(30)
	uc := newEngine(repo, schedule.NewCalendar(monday), nil)

	r, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: 4, ServiceID: 1, Date: monday,
	})
	require.NoError(t, err)

	assert.True(t, r.Summary.Closed)
	assert.Zero(t, repo.bookedCalls)
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	uc := newEngine(repoWith(30), schedule.NewCalendar(), nil)

	for _, fecha := range []string{"02/03/2026", "2026-3-2", "mañana", ""} {
		_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
			EmployeeID: 4, ServiceID: 1, Date: fecha,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date"), "%q", fecha)
	}
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	uc := newEngine(repoWith(30), schedule.NewCalendar(), nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: 4, ServiceID: 99, Date: monday,
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailabilityRepoErrorPropagates(t *testing.T) {
	repo := repoWith(30)
	boom := errors.New("conexión perdida")
	repo.bookedErr = boom

	uc := newEngine(repo, schedule.NewCalendar(), nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		EmployeeID: 4, ServiceID: 1, Date: monday,
	})
	assert.ErrorIs(t, err, boom)
}

func TestGetAvailabilityUsesCache(t *testing.T) {
	repo := repoWith(30)
	cache := newFakeCache()
	uc := newEngine(repo, schedule.NewCalendar(), cache)

	in := domain.AvailabilityInput{EmployeeID: 4, ServiceID: 1, Date: monday}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, repo.bookedCalls)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, repo.bookedCalls, "hit de cache não volta ao banco")
	assert.Equal(t, first, second)
}
