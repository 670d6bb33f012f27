package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/TurnosApp/turnos-api/internal/audit"
	"github.com/TurnosApp/turnos-api/internal/config"
	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/handlers"
	infraCache "github.com/TurnosApp/turnos-api/internal/infra/cache"
	infraRepo "github.com/TurnosApp/turnos-api/internal/infra/repository"
	"github.com/TurnosApp/turnos-api/internal/middleware"
	ucAppointment "github.com/TurnosApp/turnos-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	weekSchedule := schedule.DefaultWeekSchedule()
	calendarStore := schedule.NewCalendarStore(schedule.NewCalendar(cfg.ClosedDates...))

	var reportCache ucAppointment.ReportCache
	if rdb != nil {
		reportCache = infraCache.NewAvailabilityCache(rdb, cfg.CacheTTL, log)
	}

	// ======================================================
	// 🧠 USE CASES — TURNOS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		weekSchedule,
		calendarStore,
		reportCache,
		log,
	)

	createTurnoUC := ucAppointment.NewCreateTurno(appointmentRepo, reportCache, auditDispatcher)
	updateTurnoUC := ucAppointment.NewUpdateTurno(appointmentRepo, reportCache, auditDispatcher)
	cancelTurnoUC := ucAppointment.NewCancelTurno(appointmentRepo, reportCache, auditDispatcher)
	completeTurnoUC := ucAppointment.NewCompleteTurno(appointmentRepo, reportCache, auditDispatcher)
	deleteTurnoUC := ucAppointment.NewDeleteTurno(appointmentRepo, reportCache, auditDispatcher)
	detailsUC := ucAppointment.NewListTurnosWithDetails(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	turnoHandler := handlers.NewTurnoHandler(
		db,
		createTurnoUC,
		updateTurnoUC,
		cancelTurnoUC,
		completeTurnoUC,
		deleteTurnoUC,
		detailsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(appointmentRepo, availabilityUC)
	serviceHandler := handlers.NewServiceHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	calendarHandler := handlers.NewCalendarHandler(calendarStore)
	businessHoursHandler := handlers.NewBusinessHoursHandler(weekSchedule)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 PÚBLICO (wizard de reservas)
		// ------------------------------
		api.GET("/servicios", serviceHandler.List)
		api.GET("/servicios/:servicio_id", serviceHandler.Get)
		api.GET("/servicios/:servicio_id/empleados", serviceHandler.EmployeesForService)

		// No Express original este endpoint vivia sob /turnos/…; aqui ganha
		// prefixo próprio porque o router do gin não mistura segmento
		// estático com :id na mesma posição.
		api.GET("/disponibilidad/:empleado_id/:servicio_id/:fecha", availabilityHandler.Get)
		api.POST("/turnos", turnoHandler.Create)

		api.GET("/horarios-negocio", businessHoursHandler.Get)
		api.GET("/calendario/dias-no-laborables", calendarHandler.List)

		// ------------------------------
		// 🔐 DASHBOARD (JWT)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// TURNOS
			secured.GET("/turnos", turnoHandler.List)
			secured.GET("/agenda", turnoHandler.ListWithDetails)
			secured.GET("/turnos/:id", turnoHandler.Get)
			secured.PUT("/turnos/:id", turnoHandler.Update)
			secured.PATCH("/turnos/:id/cancelar", turnoHandler.Cancel)
			secured.PATCH("/turnos/:id/completar", turnoHandler.Complete)
			secured.DELETE("/turnos/:id", turnoHandler.Delete)

			// EMPLEADOS
			secured.GET("/empleados", employeeHandler.List)
			secured.GET("/empleados/:id", employeeHandler.Get)
			secured.POST("/empleados", employeeHandler.Create)
			secured.PUT("/empleados/:id", employeeHandler.Update)
			secured.PATCH("/empleados/:id/desactivar", employeeHandler.Deactivate)

			// CLIENTES
			secured.GET("/clientes", clientHandler.List)
			secured.GET("/clientes/:id", clientHandler.Get)
			secured.POST("/clientes", clientHandler.Create)
			secured.PUT("/clientes/:id", clientHandler.Update)
			secured.DELETE("/clientes/:id", clientHandler.Delete)

			// CALENDARIO
			secured.POST("/calendario/dias-no-laborables", calendarHandler.Add)
			secured.DELETE("/calendario/dias-no-laborables/:fecha", calendarHandler.Remove)

			// AUDITORÍA
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
