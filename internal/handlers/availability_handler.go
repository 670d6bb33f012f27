package handlers

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
	ucAppointment "github.com/TurnosApp/turnos-api/internal/usecase/appointment"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AvailabilityHandler expõe o motor de disponibilidade:
// GET /disponibilidad/:empleado_id/:servicio_id/:fecha
type AvailabilityHandler struct {
	repo           domain.Repository
	availabilityUC *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(
	repo domain.Repository,
	availabilityUC *ucAppointment.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo:           repo,
		availabilityUC: availabilityUC,
	}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("empleado_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "ID de empleado inválido. Debe ser un número.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Param("servicio_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "ID de servicio inválido. Debe ser un número.")
		return
	}

	fecha := c.Param("fecha")
	if !dateRe.MatchString(fecha) {
		httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Use YYYY-MM-DD.")
		return
	}

	// O motor trata empleado desconhecido como dia livre; a checagem de
	// existência é responsabilidade desta camada.
	exists, err := h.repo.EmployeeExists(c.Request.Context(), uint(employeeID))
	if err != nil {
		httperr.Internal(c, "availability_failed", "Error interno del servidor al obtener horarios disponibles.")
		return
	}
	if !exists {
		httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
		return
	}

	report, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			EmployeeID: uint(employeeID),
			ServiceID:  uint(serviceID),
			Date:       fecha,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Use YYYY-MM-DD.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		default:
			httperr.Internal(c, "availability_failed", "Error interno del servidor al obtener horarios disponibles.")
		}
		return
	}

	httpresp.OK(c, report)
}
