package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
	"github.com/TurnosApp/turnos-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("nombre ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Error interno del servidor al obtener servicios.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("servicio_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "ID de servicio inválido. Debe ser un número.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	httpresp.OK(c, svc)
}

// EmployeesForService lista os empleados ativos que atendem o servicio,
// via tabela de junção empleados_servicios.
func (h *ServiceHandler) EmployeesForService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("servicio_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "ID de servicio inválido. Debe ser un número.")
		return
	}

	var employees []models.Employee
	if err := h.db.
		Joins("JOIN empleados_servicios ON empleados_servicios.empleado_id = empleados.id").
		Where("empleados_servicios.servicio_id = ? AND empleados.activo = ?", id, true).
		Order("empleados.nombre ASC").
		Find(&employees).Error; err != nil {

		httperr.Internal(c, "failed_to_list_employees", "Error interno del servidor al buscar empleados por servicio.")
		return
	}

	httpresp.List(c, employees)
}
