package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
	"github.com/TurnosApp/turnos-api/internal/models"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

type EmployeeRequest struct {
	Name        string `json:"nombre" binding:"required"`
	Specialties string `json:"especialidades"`
	Active      *bool  `json:"activo"`
}

func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.
		Order("nombre ASC").
		Find(&employees).Error; err != nil {

		httperr.Internal(c, "failed_to_list_employees", "Error interno del servidor al obtener empleados.")
		return
	}

	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "ID de empleado inválido. Debe ser un número.")
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
		return
	}

	httpresp.OK(c, emp)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos del empleado inválidos o faltantes.")
		return
	}

	emp := models.Employee{
		Name:        req.Name,
		Specialties: req.Specialties,
		Active:      true,
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := h.db.Create(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", "Error interno del servidor al agregar el empleado.")
		return
	}

	c.JSON(201, emp)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "ID de empleado inválido. Debe ser un número.")
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Los datos del empleado no son válidos.")
		return
	}

	emp.Name = req.Name
	emp.Specialties = req.Specialties
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := h.db.Save(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", "Error interno del servidor al modificar el empleado.")
		return
	}

	httpresp.OK(c, emp)
}

// Deactivate marca o empleado como inativo em vez de apagar: turnos
// históricos continuam referenciando a linha.
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "ID de empleado inválido. Debe ser un número.")
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
		return
	}

	emp.Active = false
	if err := h.db.Save(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", "Error interno del servidor al desactivar el empleado.")
		return
	}

	httpresp.OK(c, emp)
}
