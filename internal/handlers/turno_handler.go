package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
	"github.com/TurnosApp/turnos-api/internal/models"
	ucAppointment "github.com/TurnosApp/turnos-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type TurnoHandler struct {
	db *gorm.DB

	createUC   *ucAppointment.CreateTurno
	updateUC   *ucAppointment.UpdateTurno
	cancelUC   *ucAppointment.CancelTurno
	completeUC *ucAppointment.CompleteTurno
	deleteUC   *ucAppointment.DeleteTurno
	detailsUC  *ucAppointment.ListTurnosWithDetails
}

func NewTurnoHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateTurno,
	updateUC *ucAppointment.UpdateTurno,
	cancelUC *ucAppointment.CancelTurno,
	completeUC *ucAppointment.CompleteTurno,
	deleteUC *ucAppointment.DeleteTurno,
	detailsUC *ucAppointment.ListTurnosWithDetails,
) *TurnoHandler {
	return &TurnoHandler{
		db:         db,
		createUC:   createUC,
		updateUC:   updateUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		deleteUC:   deleteUC,
		detailsUC:  detailsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TurnoRequest struct {
	ClientID   uint    `json:"cliente_id" binding:"required"`
	EmployeeID uint    `json:"empleado_id" binding:"required"`
	ServiceID  uint    `json:"servicio_id" binding:"required"`
	Date       string  `json:"fecha" binding:"required"`
	StartTime  string  `json:"hora_inicio" binding:"required"`
	EndTime    string  `json:"hora_fin" binding:"required"`
	Status     string  `json:"estado"`
	Notes      string  `json:"observaciones"`
	Price      float64 `json:"precio"`
}

func (r TurnoRequest) toInput() ucAppointment.CreateTurnoInput {
	return ucAppointment.CreateTurnoInput{
		ClientID:   r.ClientID,
		EmployeeID: r.EmployeeID,
		ServiceID:  r.ServiceID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Status:     r.Status,
		Notes:      r.Notes,
		Price:      r.Price,
	}
}

// mapTurnoErrors traduz os BusinessError das validações para respostas HTTP
// com as mensagens que o front sempre exibiu.
func mapTurnoErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_ids"):
		httperr.BadRequest(c, "invalid_ids", "Los IDs de cliente, empleado o servicio son inválidos o faltantes.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "El formato de la fecha es inválido.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "El formato de la hora debe ser HH:MM.")
	case httperr.IsBusiness(err, "start_after_end"):
		httperr.BadRequest(c, "start_after_end", "La hora de inicio debe ser anterior a la hora de fin.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "El estado no es un estado de turno permitido.")
	case httperr.IsBusiness(err, "invalid_price"):
		httperr.BadRequest(c, "invalid_price", "El precio no es válido.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "El turno no admite ese cambio de estado.")
	case httperr.IsBusiness(err, "turno_not_found"):
		httperr.NotFound(c, "turno_not_found", "Turno no encontrado.")
	case httperr.IsConstraintConflict(err):
		httperr.BadRequest(c, "turno_conflict", "El turno entra en conflicto con otro existente.")
	default:
		httperr.Internal(c, "turno_error", "Error interno del servidor al procesar el turno.")
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID de turno inválido. Debe ser un número.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST / GET
// ======================================================

func (h *TurnoHandler) List(c *gin.Context) {
	var turnos []models.Appointment
	if err := h.db.
		Order("fecha ASC").
		Order("hora_inicio ASC").
		Find(&turnos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_turnos", "Error interno del servidor al obtener turnos.")
		return
	}

	httpresp.List(c, turnos)
}

func (h *TurnoHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var turno models.Appointment
	if err := h.db.First(&turno, id).Error; err != nil {
		httperr.NotFound(c, "turno_not_found", "Turno no encontrado.")
		return
	}

	httpresp.OK(c, turno)
}

// ======================================================
// LIST WITH DETAILS (agenda do dashboard)
// ======================================================

func (h *TurnoHandler) ListWithDetails(c *gin.Context) {
	var filter domain.DetailFilter

	if raw := c.Query("empleadoId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee_id", "ID de empleado inválido. Debe ser un número entero.")
			return
		}
		filter.EmployeeID = uint(id)
	}

	filter.Date = c.Query("fecha")

	turnos, err := h.detailsUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_turnos", "Error interno del servidor al obtener turnos con detalles.")
		return
	}

	httpresp.List(c, turnos)
}

// ======================================================
// CREATE
// ======================================================

func (h *TurnoHandler) Create(c *gin.Context) {
	var req TurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos del turno inválidos o faltantes.")
		return
	}

	turno, err := h.createUC.Execute(c.Request.Context(), req.toInput())
	if err != nil {
		mapTurnoErrors(c, err)
		return
	}

	c.JSON(201, gin.H{
		"mensaje": "Turno agregado con éxito",
		"turno":   turno,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *TurnoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Los datos del turno no son válidos.")
		return
	}

	turno, err := h.updateUC.Execute(c.Request.Context(), id, req.toInput())
	if err != nil {
		mapTurnoErrors(c, err)
		return
	}

	httpresp.OK(c, turno)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *TurnoHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	turno, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		mapTurnoErrors(c, err)
		return
	}

	httpresp.OK(c, turno)
}

func (h *TurnoHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	turno, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		mapTurnoErrors(c, err)
		return
	}

	httpresp.OK(c, turno)
}

// ======================================================
// DELETE
// ======================================================

func (h *TurnoHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		mapTurnoErrors(c, err)
		return
	}

	httpresp.OK(c, gin.H{"mensaje": "Turno eliminado con éxito."})
}
