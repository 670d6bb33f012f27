package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
)

var calendarDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CalendarHandler administra os días no laborables. Cada alteração produz um
// novo Calendar e o publica no store; o valor vigente nunca é mutado.
type CalendarHandler struct {
	store *schedule.CalendarStore
}

func NewCalendarHandler(store *schedule.CalendarStore) *CalendarHandler {
	return &CalendarHandler{store: store}
}

type ClosedDateRequest struct {
	Date   string `json:"fecha" binding:"required"`
	Reason string `json:"motivo"`
}

func (h *CalendarHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.Current().Dates())
}

func (h *CalendarHandler) Add(c *gin.Context) {
	var req ClosedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Fecha obligatoria.")
		return
	}

	if !calendarDateRe.MatchString(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Use YYYY-MM-DD.")
		return
	}

	current := h.store.Current()
	if current.Closed(req.Date) {
		httperr.BadRequest(c, "date_already_closed", "La fecha ya está marcada como no laborable.")
		return
	}

	h.store.Swap(current.Add(req.Date))

	c.JSON(201, gin.H{
		"mensaje": "Día no laborable agregado.",
		"fecha":   req.Date,
	})
}

func (h *CalendarHandler) Remove(c *gin.Context) {
	fecha := c.Param("fecha")
	if !calendarDateRe.MatchString(fecha) {
		httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Use YYYY-MM-DD.")
		return
	}

	current := h.store.Current()
	if !current.Closed(fecha) {
		httperr.NotFound(c, "date_not_closed", "La fecha no está marcada como no laborable.")
		return
	}

	h.store.Swap(current.Remove(fecha))

	httpresp.OK(c, gin.H{"mensaje": "Día no laborable removido."})
}
