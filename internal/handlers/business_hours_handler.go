package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
)

// BusinessHoursHandler expõe o expediente semanal (somente leitura; a tabela
// é imutável depois do startup).
type BusinessHoursHandler struct {
	hours schedule.WeekSchedule
}

func NewBusinessHoursHandler(hours schedule.WeekSchedule) *BusinessHoursHandler {
	return &BusinessHoursHandler{hours: hours}
}

type weekdayHours struct {
	Weekday int    `json:"dia_semana"`
	Name    string `json:"dia"`
	schedule.DaySchedule
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	days := h.hours.Days()

	out := make([]weekdayHours, 0, len(days))
	for wd, d := range days {
		out = append(out, weekdayHours{
			Weekday:     wd,
			Name:        schedule.DayName(wd),
			DaySchedule: d,
		})
	}

	httpresp.List(c, out)
}
