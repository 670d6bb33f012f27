package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportTotals(t *testing.T) {
	day := DaySchedule{OpensAt: "09:00", ClosesAt: "18:00", Open: true}

	candidates := GenerateSlots(day.OpensAt, day.ClosesAt, 30)
	occupied := []BookedInterval{{Start: "09:00", End: "09:30", Status: "confirmado"}}
	available := FilterAvailable(candidates, occupied)

	r := NewReport("2026-03-03", 4, day, 2, candidates, available, occupied)

	assert.Equal(t, "2026-03-03", r.Date)
	assert.Equal(t, uint(4), r.EmployeeID)
	assert.Equal(t, 17, r.TotalAvailable)
	assert.Equal(t, 1, r.TotalOccupied)
	assert.Equal(t, 18, r.Summary.TotalPossibleSlots)
	assert.Equal(t, 6, r.Summary.OccupancyPercentage) // round(1/18*100)
	assert.Equal(t, "Martes", r.Summary.Day)
	assert.False(t, r.Summary.Closed)

	require.NotNil(t, r.BusinessHours)
	assert.Equal(t, "09:00", r.BusinessHours.OpensAt)
	assert.Equal(t, "18:00", r.BusinessHours.ClosesAt)
	assert.Equal(t, "Martes", r.BusinessHours.Day)
}

func TestOccupancyPercentage(t *testing.T) {
	assert.Equal(t, 0, occupancyPercentage(0, 18))
	assert.Equal(t, 6, occupancyPercentage(1, 18))   // 5.55 arredonda para cima
	assert.Equal(t, 50, occupancyPercentage(9, 18))
	assert.Equal(t, 100, occupancyPercentage(18, 18))
	assert.Equal(t, 0, occupancyPercentage(3, 0))
	assert.Equal(t, 33, occupancyPercentage(1, 3))
	assert.Equal(t, 67, occupancyPercentage(2, 3))
}

func TestNewClosedReport(t *testing.T) {
	r := NewClosedReport("2026-03-01", 4, 0)

	assert.Equal(t, "El negocio está cerrado este día", r.Message)
	assert.True(t, r.Summary.Closed)
	assert.Equal(t, "Domingo", r.Summary.Day)
	assert.Equal(t, 0, r.Summary.TotalPossibleSlots)
	assert.Equal(t, 0, r.TotalAvailable)
	assert.Equal(t, 0, r.TotalOccupied)
	assert.NotNil(t, r.AvailableSlots)
	assert.Empty(t, r.AvailableSlots)
	assert.Nil(t, r.BusinessHours)
}

func TestReportJSONContract(t *testing.T) {
	day := DaySchedule{OpensAt: "13:00", ClosesAt: "21:00", Open: true}
	candidates := GenerateSlots(day.OpensAt, day.ClosesAt, 60)
	r := NewReport("2026-03-02", 1, day, 1, candidates, candidates, nil)

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"fecha", "empleado_id",
		"horarios_disponibles", "horarios_ocupados",
		"total_disponibles", "total_ocupados",
		"horarios_negocio", "resumen",
	} {
		assert.Contains(t, decoded, key)
	}

	resumen, ok := decoded["resumen"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, resumen, "total_slots_posibles")
	assert.Contains(t, resumen, "porcentaje_ocupacion")
	assert.Contains(t, resumen, "cerrado")

	// Dia aberto não carrega mensaje.
	assert.NotContains(t, decoded, "mensaje")
}
