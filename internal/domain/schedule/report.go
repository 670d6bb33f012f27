package schedule

import "math"

// BusinessHours é o resumo do expediente do dia consultado.
type BusinessHours struct {
	OpensAt  string `json:"apertura"`
	ClosesAt string `json:"cierre"`
	Day      string `json:"dia"`
}

// Summary agrega os totais do relatório.
type Summary struct {
	TotalPossibleSlots  int    `json:"total_slots_posibles"`
	OccupancyPercentage int    `json:"porcentaje_ocupacion"`
	Day                 string `json:"dia"`
	Closed              bool   `json:"cerrado"`
}

// AvailabilityReport é a resposta de disponibilidade de um empleado em uma
// fecha. O shape JSON é o contrato histórico da API (campos em espanhol).
// Construído por consulta, nunca mutado depois.
type AvailabilityReport struct {
	Date           string           `json:"fecha"`
	EmployeeID     uint             `json:"empleado_id"`
	Message        string           `json:"mensaje,omitempty"`
	AvailableSlots []TimeSlot       `json:"horarios_disponibles"`
	OccupiedSlots  []BookedInterval `json:"horarios_ocupados"`
	TotalAvailable int              `json:"total_disponibles"`
	TotalOccupied  int              `json:"total_ocupados"`
	BusinessHours  *BusinessHours   `json:"horarios_negocio,omitempty"`
	Summary        Summary          `json:"resumen"`
}

// NewReport monta o relatório de um dia aberto: slots candidatos já gerados,
// disponíveis já filtrados e ocupados já sem os cancelados.
func NewReport(
	fecha string,
	employeeID uint,
	day DaySchedule,
	weekday int,
	candidates []TimeSlot,
	available []TimeSlot,
	occupied []BookedInterval,
) *AvailabilityReport {

	return &AvailabilityReport{
		Date:           fecha,
		EmployeeID:     employeeID,
		AvailableSlots: available,
		OccupiedSlots:  occupied,
		TotalAvailable: len(available),
		TotalOccupied:  len(occupied),
		BusinessHours: &BusinessHours{
			OpensAt:  day.OpensAt,
			ClosesAt: day.ClosesAt,
			Day:      DayName(weekday),
		},
		Summary: Summary{
			TotalPossibleSlots:  len(candidates),
			OccupancyPercentage: occupancyPercentage(len(occupied), len(candidates)),
			Day:                 DayName(weekday),
			Closed:              false,
		},
	}
}

// NewClosedReport é o resultado normal (não erro) de um dia fechado:
// listas vazias, totais zerados e cerrado = true.
func NewClosedReport(fecha string, employeeID uint, weekday int) *AvailabilityReport {
	return &AvailabilityReport{
		Date:           fecha,
		EmployeeID:     employeeID,
		Message:        "El negocio está cerrado este día",
		AvailableSlots: []TimeSlot{},
		OccupiedSlots:  []BookedInterval{},
		Summary: Summary{
			Day:    DayName(weekday),
			Closed: true,
		},
	}
}

func occupancyPercentage(occupied, possible int) int {
	if possible <= 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(possible) * 100))
}
