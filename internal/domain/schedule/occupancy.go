package schedule

// BookedInterval é um intervalo já consumido por um turno. Espelha as colunas
// hora_inicio / hora_fin / estado retornadas pela listagem de ocupados.
type BookedInterval struct {
	Start  string `json:"hora_inicio"`
	End    string `json:"hora_fin"`
	Status string `json:"estado"`
}

// IsOccupied decide se o slot [start, end) colide com algum intervalo
// reservado. Semântica meio-aberta: bordas encostadas (fim de um == início do
// outro) não contam como conflito. O filtro é cego a estado — turnos
// cancelados devem ser excluídos pelo chamador antes de chegar aqui.
func IsOccupied(start, end string, booked []BookedInterval) bool {
	slotStart, err := MinutesOfDay(start)
	if err != nil {
		return false
	}
	slotEnd, err := MinutesOfDay(end)
	if err != nil {
		return false
	}

	for _, b := range booked {
		bStart, err := MinutesOfDay(b.Start)
		if err != nil {
			continue
		}
		bEnd, err := MinutesOfDay(b.End)
		if err != nil {
			continue
		}

		if slotStart < bEnd && slotEnd > bStart {
			return true
		}
	}

	return false
}

// FilterAvailable devolve a subsequência de slots livres, preservando a
// ordem original.
func FilterAvailable(slots []TimeSlot, booked []BookedInterval) []TimeSlot {
	out := []TimeSlot{}
	for _, s := range slots {
		if !IsOccupied(s.Start, s.End, booked) {
			out = append(out, s)
		}
	}
	return out
}
