package schedule

// TimeSlot é um horário candidato de reserva, derivado — nunca persistido.
type TimeSlot struct {
	Start     string `json:"inicio"`
	End       string `json:"fin"`
	Available bool   `json:"disponible"`
}

// GenerateSlots gera a sequência ordenada de slots entre a abertura e o
// fechamento. O cursor avança pela própria duração do serviço, então serviços
// com durações diferentes enxergam grades desalinhadas no mesmo dia — é o
// comportamento esperado, não um bug. A janela parcial antes do fechamento é
// descartada em silêncio.
//
// Duração não positiva ou abertura >= fechamento devolvem uma sequência
// vazia; não é um estado de erro.
func GenerateSlots(opensAt, closesAt string, durationMin int) []TimeSlot {
	slots := []TimeSlot{}

	if durationMin <= 0 {
		return slots
	}

	open, err := MinutesOfDay(opensAt)
	if err != nil {
		return slots
	}
	close, err := MinutesOfDay(closesAt)
	if err != nil {
		return slots
	}

	for cur := open; cur+durationMin <= close; cur += durationMin {
		slots = append(slots, TimeSlot{
			Start:     FormatMinutes(cur),
			End:       FormatMinutes(cur + durationMin),
			Available: true,
		})
	}

	return slots
}
