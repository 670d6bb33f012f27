package schedule

import "fmt"

// Horas são sempre strings "HH:MM" com zero à esquerda, igual às colunas
// hora_inicio / hora_fin do banco. Toda a matemática de slots acontece em
// minutos desde a meia-noite.

// MinutesOfDay converte "HH:MM" em minutos desde a meia-noite.
func MinutesOfDay(hhmm string) (int, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, fmt.Errorf("hora inválida: %q", hhmm)
	}

	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("hora inválida: %q", hhmm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("hora fora do intervalo: %q", hhmm)
	}

	return h*60 + m, nil
}

// FormatMinutes é a inversa de MinutesOfDay. As conversões fazem round-trip
// exato: FormatMinutes(MinutesOfDay(x)) == x para toda hora válida.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// IsValidTime informa se a string está no formato "HH:MM" aceito pela API.
func IsValidTime(hhmm string) bool {
	_, err := MinutesOfDay(hhmm)
	return err == nil
}

var dayNames = [7]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
}

// DayName devolve o nome do dia (0 = Domingo), como a API sempre expôs.
func DayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return dayNames[weekday]
}
