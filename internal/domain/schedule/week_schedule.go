package schedule

import "time"

// DaySchedule é o expediente de um dia da semana.
type DaySchedule struct {
	OpensAt  string `json:"apertura"`
	ClosesAt string `json:"cierre"`
	Open     bool   `json:"activo"`
}

// WeekSchedule é a tabela de horários do negócio, indexada por dia da semana
// (0 = Domingo). É um value type imutável: montada uma vez no startup e
// injetada em quem precisa — nunca um estado global mutável.
type WeekSchedule struct {
	days [7]DaySchedule
}

// NewWeekSchedule monta a tabela a partir de um mapa weekday → expediente.
// Dias ausentes ficam fechados.
func NewWeekSchedule(days map[int]DaySchedule) WeekSchedule {
	var ws WeekSchedule
	for wd, d := range days {
		if wd < 0 || wd > 6 {
			continue
		}
		ws.days[wd] = d
	}
	return ws
}

// DefaultWeekSchedule reproduz a configuração histórica do negócio:
// segunda à tarde, terça a sábado em horário comercial, domingo fechado.
func DefaultWeekSchedule() WeekSchedule {
	return NewWeekSchedule(map[int]DaySchedule{
		1: {OpensAt: "13:00", ClosesAt: "21:00", Open: true},
		2: {OpensAt: "09:00", ClosesAt: "18:00", Open: true},
		3: {OpensAt: "09:00", ClosesAt: "18:00", Open: true},
		4: {OpensAt: "09:00", ClosesAt: "18:00", Open: true},
		5: {OpensAt: "09:00", ClosesAt: "18:00", Open: true},
		6: {OpensAt: "09:00", ClosesAt: "18:00", Open: true},
		0: {OpensAt: "09:00", ClosesAt: "18:00", Open: false},
	})
}

// Day devolve o expediente do dia. O segundo retorno indica se o negócio
// abre nesse dia; weekday já vem de uma data válida, então não há erro.
func (ws WeekSchedule) Day(weekday time.Weekday) (DaySchedule, bool) {
	d := ws.days[int(weekday)]
	if !d.Open || d.OpensAt == "" || d.ClosesAt == "" {
		return d, false
	}
	return d, true
}

// Days devolve a semana inteira na ordem 0..6, para o endpoint de consulta.
func (ws WeekSchedule) Days() []DaySchedule {
	out := make([]DaySchedule, 7)
	copy(out, ws.days[:])
	return out
}
