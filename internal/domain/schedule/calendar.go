package schedule

import (
	"sort"
	"sync"
)

// Calendar é o conjunto de datas não laborables ("YYYY-MM-DD"): feriados e
// fechamentos pontuais, além do expediente semanal. É um value type imutável;
// Add e Remove devolvem um novo Calendar em vez de mutar o existente.
type Calendar struct {
	closed map[string]struct{}
}

func NewCalendar(dates ...string) Calendar {
	closed := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		closed[d] = struct{}{}
	}
	return Calendar{closed: closed}
}

// Closed informa se a data está marcada como não laborable.
func (c Calendar) Closed(fecha string) bool {
	_, ok := c.closed[fecha]
	return ok
}

func (c Calendar) Add(fecha string) Calendar {
	next := make(map[string]struct{}, len(c.closed)+1)
	for d := range c.closed {
		next[d] = struct{}{}
	}
	next[fecha] = struct{}{}
	return Calendar{closed: next}
}

func (c Calendar) Remove(fecha string) Calendar {
	next := make(map[string]struct{}, len(c.closed))
	for d := range c.closed {
		if d != fecha {
			next[d] = struct{}{}
		}
	}
	return Calendar{closed: next}
}

// Dates lista as datas fechadas em ordem crescente.
func (c Calendar) Dates() []string {
	out := make([]string, 0, len(c.closed))
	for d := range c.closed {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (c Calendar) Len() int {
	return len(c.closed)
}

// CalendarStore publica o Calendar vigente para leitores concorrentes.
// Atualizações trocam o valor inteiro; o valor publicado nunca é mutado.
type CalendarStore struct {
	mu      sync.RWMutex
	current Calendar
}

func NewCalendarStore(initial Calendar) *CalendarStore {
	return &CalendarStore{current: initial}
}

func (s *CalendarStore) Current() Calendar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *CalendarStore) Swap(next Calendar) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}
