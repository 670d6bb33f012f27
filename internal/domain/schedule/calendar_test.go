package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarClosed(t *testing.T) {
	cal := NewCalendar("2026-01-01", "2026-05-01")

	assert.True(t, cal.Closed("2026-01-01"))
	assert.True(t, cal.Closed("2026-05-01"))
	assert.False(t, cal.Closed("2026-03-15"))
	assert.Equal(t, 2, cal.Len())
}

func TestCalendarAddRemoveAreCopies(t *testing.T) {
	base := NewCalendar("2026-01-01")

	added := base.Add("2026-12-25")
	assert.True(t, added.Closed("2026-12-25"))
	assert.False(t, base.Closed("2026-12-25"), "o original não pode mudar")

	removed := added.Remove("2026-01-01")
	assert.False(t, removed.Closed("2026-01-01"))
	assert.True(t, added.Closed("2026-01-01"), "o original não pode mudar")
}

func TestCalendarDatesSorted(t *testing.T) {
	cal := NewCalendar("2026-12-25", "2026-01-01", "2026-05-01")

	assert.Equal(t,
		[]string{"2026-01-01", "2026-05-01", "2026-12-25"},
		cal.Dates(),
	)
}

func TestCalendarStoreSwap(t *testing.T) {
	store := NewCalendarStore(NewCalendar("2026-01-01"))

	assert.True(t, store.Current().Closed("2026-01-01"))

	store.Swap(store.Current().Add("2026-12-25"))

	cur := store.Current()
	assert.True(t, cur.Closed("2026-01-01"))
	assert.True(t, cur.Closed("2026-12-25"))
}
