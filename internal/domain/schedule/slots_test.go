package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsCount(t *testing.T) {
	// floor((cierre - apertura) / duración)
	cases := []struct {
		opens, closes string
		duration      int
		want          int
	}{
		{"09:00", "18:00", 30, 18},
		{"09:00", "18:00", 45, 12},
		{"09:00", "18:00", 60, 9},
		{"13:00", "21:00", 30, 16},
		{"09:00", "18:00", 50, 10}, // janela parcial das 17:20–18:00 descartada
		{"09:00", "09:30", 30, 1},
		{"09:00", "09:29", 30, 0},
	}

	for _, c := range cases {
		got := GenerateSlots(c.opens, c.closes, c.duration)
		assert.Len(t, got, c.want, "%s-%s / %dmin", c.opens, c.closes, c.duration)
	}
}

func TestGenerateSlotsContiguous(t *testing.T) {
	slots := GenerateSlots("09:00", "18:00", 30)
	require.NotEmpty(t, slots)

	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "09:30", slots[0].End)
	assert.Equal(t, "17:30", slots[len(slots)-1].Start)
	assert.Equal(t, "18:00", slots[len(slots)-1].End)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start, "slot %d não encosta no anterior", i)
	}
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlotsMisalignedGrids(t *testing.T) {
	// Serviços de durações diferentes geram grades distintas para o mesmo dia.
	g30 := GenerateSlots("09:00", "18:00", 30)
	g45 := GenerateSlots("09:00", "18:00", 45)

	assert.Equal(t, "09:30", g30[1].Start)
	assert.Equal(t, "09:45", g45[1].Start)
}

func TestGenerateSlotsEmptyCases(t *testing.T) {
	assert.Empty(t, GenerateSlots("09:00", "18:00", 0))
	assert.Empty(t, GenerateSlots("09:00", "18:00", -15))
	assert.Empty(t, GenerateSlots("18:00", "09:00", 30))
	assert.Empty(t, GenerateSlots("09:00", "09:00", 30))
	assert.Empty(t, GenerateSlots("quando", "18:00", 30))
	assert.Empty(t, GenerateSlots("09:00", "", 30))

	// Sequência vazia, nunca nil — o JSON serializa [] e não null.
	assert.NotNil(t, GenerateSlots("09:00", "18:00", 0))
}
