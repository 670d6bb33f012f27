package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/models"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pendiente", "confirmado", "cancelado", "realizado"} {
		assert.True(t, IsValidStatus(s), s)
	}
	for _, s := range []string{"", "pending", "Pendiente", "anulado"} {
		assert.False(t, IsValidStatus(s), s)
	}
}

func TestCancelTransitions(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(from)}
		require.NoError(t, Cancel(ap))
		assert.Equal(t, "cancelado", ap.Status)
	}

	for _, from := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(from)}
		err := Cancel(ap)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, string(from), ap.Status, "transição inválida não altera o turno")
	}
}

func TestCompleteTransitions(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(from)}
		require.NoError(t, Complete(ap))
		assert.Equal(t, "realizado", ap.Status)
	}

	for _, from := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(from)}
		err := Complete(ap)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
