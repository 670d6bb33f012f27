package appointment

import "github.com/TurnosApp/turnos-api/internal/httperr"

// ===============================
// Estado do turno
// ===============================

// Status usa os valores legados em espanhol persistidos na coluna `estado`.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
	StatusCompleted Status = "realizado"
)

var allowed = map[Status]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusCancelled: {},
	StatusCompleted: {},
}

func IsValidStatus(s string) bool {
	_, ok := allowed[Status(s)]
	return ok
}

// ===============================
// Validações de transição
// ===============================

// CanCancel define se um turno pode ser cancelado.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um turno pode ser marcado como realizado.
func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o estado de um turno recém-criado sem estado explícito.
func InitialStatus() Status {
	return StatusPending
}
