package appointment

// AvailabilityInput identifica a consulta de disponibilidade: um empleado,
// um servicio (só para resolver a duração) e uma fecha "YYYY-MM-DD".
type AvailabilityInput struct {
	EmployeeID uint
	ServiceID  uint
	Date       string
}
