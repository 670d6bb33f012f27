package dto

// TurnoDetailDTO é a linha da agenda do dashboard: o turno com os nombres já
// resolvidos de empleado, cliente e servicio.
type TurnoDetailDTO struct {
	ID           uint   `json:"id"`
	Date         string `json:"fecha"`
	StartTime    string `json:"hora"`
	EndTime      string `json:"hora_fin"`
	Status       string `json:"estado"`
	Notes        string `json:"observaciones"`
	EmployeeName string `json:"nombre_empleado"`
	ClientName   string `json:"nombre_cliente"`
	ClientPhone  string `json:"telefono_cliente"`
	ServiceName  string `json:"nombre_servicio"`
}
