package models

import "time"

// Appointment é o turno: mapeia a tabela legada `turnos`. Fecha e horas são
// strings de relógio de parede ("YYYY-MM-DD" / "HH:MM"), sem timezone — o
// motor de disponibilidade opera direto sobre elas.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"column:cliente_id" json:"cliente_id"`
	Client   Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	EmployeeID uint     `gorm:"column:empleado_id;index:idx_turnos_empleado_fecha" json:"empleado_id"`
	Employee   Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `gorm:"column:servicio_id" json:"servicio_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date      string `gorm:"column:fecha;size:10;index:idx_turnos_empleado_fecha" json:"fecha"`
	StartTime string `gorm:"column:hora_inicio;size:5" json:"hora_inicio"`
	EndTime   string `gorm:"column:hora_fin;size:5" json:"hora_fin"`

	Status string `gorm:"column:estado;size:20;default:'pendiente'" json:"estado"`

	Notes string  `gorm:"column:observaciones;size:255" json:"observaciones"`
	Price float64 `gorm:"column:precio" json:"precio"`

	CreatedAt time.Time `gorm:"column:creado" json:"creado"`
	UpdatedAt time.Time `gorm:"column:modificado" json:"modificado"`
}

func (Appointment) TableName() string { return "turnos" }
