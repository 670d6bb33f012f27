package models

import "time"

// Employee mapeia a tabela legada `empleados`.
type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"column:nombre;size:100;not null" json:"nombre"`

	// Lista livre mantida como texto, igual ao schema original.
	Specialties string `gorm:"column:especialidades;size:255" json:"especialidades"`

	Active bool `gorm:"column:activo;default:true" json:"activo"`

	CreatedAt time.Time `gorm:"column:creado" json:"creado"`
	UpdatedAt time.Time `gorm:"column:modificado" json:"modificado"`
}

func (Employee) TableName() string { return "empleados" }

// EmployeeService é a tabela de junção empleados_servicios: quais empleados
// atendem cada servicio.
type EmployeeService struct {
	EmployeeID uint `gorm:"column:empleado_id;primaryKey" json:"empleado_id"`
	ServiceID  uint `gorm:"column:servicio_id;primaryKey" json:"servicio_id"`
}

func (EmployeeService) TableName() string { return "empleados_servicios" }
