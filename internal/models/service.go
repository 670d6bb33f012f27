package models

import "time"

// Service mapeia a tabela legada `servicios`. DurationMin é a duração que
// define a grade de slots da disponibilidade.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Description string  `gorm:"column:descripcion;size:255" json:"descripcion"`
	DurationMin int     `gorm:"column:duracion_min" json:"duracion_min"`
	Price       float64 `gorm:"column:precio" json:"precio"`
	Active      bool    `gorm:"column:activo;default:true" json:"activo"`

	CreatedAt time.Time `gorm:"column:creado" json:"creado"`
	UpdatedAt time.Time `gorm:"column:modificado" json:"modificado"`
}

func (Service) TableName() string { return "servicios" }
