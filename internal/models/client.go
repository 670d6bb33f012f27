package models

import "time"

// Cliente simples, sem login. Mapeia a tabela legada `clientes`.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Phone       string `gorm:"column:telefono;size:20" json:"telefono"`
	Preferences string `gorm:"column:preferencias;size:255" json:"preferencias"`

	CreatedAt time.Time `gorm:"column:creado" json:"creado"`
	UpdatedAt time.Time `gorm:"column:modificado" json:"modificado"`
}

func (Client) TableName() string { return "clientes" }
