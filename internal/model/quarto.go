package model

import (
	"time"

	"github.com/google/uuid"
)

// Quarto representa um quarto físico da pousada.
// Transições de status são restritas: OCUPADO nunca vai direto para LIVRE —
// o checkout sempre passa por LIMPEZA.
type Quarto struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero    string       `gorm:"uniqueIndex;not null"`
	Andar     int          `gorm:"not null"`
	Categoria string       `gorm:"not null"`
	Status    StatusQuarto `gorm:"type:varchar(20);not null;default:'LIVRE'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Hospedes []Hospede `gorm:"foreignKey:QuartoID"`
}
