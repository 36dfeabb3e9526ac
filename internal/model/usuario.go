package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario é um funcionário. A autenticação operacional é por PIN de 4 dígitos
// guardado como hash bcrypt — a resolução de PIN compara o hash contra o
// conjunto de funcionários ativos, nunca contra texto claro.
type Usuario struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome    string    `gorm:"not null"`
	PinHash string    `gorm:"not null"`
	Cargo   Cargo     `gorm:"type:varchar(10);not null"`
	Ativo   bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
