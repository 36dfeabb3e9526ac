package model

import (
	"time"

	"github.com/google/uuid"
)

// PerdaEstoque registra uma baixa técnica (quebra, vencimento, erro).
// A baixa decrementa o estoque do produto na mesma transação que cria a linha.
type PerdaEstoque struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantidade int       `gorm:"not null"`
	Motivo     string    `gorm:"not null"`
	Observacao *string
	UsuarioID  uuid.UUID `gorm:"type:uuid;not null"`
	Data       time.Time `gorm:"not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

// TableName overrides GORM's default pluralization.
func (PerdaEstoque) TableName() string { return "perdas_estoque" }
