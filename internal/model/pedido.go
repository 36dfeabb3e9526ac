package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido é exatamente uma unidade de um produto: pedidos multi-quantidade são
// expandidos em N linhas na criação. Valor é o preço do produto no momento da
// criação e nunca muda depois.
type Pedido struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HospedeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Valor     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status    StatusPedido    `gorm:"type:varchar(20);not null;default:'PENDENTE';index"`
	Metodo    MetodoCriacao   `gorm:"type:varchar(10);not null;default:'NFC'"`
	// GerenteID é obrigatório quando Metodo = MANUAL; pedidos NFC são
	// auto-aprovados e não carregam gerente.
	GerenteID *uuid.UUID `gorm:"type:uuid"`
	// UsuarioID é o garçom que lançou o pedido, quando conhecido.
	UsuarioID *uuid.UUID `gorm:"type:uuid"`
	// Data é gravada no fuso America/Sao_Paulo para rastreabilidade legal.
	Data time.Time `gorm:"not null;index"`
	// DataInicioPreparo é gravada na primeira transição para PREPARANDO e
	// nunca sobrescrita; DataPronto é sobrescrita a cada transição para PRONTO.
	DataInicioPreparo *time.Time
	DataPronto        *time.Time

	Hospede *Hospede `gorm:"foreignKey:HospedeID"`
	Produto *Produto `gorm:"foreignKey:ProdutoID"`
	Gerente *Usuario `gorm:"foreignKey:GerenteID"`
	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}
