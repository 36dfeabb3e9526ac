package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estoque simbólico dos produtos de serviço (Day Use, Diária): eles não
// representam inventário físico e nunca devem esgotar.
const EstoqueServico = 999999

// Nomes dos produtos de serviço criados sob demanda no check-in.
const (
	ProdutoDayUse = "Day Use"
	ProdutoDiaria = "Diária"
)

// Produto é um item vendável (ou um produto de serviço de taxa de entrada).
type Produto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string          `gorm:"index;not null"`
	Preco     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estoque   int             `gorm:"not null;default:0"`
	Categoria *string
	Descricao *string
	Foto      *string
	// Setor roteia o pedido para a área de preparo: COZINHA, BAR_PISCINA, BOATE.
	Setor           *string
	VisivelCardapio bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
