package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hospede é o registro de um cliente ativo ou histórico.
// UIDPulseira é único apenas entre hóspedes ativos: o checkout limpa o campo
// para liberar a pulseira física para reuso. A unicidade é re-verificada
// dentro da transação de check-in, não apenas na consulta prévia.
type Hospede struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo      TipoHospede `gorm:"type:varchar(20);not null"`
	Nome      string      `gorm:"index;not null"`
	Documento *string
	Telefone  *string
	Email     *string
	// Quarto guarda o número como string por compatibilidade com chamadores
	// antigos; QuartoID é a referência preferencial.
	Quarto      *string
	QuartoID    *uuid.UUID `gorm:"type:uuid;index"`
	UIDPulseira *string    `gorm:"index"`
	LimiteGasto *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// DividaAtual só é mutada por operações relativas dentro de transação.
	DividaAtual  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Ativo        bool            `gorm:"not null;default:true;index"`
	Origem       string          `gorm:"not null;default:'BALCAO'"`
	DataCheckin  time.Time
	DataCheckout *time.Time

	QuartoRel  *Quarto     `gorm:"foreignKey:QuartoID"`
	Pedidos    []Pedido    `gorm:"foreignKey:HospedeID"`
	Pagamentos []Pagamento `gorm:"foreignKey:HospedeID"`
}
