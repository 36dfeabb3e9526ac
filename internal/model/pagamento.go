package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pagamento é imutável depois de criado. A reconciliação de checkout soma
// todos os pagamentos do hóspede contra a dívida no momento da chamada.
type Pagamento struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HospedeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Valor     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Metodo    MetodoPagamento `gorm:"type:varchar(10);not null"`
	Data      time.Time       `gorm:"not null"`

	Hospede *Hospede `gorm:"foreignKey:HospedeID"`
}
