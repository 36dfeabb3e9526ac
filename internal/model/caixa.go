package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Caixa é uma sessão de caixa de um operador.
// Invariante: no máximo uma sessão ABERTO por operador a qualquer momento.
type Caixa struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaldoInicial   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status         StatusCaixa     `gorm:"type:varchar(10);not null;default:'ABERTO'"`
	DataAbertura   time.Time       `gorm:"not null"`
	DataFechamento *time.Time
	// Saldos declarados pelo operador no fechamento (contagem cega).
	SaldoFinalDinheiro *decimal.Decimal `gorm:"type:decimal(12,2)"`
	SaldoFinalCartao   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// Observacao recebe a quebra de caixa calculada no fechamento.
	Observacao *string

	Usuario     *Usuario         `gorm:"foreignKey:UsuarioID"`
	Lancamentos []LancamentoCaixa `gorm:"foreignKey:CaixaID"`
}

// LancamentoCaixa é um evento imutável do livro de caixa — nunca alterado ou
// removido. Sangrias são persistidas com valor negativo.
type LancamentoCaixa struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaixaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Tipo       TipoLancamento  `gorm:"type:varchar(15);not null"`
	Valor      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Observacao string          `gorm:"not null"`
	Data       time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default pluralization.
func (LancamentoCaixa) TableName() string { return "lancamentos_caixa" }
