package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoriaFinanceira agrupa contas por natureza. O tipo da categoria deve
// casar com o tipo da conta: DESPESA para contas a pagar, RECEITA para
// contas a receber.
type CategoriaFinanceira struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string        `gorm:"uniqueIndex;not null"`
	Tipo      TipoCategoria `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time

	ContasPagar   []ContaPagar   `gorm:"foreignKey:CategoriaID"`
	ContasReceber []ContaReceber `gorm:"foreignKey:CategoriaID"`
}

// TableName overrides GORM's default pluralization.
func (CategoriaFinanceira) TableName() string { return "categorias_financeiras" }

// ContaPagar é uma obrigação agendada. Status deriva da comparação do
// vencimento com a data corrente e é recalculado quando o vencimento muda.
type ContaPagar struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descricao      string          `gorm:"not null"`
	Valor          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataVencimento time.Time       `gorm:"not null;index"`
	CategoriaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fornecedor     *string
	Observacao     *string
	Status         StatusConta `gorm:"type:varchar(10);not null;index"`
	DataPagamento  *time.Time
	Metodo         *MetodoPagamento `gorm:"type:varchar(10)"`
	// CaixaID vincula a baixa em dinheiro à sessão de caixa que a registrou.
	CaixaID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Categoria *CategoriaFinanceira `gorm:"foreignKey:CategoriaID"`
}

// TableName overrides GORM's default pluralization.
func (ContaPagar) TableName() string { return "contas_pagar" }

// ContaReceber é o espelho de ContaPagar para o lado das receitas.
type ContaReceber struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descricao      string          `gorm:"not null"`
	Valor          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataVencimento time.Time       `gorm:"not null;index"`
	CategoriaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	// Origem: HOSPEDE, CARTAO_CREDITO ou OUTROS.
	Origem          string `gorm:"not null;default:'OUTROS'"`
	Observacao      *string
	Status          StatusConta `gorm:"type:varchar(10);not null;index"`
	DataRecebimento *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Categoria *CategoriaFinanceira `gorm:"foreignKey:CategoriaID"`
}

// TableName overrides GORM's default pluralization.
func (ContaReceber) TableName() string { return "contas_receber" }
