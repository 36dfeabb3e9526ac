package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Categorias ──────────────────────────────────────────────────────────────

type CategoriaRequest struct {
	Nome string `json:"nome" validate:"required,min=2"`
	Tipo string `json:"tipo" validate:"required,oneof=DESPESA RECEITA"`
}

type AtualizarCategoriaRequest struct {
	Nome *string `json:"nome" validate:"omitempty,min=2"`
	Tipo *string `json:"tipo" validate:"omitempty,oneof=DESPESA RECEITA"`
}

type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

// ─── Contas ──────────────────────────────────────────────────────────────────

type CriarContaPagarRequest struct {
	Descricao      string          `json:"descricao"       validate:"required,min=2"`
	Valor          decimal.Decimal `json:"valor"           validate:"required,gt=0"`
	DataVencimento time.Time       `json:"data_vencimento" validate:"required"`
	CategoriaID    string          `json:"categoria_id"    validate:"required,uuid"`
	Fornecedor     *string         `json:"fornecedor"`
	Observacao     *string         `json:"observacao"`
}

type AtualizarContaPagarRequest struct {
	Descricao      *string          `json:"descricao" validate:"omitempty,min=2"`
	Valor          *decimal.Decimal `json:"valor"`
	DataVencimento *time.Time       `json:"data_vencimento"`
	CategoriaID    *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Fornecedor     *string          `json:"fornecedor"`
	Observacao     *string          `json:"observacao"`
}

// PagarContaRequest dá baixa na conta. Método DINHEIRO com usuário informado
// registra sangria no caixa do operador (soft-fail).
type PagarContaRequest struct {
	MetodoPagamento string     `json:"metodo_pagamento" validate:"required,oneof=PIX DINHEIRO CARTAO DEBITO"`
	DataPagamento   *time.Time `json:"data_pagamento"`
	UsuarioID       string     `json:"usuario_id" validate:"omitempty,uuid"`
}

type CriarContaReceberRequest struct {
	Descricao      string          `json:"descricao"       validate:"required,min=2"`
	Valor          decimal.Decimal `json:"valor"           validate:"required,gt=0"`
	DataVencimento time.Time       `json:"data_vencimento" validate:"required"`
	CategoriaID    string          `json:"categoria_id"    validate:"required,uuid"`
	Origem         string          `json:"origem"          validate:"required,oneof=HOSPEDE CARTAO_CREDITO OUTROS"`
	Observacao     *string         `json:"observacao"`
}

type AtualizarContaReceberRequest struct {
	Descricao      *string          `json:"descricao" validate:"omitempty,min=2"`
	Valor          *decimal.Decimal `json:"valor"`
	DataVencimento *time.Time       `json:"data_vencimento"`
	CategoriaID    *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Origem         *string          `json:"origem" validate:"omitempty,oneof=HOSPEDE CARTAO_CREDITO OUTROS"`
	Observacao     *string          `json:"observacao"`
}

type ReceberContaRequest struct {
	DataRecebimento *time.Time `json:"data_recebimento"`
}

type ContaFilter struct {
	Status      string
	CategoriaID string
	Origem      string
	DataInicio  *time.Time
	DataFim     *time.Time
}

type ContaPagarResponse struct {
	ID             string             `json:"id"`
	Descricao      string             `json:"descricao"`
	Valor          decimal.Decimal    `json:"valor"`
	DataVencimento string             `json:"data_vencimento"`
	Categoria      *CategoriaResponse `json:"categoria,omitempty"`
	Fornecedor     *string            `json:"fornecedor,omitempty"`
	Observacao     *string            `json:"observacao,omitempty"`
	Status         string             `json:"status"`
	DataPagamento  *string            `json:"data_pagamento,omitempty"`
	Metodo         *string            `json:"metodo,omitempty"`
}

type ContaReceberResponse struct {
	ID              string             `json:"id"`
	Descricao       string             `json:"descricao"`
	Valor           decimal.Decimal    `json:"valor"`
	DataVencimento  string             `json:"data_vencimento"`
	Categoria       *CategoriaResponse `json:"categoria,omitempty"`
	Origem          string             `json:"origem"`
	Observacao      *string            `json:"observacao,omitempty"`
	Status          string             `json:"status"`
	DataRecebimento *string            `json:"data_recebimento,omitempty"`
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

type FaixaDashboard struct {
	Quantidade int             `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

type LadoDashboard struct {
	Vencidas FaixaDashboard `json:"vencidas"`
	Hoje     FaixaDashboard `json:"hoje"`
	Futuras  FaixaDashboard `json:"futuras"`
	Total    FaixaDashboard `json:"total"`
}

type DashboardResponse struct {
	ContasPagar   LadoDashboard `json:"contas_pagar"`
	ContasReceber LadoDashboard `json:"contas_receber"`
}
