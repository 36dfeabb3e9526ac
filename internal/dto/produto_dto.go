package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome            string          `json:"nome"    validate:"required,min=2"`
	Preco           decimal.Decimal `json:"preco"   validate:"min=0"`
	Estoque         int             `json:"estoque" validate:"min=0"`
	Categoria       *string         `json:"categoria"`
	Descricao       *string         `json:"descricao"`
	Foto            *string         `json:"foto"`
	Setor           *string         `json:"setor" validate:"omitempty,oneof=COZINHA BAR_PISCINA BOATE"`
	VisivelCardapio *bool           `json:"visivel_cardapio"`
}

type AtualizarProdutoRequest struct {
	Nome            *string          `json:"nome" validate:"omitempty,min=2"`
	Preco           *decimal.Decimal `json:"preco"`
	Estoque         *int             `json:"estoque" validate:"omitempty,min=0"`
	Categoria       *string          `json:"categoria"`
	Descricao       *string          `json:"descricao"`
	Foto            *string          `json:"foto"`
	Setor           *string          `json:"setor" validate:"omitempty,oneof=COZINHA BAR_PISCINA BOATE"`
	VisivelCardapio *bool            `json:"visivel_cardapio"`
}

type AdicionarEstoqueRequest struct {
	Quantidade int `json:"quantidade" validate:"required,gt=0"`
}

type ProdutoFilter struct {
	Categoria string
	Busca     string
	// EstoqueBaixo limits to products with stock below 10.
	EstoqueBaixo bool
	// ApenasDisponiveis limits to in-stock, menu-visible products.
	ApenasDisponiveis bool
	Page              int
	Limit             int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID              string          `json:"id"`
	Nome            string          `json:"nome"`
	Preco           decimal.Decimal `json:"preco"`
	Estoque         int             `json:"estoque"`
	Categoria       *string         `json:"categoria,omitempty"`
	Descricao       *string         `json:"descricao,omitempty"`
	Foto            *string         `json:"foto,omitempty"`
	Setor           *string         `json:"setor,omitempty"`
	VisivelCardapio bool            `json:"visivel_cardapio"`
}

type ProdutoListResponse struct {
	Data       []ProdutoResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
