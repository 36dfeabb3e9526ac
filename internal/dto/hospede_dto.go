package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CheckinRequest cria o hóspede com check-in completo. Se ValorEntrada for
// informado, um pedido de diária/day use já ENTREGUE é criado na mesma
// transação; se PagoNaEntrada, também o pagamento.
type CheckinRequest struct {
	Tipo        string  `json:"tipo"         validate:"required,oneof=HOSPEDE DAY_USE VIP"`
	Nome        string  `json:"nome"         validate:"required,min=2"`
	Documento   *string `json:"documento"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	QuartoID    string  `json:"quarto_id"    validate:"omitempty,uuid"`
	Quarto      string  `json:"quarto"` // legado: número do quarto
	UIDPulseira string  `json:"uid_pulseira" validate:"required,min=4"`
	LimiteGasto *decimal.Decimal `json:"limite_gasto"`
	Origem      string           `json:"origem"`
	ValorEntrada    *decimal.Decimal `json:"valor_entrada"`
	PagoNaEntrada   bool             `json:"pago_na_entrada"`
	MetodoPagamento string           `json:"metodo_pagamento" validate:"omitempty,oneof=PIX DINHEIRO CARTAO DEBITO"`
	UsuarioID       string           `json:"usuario_id"       validate:"omitempty,uuid"`
}

type CheckoutRequest struct {
	MetodoPagamento string           `json:"metodo_pagamento" validate:"required,oneof=PIX DINHEIRO CARTAO DEBITO"`
	ValorPagamento  *decimal.Decimal `json:"valor_pagamento"`
	ForcarCheckout  bool             `json:"forcar_checkout"`
	UsuarioID       string           `json:"usuario_id" validate:"omitempty,uuid"`
}

type AtualizarHospedeRequest struct {
	Nome        *string          `json:"nome" validate:"omitempty,min=2"`
	Documento   *string          `json:"documento"`
	Telefone    *string          `json:"telefone"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	LimiteGasto *decimal.Decimal `json:"limite_gasto"`
	Origem      *string          `json:"origem"`
}

type HospedeFilter struct {
	Ativo *bool
	Tipo  string
	Busca string
	Page  int
	Limit int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type HospedeResponse struct {
	ID           string           `json:"id"`
	Tipo         string           `json:"tipo"`
	Nome         string           `json:"nome"`
	Documento    *string          `json:"documento,omitempty"`
	Telefone     *string          `json:"telefone,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Quarto       *string          `json:"quarto,omitempty"`
	QuartoID     *string          `json:"quarto_id,omitempty"`
	UIDPulseira  *string          `json:"uid_pulseira,omitempty"`
	LimiteGasto  *decimal.Decimal `json:"limite_gasto,omitempty"`
	DividaAtual  decimal.Decimal  `json:"divida_atual"`
	Ativo        bool             `json:"ativo"`
	Origem       string           `json:"origem"`
	DataCheckin  string           `json:"data_checkin"`
	DataCheckout *string          `json:"data_checkout,omitempty"`
}

type HospedeListResponse struct {
	Data       []HospedeResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// CheckoutResponse devolve o hóspede encerrado mais o resultado da liberação
// do quarto, ciente de múltiplos ocupantes.
type CheckoutResponse struct {
	Hospede             HospedeResponse `json:"hospede"`
	QuartoStatus        *string         `json:"quarto_status,omitempty"`
	OcupantesRestantes  int             `json:"ocupantes_restantes"`
	MensagemQuarto      string          `json:"mensagem_quarto,omitempty"`
	TotalPago           decimal.Decimal `json:"total_pago"`
}
