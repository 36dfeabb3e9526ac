package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemPedidoRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"omitempty,min=1"`
}

// CriarPedidosRequest cria um lote de pedidos em uma única transação.
// Para metodo=MANUAL o PIN de gerente é obrigatório; para NFC o hóspede é
// resolvido pela pulseira e o lote é auto-aprovado.
type CriarPedidosRequest struct {
	HospedeID   string              `json:"hospede_id"   validate:"omitempty,uuid"`
	UIDPulseira string              `json:"uid_pulseira" validate:"omitempty"`
	Items       []ItemPedidoRequest `json:"items"        validate:"required,min=1,dive"`
	Metodo      string              `json:"metodo"       validate:"omitempty,oneof=NFC MANUAL"`
	GerentePin  string              `json:"gerente_pin"  validate:"omitempty,len=4,numeric"`
	UsuarioID   string              `json:"usuario_id"   validate:"omitempty,uuid"`
}

type AtualizarStatusPedidoRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDENTE PREPARANDO PRONTO ENTREGUE CANCELADO"`
}

type CancelarPedidoRequest struct {
	GerentePin string `json:"gerente_pin" validate:"required,len=4,numeric"`
}

// PedidoFilter drives the order list query.
type PedidoFilter struct {
	Status    string
	HospedeID string
	Metodo    string
	UsuarioID string
	Busca     string
	// Recente limits to the last 24 hours.
	Recente bool
	Page    int
	Limit   int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoResponse struct {
	ID                string          `json:"id"`
	HospedeID         string          `json:"hospede_id"`
	HospedeNome       string          `json:"hospede_nome,omitempty"`
	ProdutoID         string          `json:"produto_id"`
	ProdutoNome       string          `json:"produto_nome,omitempty"`
	Setor             *string         `json:"setor,omitempty"`
	Valor             decimal.Decimal `json:"valor"`
	Status            string          `json:"status"`
	Metodo            string          `json:"metodo"`
	GerenteID         *string         `json:"gerente_id,omitempty"`
	UsuarioID         *string         `json:"usuario_id,omitempty"`
	Data              string          `json:"data"`
	DataInicioPreparo *string         `json:"data_inicio_preparo,omitempty"`
	DataPronto        *string         `json:"data_pronto,omitempty"`
}

type PedidoListResponse struct {
	Data       []PedidoResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}
