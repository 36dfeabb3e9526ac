package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	SaldoInicial decimal.Decimal `json:"saldo_inicial" validate:"min=0"`
}

type FecharCaixaRequest struct {
	SaldoFinalDinheiro decimal.Decimal  `json:"saldo_final_dinheiro" validate:"min=0"`
	SaldoFinalCartao   *decimal.Decimal `json:"saldo_final_cartao"`
	Observacao         string           `json:"observacao"`
}

type SangriaRequest struct {
	Valor      decimal.Decimal `json:"valor" validate:"required,gt=0"`
	Observacao string          `json:"observacao"`
}

type SuprimentoRequest struct {
	Valor      decimal.Decimal `json:"valor" validate:"required,gt=0"`
	Observacao string          `json:"observacao"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LancamentoResponse struct {
	ID         string          `json:"id"`
	Tipo       string          `json:"tipo"`
	Valor      decimal.Decimal `json:"valor"`
	Observacao string          `json:"observacao"`
	Data       string          `json:"data"`
}

// ResumoCaixa é o sumário vivo da sessão: mesma fórmula no status e no
// fechamento — saldoInicial + vendas − |sangrias| + suprimentos.
type ResumoCaixa struct {
	SaldoInicial         decimal.Decimal `json:"saldo_inicial"`
	VendasDinheiro       decimal.Decimal `json:"vendas_dinheiro"`
	Sangrias             decimal.Decimal `json:"sangrias"`
	Suprimentos          decimal.Decimal `json:"suprimentos"`
	SaldoEsperadoDinheiro decimal.Decimal `json:"saldo_esperado_dinheiro"`
	TotalLancamentos     int             `json:"total_lancamentos"`
}

type CaixaResponse struct {
	ID                 string           `json:"id"`
	UsuarioID          string           `json:"usuario_id"`
	UsuarioNome        string           `json:"usuario_nome,omitempty"`
	SaldoInicial       decimal.Decimal  `json:"saldo_inicial"`
	Status             string           `json:"status"`
	DataAbertura       string           `json:"data_abertura"`
	DataFechamento     *string          `json:"data_fechamento,omitempty"`
	SaldoFinalDinheiro *decimal.Decimal `json:"saldo_final_dinheiro,omitempty"`
	SaldoFinalCartao   *decimal.Decimal `json:"saldo_final_cartao,omitempty"`
	Observacao         *string          `json:"observacao,omitempty"`
}

// FechamentoCaixaResponse inclui a quebra de caixa assinada:
// positiva = sobra, negativa = falta.
type FechamentoCaixaResponse struct {
	Caixa      CaixaResponse   `json:"caixa"`
	Resumo     ResumoCaixa     `json:"resumo"`
	QuebraCaixa decimal.Decimal `json:"quebra_caixa"`
}

type StatusCaixaResponse struct {
	TemCaixaAberto     bool                 `json:"tem_caixa_aberto"`
	Caixa              *CaixaResponse       `json:"caixa"`
	Resumo             *ResumoCaixa         `json:"resumo"`
	UltimosLancamentos []LancamentoResponse `json:"ultimos_lancamentos,omitempty"`
}
