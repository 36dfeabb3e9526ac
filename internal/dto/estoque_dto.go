package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BaixaEstoqueRequest registra uma perda de estoque (quebra, vencimento, erro).
type BaixaEstoqueRequest struct {
	ProdutoID  string  `json:"produto_id" validate:"required,uuid"`
	Quantidade int     `json:"quantidade" validate:"required,gt=0"`
	Motivo     string  `json:"motivo"     validate:"required,min=2"`
	Observacao *string `json:"observacao"`
	UsuarioID  string  `json:"usuario_id" validate:"omitempty,uuid"`
}

type PerdaFilter struct {
	ProdutoID  string
	DataInicio string
	DataFim    string
	Page       int
	Limit      int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PerdaResponse struct {
	ID          string  `json:"id"`
	ProdutoID   string  `json:"produto_id"`
	ProdutoNome string  `json:"produto_nome,omitempty"`
	Quantidade  int     `json:"quantidade"`
	Motivo      string  `json:"motivo"`
	Observacao  *string `json:"observacao,omitempty"`
	UsuarioID   string  `json:"usuario_id"`
	Data        string  `json:"data"`
}

type PerdaListResponse struct {
	Data       []PerdaResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
