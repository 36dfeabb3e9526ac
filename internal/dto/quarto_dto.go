package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarQuartoRequest struct {
	Numero    string `json:"numero"    validate:"required,min=1"`
	Andar     int    `json:"andar"     validate:"required,min=1"`
	Categoria string `json:"categoria" validate:"required,min=1"`
}

type AtualizarQuartoRequest struct {
	Numero    *string `json:"numero"`
	Andar     *int    `json:"andar"     validate:"omitempty,min=1"`
	Categoria *string `json:"categoria"`
}

type AtualizarStatusQuartoRequest struct {
	Status string `json:"status" validate:"required,oneof=LIVRE OCUPADO LIMPEZA MANUTENCAO"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// HospedeResumo é o resumo do ocupante atual anexado à listagem de quartos.
type HospedeResumo struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

type QuartoResponse struct {
	ID           string         `json:"id"`
	Numero       string         `json:"numero"`
	Andar        int            `json:"andar"`
	Categoria    string         `json:"categoria"`
	Status       string         `json:"status"`
	HospedeAtual *HospedeResumo `json:"hospede_atual,omitempty"`
}
