package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Pin string `json:"pin" validate:"required,len=4,numeric"`
}

type CriarUsuarioRequest struct {
	Nome  string `json:"nome"  validate:"required,min=2"`
	Pin   string `json:"pin"   validate:"required,len=4,numeric"`
	Cargo string `json:"cargo" validate:"required,oneof=WAITER MANAGER ADMIN CLEANER"`
}

type AtualizarUsuarioRequest struct {
	Nome  *string `json:"nome"  validate:"omitempty,min=2"`
	Cargo *string `json:"cargo" validate:"omitempty,oneof=WAITER MANAGER ADMIN CLEANER"`
	Pin   *string `json:"pin"   validate:"omitempty,len=4,numeric"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Cargo string `json:"cargo"`
	Ativo bool   `json:"ativo"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	User        UsuarioResponse `json:"user"`
}
