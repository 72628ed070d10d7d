package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

// ─── Usuários (admin only) ───────────────────────────────────────────────────

type CriarUsuarioRequest struct {
	Nome   string `json:"nome"   validate:"required,min=2"`
	Email  string `json:"email"  validate:"required,email"`
	Senha  string `json:"senha"  validate:"required,min=6"`
	Perfil string `json:"perfil" validate:"omitempty,oneof=admin operador"`
}

type AtualizarUsuarioRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"  validate:"omitempty,email"`
	Senha  string `json:"senha"  validate:"omitempty,min=6"`
	Perfil string `json:"perfil" validate:"omitempty,oneof=admin operador"`
}

type UsuarioResponse struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
	Ativo  bool   `json:"ativo"`
}
