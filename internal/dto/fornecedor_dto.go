package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarFornecedorRequest struct {
	Empresa     string  `json:"empresa"     validate:"required,min=2"`
	RamoAtuacao string  `json:"ramoAtuacao" validate:"required"`
	UF          string  `json:"uf"          validate:"required,len=2"`
	NomeContato string  `json:"nomeContato" validate:"required"`
	Telefone    string  `json:"telefone"    validate:"required"`
	WhatsApp    bool    `json:"whatsapp"`
	Email       string  `json:"email"       validate:"required,email"`
	Site        *string `json:"site"`
	CNPJ        string  `json:"cnpj"        validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FornecedorResponse struct {
	ID          string  `json:"id"`
	Empresa     string  `json:"empresa"`
	RamoAtuacao string  `json:"ramoAtuacao"`
	UF          string  `json:"uf"`
	NomeContato string  `json:"nomeContato"`
	Telefone    string  `json:"telefone"`
	WhatsApp    bool    `json:"whatsapp"`
	Email       string  `json:"email"`
	Site        *string `json:"site,omitempty"`
	CNPJ        string  `json:"cnpj"`
}
