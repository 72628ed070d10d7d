package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarItemInput struct {
	Objeto                  string          `json:"objeto"                  validate:"required,min=2"`
	Especificacoes          string          `json:"especificacoes"`
	Quantidade              int             `json:"quantidade"              validate:"required,gt=0"`
	ValorReferenciaUnitario decimal.Decimal `json:"valorReferenciaUnitario" validate:"min=0"`
}

type CriarLicitacaoRequest struct {
	NumeroAviso      string `json:"numeroAviso"      validate:"required"`
	Modalidade       string `json:"modalidade"       validate:"required"`
	OrgaoID          string `json:"orgaoId"          validate:"required,uuid"`
	LocalEntrega     string `json:"localEntrega"`
	Descricao        string `json:"descricao"`
	DataFimPropostas string `json:"dataFimPropostas" validate:"required"`
	DataSessao       string `json:"dataSessao"       validate:"required"`
	// The creation flow always starts with at least one item; the core itself
	// allows removing the last one later.
	Itens []CriarItemInput `json:"itens" validate:"required,min=1,dive"`
}

type AtualizarLicitacaoRequest struct {
	NumeroAviso      *string `json:"numeroAviso"`
	Modalidade       *string `json:"modalidade"`
	LocalEntrega     *string `json:"localEntrega"`
	Descricao        *string `json:"descricao"`
	DataFimPropostas *string `json:"dataFimPropostas"`
	DataSessao       *string `json:"dataSessao"`
}

type AtualizarStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AtualizarItemRequest struct {
	Objeto                  *string          `json:"objeto"`
	Especificacoes          *string          `json:"especificacoes"`
	Quantidade              *int             `json:"quantidade"              validate:"omitempty,gt=0"`
	ValorReferenciaUnitario *decimal.Decimal `json:"valorReferenciaUnitario" validate:"omitempty,min=0"`
}

// AtualizarCotacaoRequest carries a partial edit: nil fields keep their stored
// value. Derived fields are never accepted from the client.
type AtualizarCotacaoRequest struct {
	FornecedorID  *string          `json:"fornecedorId"  validate:"omitempty,uuid"`
	ValorUnitario *decimal.Decimal `json:"valorUnitario" validate:"omitempty,min=0"`
	FreteEntrada  *decimal.Decimal `json:"freteEntrada"  validate:"omitempty,min=0"`
	FreteSaida    *decimal.Decimal `json:"freteSaida"    validate:"omitempty,min=0"`
	LanceMinimo   *decimal.Decimal `json:"lanceMinimo"   validate:"omitempty,min=0"`
	Marca         *string          `json:"marca"`
	Modelo        *string          `json:"modelo"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type LicitacaoFilter struct {
	Status     string `form:"status"`
	Modalidade string `form:"modalidade"`
	OrgaoID    string `form:"orgao_id"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// The licitação aggregate is served as the model itself (its JSON form is the
// persistence-independent snapshot); only the list envelope is a DTO.

type LicitacaoListResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

type StatusOptionResponse struct {
	Status string `json:"status"`
	Cor    string `json:"cor"`
}
