package model

import (
	"time"

	"github.com/google/uuid"
)

// Anexo is the metadata row for a PDF attached to a licitação. The bytes live
// in object storage under StoragePath; listings are newest-first.
type Anexo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LicitacaoID uuid.UUID `gorm:"type:uuid;not null;index" json:"licitacaoId"`
	NomeArquivo string    `gorm:"not null" json:"nomeArquivo"`
	// StoragePath follows the "{licitacaoId}/{epochMillis}-{nomeArquivo}"
	// convention; existing installations depend on it.
	StoragePath string    `gorm:"uniqueIndex;not null" json:"-"`
	TamanhoByte int64     `gorm:"not null" json:"tamanhoBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Anexo) TableName() string { return "anexos" }

// Relatorio is the metadata row for a generated quote-comparison report.
type Relatorio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LicitacaoID uuid.UUID `gorm:"type:uuid;not null;index" json:"licitacaoId"`
	StoragePath string    `gorm:"not null" json:"-"`
	Estado      string    `gorm:"type:varchar(20);not null;default:'pendente'" json:"estado"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	RelatorioPendente = "pendente"
	RelatorioPronto   = "pronto"
	RelatorioFalhou   = "falhou"
)

func (Relatorio) TableName() string { return "relatorios" }
