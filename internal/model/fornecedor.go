package model

import (
	"time"

	"github.com/google/uuid"
)

// Fornecedor represents a vendor eligible to submit cotações.
type Fornecedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Empresa     string    `gorm:"not null" json:"empresa"`
	RamoAtuacao string    `gorm:"not null" json:"ramoAtuacao"`
	UF          string    `gorm:"column:uf;type:char(2);not null" json:"uf"`
	NomeContato string    `gorm:"not null" json:"nomeContato"`
	Telefone    string    `gorm:"not null" json:"telefone"`
	WhatsApp    bool      `gorm:"not null;default:false" json:"whatsapp"`
	Email       string    `gorm:"not null" json:"email"`
	Site        *string   `json:"site,omitempty"`
	CNPJ        string    `gorm:"column:cnpj;uniqueIndex;not null" json:"cnpj"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
