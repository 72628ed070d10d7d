package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrgaoSnapshot is the denormalized copy of the responsible órgão taken when
// the licitação is created. Later edits to the órgão directory must not
// retroactively change existing licitações, so this is a value copy rather
// than a live foreign key.
type OrgaoSnapshot struct {
	OrgaoID uuid.UUID `gorm:"type:uuid" json:"orgaoId"`
	Nome    string    `gorm:"not null" json:"nome"`
	UASG    string    `gorm:"column:uasg;not null" json:"uasg"`
	Cidade  *string   `json:"cidade,omitempty"`
	Estado  *string   `json:"estado,omitempty"`
}

// Licitacao is the aggregate root: it exclusively owns its itens (and,
// transitively, their cotações). UpdatedAt is refreshed on every mutation to
// the aggregate or any nested item/cotação.
type Licitacao struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Status       StatusLicitacao `gorm:"type:varchar(40);not null;index" json:"status"`
	NumeroAviso  string          `gorm:"not null" json:"numeroAviso"`
	Modalidade   Modalidade      `gorm:"type:varchar(30);not null" json:"modalidade"`
	Orgao        OrgaoSnapshot   `gorm:"embedded;embeddedPrefix:orgao_" json:"orgao"`
	LocalEntrega string          `json:"localEntrega"`
	Descricao    string          `json:"descricao"`
	// DataFimPropostas is the deadline for proposal submission.
	DataFimPropostas time.Time `json:"dataFimPropostas"`
	DataSessao       time.Time `json:"dataSessao"`
	Itens            []Item    `gorm:"foreignKey:LicitacaoID;constraint:OnDelete:CASCADE" json:"itens"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Licitacao) TableName() string { return "licitacoes" }

// Item is one line item of goods/services within a licitação.
type Item struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LicitacaoID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Objeto         string    `gorm:"not null" json:"objeto"`
	Especificacoes string    `json:"especificacoes"`
	Quantidade     int       `gorm:"not null" json:"quantidade"`
	// ValorReferenciaTotal is always Quantidade × ValorReferenciaUnitario.
	ValorReferenciaUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorReferenciaUnitario"`
	ValorReferenciaTotal    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"valorReferenciaTotal"`
	Cotacoes                []Cotacao       `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"cotacoes"`
}

func (Item) TableName() string { return "itens" }

// Cotacao is a supplier's offer against one item. Identity is generated at
// creation and never reused.
type Cotacao struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ItemID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	FornecedorID *uuid.UUID `gorm:"type:uuid;index" json:"fornecedorId"`

	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorUnitario"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"valorTotal"`
	FreteEntrada  decimal.Decimal `gorm:"type:decimal(12,2)" json:"freteEntrada"`
	FreteSaida    decimal.Decimal `gorm:"type:decimal(12,2)" json:"freteSaida"`
	LanceMinimo   decimal.Decimal `gorm:"type:decimal(12,2)" json:"lanceMinimo"`
	// PorcentagemLucro keeps its previous value when ValorUnitario or
	// LanceMinimo is not positive (undefined margin — never zeroed).
	PorcentagemLucro decimal.Decimal `gorm:"type:decimal(7,2)" json:"porcentagemLucro"`
	LanceIdeal       decimal.Decimal `gorm:"type:decimal(12,2)" json:"lanceIdeal"`

	Marca  *string `json:"marca,omitempty"`
	Modelo *string `json:"modelo,omitempty"`
}

func (Cotacao) TableName() string { return "cotacoes" }

// Recalcular refreshes every derived field of the cotação from its current
// inputs and the parent item's quantidade. Runs synchronously inside each
// mutating operation — readers never observe a stale derived value.
func (c *Cotacao) Recalcular(quantidade int) {
	c.ValorTotal = TotalCotacao(quantidade, c.ValorUnitario)
	c.LanceIdeal = LanceIdeal(c.ValorUnitario)
	if margem, ok := MargemLucro(c.ValorUnitario, c.LanceMinimo); ok {
		c.PorcentagemLucro = margem
	}
}

// Recalcular refreshes the item's reference total and cascades the quantidade
// into every cotação's derived fields.
func (i *Item) Recalcular() {
	i.ValorReferenciaTotal = TotalReferencia(i.Quantidade, i.ValorReferenciaUnitario)
	for idx := range i.Cotacoes {
		i.Cotacoes[idx].Recalcular(i.Quantidade)
	}
}

// FindItem returns a pointer into Itens for the given id, or nil.
func (l *Licitacao) FindItem(itemID uuid.UUID) *Item {
	for idx := range l.Itens {
		if l.Itens[idx].ID == itemID {
			return &l.Itens[idx]
		}
	}
	return nil
}
