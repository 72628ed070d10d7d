package model

import (
	"time"

	"github.com/google/uuid"
)

// Orgao is a government body responsible for licitações. Directory records
// live independently of the licitações that reference them: each licitação
// embeds a snapshot at creation time.
type Orgao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	UASG      string    `gorm:"column:uasg;uniqueIndex;not null" json:"uasg"`
	Cidade    *string   `json:"cidade,omitempty"`
	Estado    *string   `gorm:"type:char(2)" json:"estado,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Orgao) TableName() string { return "orgaos" }

// Snapshot copies the directory record into the value type embedded in a
// licitação.
func (o *Orgao) Snapshot() OrgaoSnapshot {
	return OrgaoSnapshot{
		OrgaoID: o.ID,
		Nome:    o.Nome,
		UASG:    o.UASG,
		Cidade:  o.Cidade,
		Estado:  o.Estado,
	}
}
