package dto

type CriarOrgaoRequest struct {
	Nome   string  `json:"nome"   validate:"required,min=2"`
	UASG   string  `json:"uasg"   validate:"required"`
	Cidade *string `json:"cidade"`
	Estado *string `json:"estado" validate:"omitempty,len=2"`
}

type OrgaoResponse struct {
	ID     string  `json:"id"`
	Nome   string  `json:"nome"`
	UASG   string  `json:"uasg"`
	Cidade *string `json:"cidade,omitempty"`
	Estado *string `json:"estado,omitempty"`
}
