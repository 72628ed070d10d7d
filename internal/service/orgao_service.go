package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/model"
	"github.com/jbenteu/lance-pro-control/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgaoService is the business logic contract for the government body directory.
type OrgaoService interface {
	Criar(ctx context.Context, req dto.CriarOrgaoRequest) (*dto.OrgaoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.OrgaoResponse, error)
	Listar(ctx context.Context) ([]dto.OrgaoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.CriarOrgaoRequest) (*dto.OrgaoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type orgaoService struct {
	repo repository.OrgaoRepository
}

func NewOrgaoService(repo repository.OrgaoRepository) OrgaoService {
	return &orgaoService{repo: repo}
}

func (s *orgaoService) Criar(ctx context.Context, req dto.CriarOrgaoRequest) (*dto.OrgaoResponse, error) {
	o := &model.Orgao{
		Nome:   req.Nome,
		UASG:   req.UASG,
		Cidade: req.Cidade,
		Estado: upperEstado(req.Estado),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUASGJaCadastrada
		}
		return nil, err
	}
	return orgaoToResponse(o), nil
}

func (s *orgaoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.OrgaoResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrgaoNaoEncontrado
		}
		return nil, err
	}
	return orgaoToResponse(o), nil
}

func (s *orgaoService) Listar(ctx context.Context) ([]dto.OrgaoResponse, error) {
	orgaos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrgaoResponse, len(orgaos))
	for i := range orgaos {
		resp[i] = *orgaoToResponse(&orgaos[i])
	}
	return resp, nil
}

func (s *orgaoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.CriarOrgaoRequest) (*dto.OrgaoResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrgaoNaoEncontrado
		}
		return nil, err
	}

	// Updates reach the directory only: licitações created earlier keep the
	// snapshot they embedded at creation time.
	o.Nome = req.Nome
	o.UASG = req.UASG
	o.Cidade = req.Cidade
	o.Estado = upperEstado(req.Estado)

	if err := s.repo.Update(ctx, o); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUASGJaCadastrada
		}
		return nil, err
	}
	return orgaoToResponse(o), nil
}

func (s *orgaoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrgaoNaoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func orgaoToResponse(o *model.Orgao) *dto.OrgaoResponse {
	return &dto.OrgaoResponse{
		ID:     o.ID.String(),
		Nome:   o.Nome,
		UASG:   o.UASG,
		Cidade: o.Cidade,
		Estado: o.Estado,
	}
}

func upperEstado(estado *string) *string {
	if estado == nil {
		return nil
	}
	up := strings.ToUpper(*estado)
	return &up
}
