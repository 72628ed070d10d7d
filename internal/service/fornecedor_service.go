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

// FornecedorService is the business logic contract for the supplier directory.
type FornecedorService interface {
	Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error)
	Listar(ctx context.Context) ([]dto.FornecedorResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f := &model.Fornecedor{
		Empresa:     req.Empresa,
		RamoAtuacao: req.RamoAtuacao,
		UF:          strings.ToUpper(req.UF),
		NomeContato: req.NomeContato,
		Telefone:    req.Telefone,
		WhatsApp:    req.WhatsApp,
		Email:       req.Email,
		Site:        req.Site,
		CNPJ:        req.CNPJ,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCNPJJaCadastrado
		}
		return nil, err
	}
	return fornecedorToResponse(f), nil
}

func (s *fornecedorService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFornecedorNaoEncontrado
		}
		return nil, err
	}
	return fornecedorToResponse(f), nil
}

func (s *fornecedorService) Listar(ctx context.Context) ([]dto.FornecedorResponse, error) {
	fornecedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FornecedorResponse, len(fornecedores))
	for i := range fornecedores {
		resp[i] = *fornecedorToResponse(&fornecedores[i])
	}
	return resp, nil
}

func (s *fornecedorService) Atualizar(ctx context.Context, id uuid.UUID, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFornecedorNaoEncontrado
		}
		return nil, err
	}

	f.Empresa = req.Empresa
	f.RamoAtuacao = req.RamoAtuacao
	f.UF = strings.ToUpper(req.UF)
	f.NomeContato = req.NomeContato
	f.Telefone = req.Telefone
	f.WhatsApp = req.WhatsApp
	f.Email = req.Email
	f.Site = req.Site
	f.CNPJ = req.CNPJ

	if err := s.repo.Update(ctx, f); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCNPJJaCadastrado
		}
		return nil, err
	}
	return fornecedorToResponse(f), nil
}

func (s *fornecedorService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFornecedorNaoEncontrado
		}
		return err
	}
	// Hard delete: the directory lifecycle is independent of licitações;
	// existing cotações keep their fornecedor_id and existing licitações
	// keep their órgão snapshot.
	return s.repo.Delete(ctx, id)
}

func fornecedorToResponse(f *model.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:          f.ID.String(),
		Empresa:     f.Empresa,
		RamoAtuacao: f.RamoAtuacao,
		UF:          f.UF,
		NomeContato: f.NomeContato,
		Telefone:    f.Telefone,
		WhatsApp:    f.WhatsApp,
		Email:       f.Email,
		Site:        f.Site,
		CNPJ:        f.CNPJ,
	}
}

// isUniqueViolation detects duplicate-key failures from the store so they can
// be rewritten into a specific user-facing message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
