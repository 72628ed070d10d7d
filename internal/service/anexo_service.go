package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/infra"
	"github.com/jbenteu/lance-pro-control/internal/model"
	"github.com/jbenteu/lance-pro-control/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// MaxAnexoBytes is the 10 MiB upload ceiling enforced before the storage
	// collaborator is touched.
	MaxAnexoBytes = 10 * 1024 * 1024

	anexoMIME = "application/pdf"
)

// AnexoService manages PDF attachments on licitações.
type AnexoService interface {
	Upload(ctx context.Context, licitacaoID uuid.UUID, nomeArquivo, contentType string, data []byte) (*dto.AnexoResponse, error)
	Listar(ctx context.Context, licitacaoID uuid.UUID) ([]dto.AnexoResponse, error)
	Download(ctx context.Context, anexoID uuid.UUID) (string, []byte, error)
	Excluir(ctx context.Context, anexoID uuid.UUID) error
}

type anexoService struct {
	repo          repository.AnexoRepository
	licitacaoRepo repository.LicitacaoRepository
	storage       infra.Storage
}

func NewAnexoService(repo repository.AnexoRepository, licitacaoRepo repository.LicitacaoRepository, storage infra.Storage) AnexoService {
	return &anexoService{repo: repo, licitacaoRepo: licitacaoRepo, storage: storage}
}

func (s *anexoService) Upload(ctx context.Context, licitacaoID uuid.UUID, nomeArquivo, contentType string, data []byte) (*dto.AnexoResponse, error) {
	// Boundary checks run before any collaborator call — a rejected file
	// never reaches storage or the database.
	if contentType != anexoMIME {
		return nil, ErrAnexoNaoPDF
	}
	if int64(len(data)) > MaxAnexoBytes {
		return nil, ErrAnexoMuitoGrande
	}

	if _, err := s.licitacaoRepo.FindByID(ctx, licitacaoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLicitacaoNaoEncontrada
		}
		return nil, err
	}

	// Path convention kept for compatibility with existing installations.
	path := fmt.Sprintf("%s/%d-%s", licitacaoID, time.Now().UnixMilli(), nomeArquivo)
	if err := s.storage.Upload(path, data); err != nil {
		return nil, err
	}

	anexo := &model.Anexo{
		ID:          uuid.New(),
		LicitacaoID: licitacaoID,
		NomeArquivo: nomeArquivo,
		StoragePath: path,
		TamanhoByte: int64(len(data)),
	}
	if err := s.repo.Create(ctx, anexo); err != nil {
		// Metadata insert failed: drop the orphaned object.
		if rmErr := s.storage.Remove(path); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", path).Msg("anexo: orphan cleanup failed")
		}
		return nil, err
	}
	return s.toResponse(anexo), nil
}

func (s *anexoService) Listar(ctx context.Context, licitacaoID uuid.UUID) ([]dto.AnexoResponse, error) {
	anexos, err := s.repo.ListByLicitacao(ctx, licitacaoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnexoResponse, len(anexos))
	for i := range anexos {
		resp[i] = *s.toResponse(&anexos[i])
	}
	return resp, nil
}

func (s *anexoService) Download(ctx context.Context, anexoID uuid.UUID) (string, []byte, error) {
	anexo, err := s.repo.FindByID(ctx, anexoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAnexoNaoEncontrado
		}
		return "", nil, err
	}
	data, err := s.storage.Download(anexo.StoragePath)
	if err != nil {
		return "", nil, err
	}
	return anexo.NomeArquivo, data, nil
}

func (s *anexoService) Excluir(ctx context.Context, anexoID uuid.UUID) error {
	anexo, err := s.repo.FindByID(ctx, anexoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnexoNaoEncontrado
		}
		return err
	}
	// Object first, then metadata: a dangling metadata row is worse than an
	// unreferenced object.
	if err := s.storage.Remove(anexo.StoragePath); err != nil {
		return err
	}
	return s.repo.Delete(ctx, anexoID)
}

func (s *anexoService) toResponse(a *model.Anexo) *dto.AnexoResponse {
	return &dto.AnexoResponse{
		ID:           a.ID.String(),
		LicitacaoID:  a.LicitacaoID.String(),
		NomeArquivo:  a.NomeArquivo,
		TamanhoBytes: a.TamanhoByte,
		URL:          s.storage.PublicURL(a.StoragePath),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}
