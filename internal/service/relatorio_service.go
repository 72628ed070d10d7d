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
	"github.com/jbenteu/lance-pro-control/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelatorioService requests and serves "mapa de cotações" reports. The PDF is
// rendered off the request path by the worker pool.
type RelatorioService interface {
	Solicitar(ctx context.Context, licitacaoID uuid.UUID, req dto.SolicitarRelatorioRequest) (*dto.RelatorioResponse, error)
	ObterUltimo(ctx context.Context, licitacaoID uuid.UUID) (*dto.RelatorioResponse, error)
	Download(ctx context.Context, licitacaoID uuid.UUID) (string, []byte, error)
}

type relatorioService struct {
	repo          repository.RelatorioRepository
	licitacaoRepo repository.LicitacaoRepository
	storage       infra.Storage
	dispatcher    *worker.Dispatcher
}

func NewRelatorioService(
	repo repository.RelatorioRepository,
	licitacaoRepo repository.LicitacaoRepository,
	storage infra.Storage,
	dispatcher *worker.Dispatcher,
) RelatorioService {
	return &relatorioService{
		repo:          repo,
		licitacaoRepo: licitacaoRepo,
		storage:       storage,
		dispatcher:    dispatcher,
	}
}

func (s *relatorioService) Solicitar(ctx context.Context, licitacaoID uuid.UUID, req dto.SolicitarRelatorioRequest) (*dto.RelatorioResponse, error) {
	licitacao, err := s.licitacaoRepo.FindByID(ctx, licitacaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLicitacaoNaoEncontrada
		}
		return nil, err
	}

	relatorio := &model.Relatorio{
		ID:          uuid.New(),
		LicitacaoID: licitacao.ID,
		StoragePath: fmt.Sprintf("%s/relatorios/%d-mapa-cotacoes.pdf", licitacao.ID, time.Now().UnixMilli()),
		Estado:      model.RelatorioPendente,
	}
	if err := s.repo.Create(ctx, relatorio); err != nil {
		return nil, err
	}

	payload := worker.RelatorioJobPayload{
		RelatorioID: relatorio.ID.String(),
		EnviarPara:  req.EnviarPara,
	}
	if err := s.dispatcher.EnqueueRelatorio(ctx, payload); err != nil {
		relatorio.Estado = model.RelatorioFalhou
		_ = s.repo.Update(ctx, relatorio)
		return nil, err
	}
	return relatorioToResponse(relatorio), nil
}

func (s *relatorioService) ObterUltimo(ctx context.Context, licitacaoID uuid.UUID) (*dto.RelatorioResponse, error) {
	relatorio, err := s.repo.FindLatestByLicitacao(ctx, licitacaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRelatorioNaoEncontrado
		}
		return nil, err
	}
	return relatorioToResponse(relatorio), nil
}

func (s *relatorioService) Download(ctx context.Context, licitacaoID uuid.UUID) (string, []byte, error) {
	relatorio, err := s.repo.FindLatestByLicitacao(ctx, licitacaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrRelatorioNaoEncontrado
		}
		return "", nil, err
	}
	if relatorio.Estado != model.RelatorioPronto {
		return "", nil, ErrRelatorioNaoPronto
	}
	data, err := s.storage.Download(relatorio.StoragePath)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("mapa-cotacoes-%s.pdf", relatorio.LicitacaoID), data, nil
}

func relatorioToResponse(r *model.Relatorio) *dto.RelatorioResponse {
	return &dto.RelatorioResponse{
		ID:          r.ID.String(),
		LicitacaoID: r.LicitacaoID.String(),
		Estado:      r.Estado,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}
