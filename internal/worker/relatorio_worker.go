package worker

// relatorio_worker.go
// Renders the "mapa de cotações" PDF for a licitação, stores it in object
// storage and, when requested, enqueues a delivery email.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbenteu/lance-pro-control/internal/infra"
	"github.com/jbenteu/lance-pro-control/internal/model"
	"github.com/jbenteu/lance-pro-control/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RelatorioJobPayload is the job envelope sent to QueueRelatorio.
type RelatorioJobPayload struct {
	RelatorioID string `json:"relatorio_id"`
	EnviarPara  string `json:"enviar_para,omitempty"`
}

type RelatorioWorker struct {
	relatorioRepo  repository.RelatorioRepository
	licitacaoRepo  repository.LicitacaoRepository
	fornecedorRepo repository.FornecedorRepository
	storage        infra.Storage
	dispatcher     *Dispatcher
}

func NewRelatorioWorker(
	relatorioRepo repository.RelatorioRepository,
	licitacaoRepo repository.LicitacaoRepository,
	fornecedorRepo repository.FornecedorRepository,
	storage infra.Storage,
	dispatcher *Dispatcher,
) *RelatorioWorker {
	return &RelatorioWorker{
		relatorioRepo:  relatorioRepo,
		licitacaoRepo:  licitacaoRepo,
		fornecedorRepo: fornecedorRepo,
		storage:        storage,
		dispatcher:     dispatcher,
	}
}

// Process generates and stores one report. A returned error requeues the job
// until the retry budget is spent.
func (w *RelatorioWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload RelatorioJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("relatorio_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}
	relatorioID, err := uuid.Parse(payload.RelatorioID)
	if err != nil {
		log.Error().Str("relatorio_id", payload.RelatorioID).Msg("relatorio_worker: invalid id")
		return nil
	}

	relatorio, err := w.relatorioRepo.FindByID(ctx, relatorioID)
	if err != nil {
		return fmt.Errorf("relatorio_worker: load relatorio: %w", err)
	}

	licitacao, err := w.licitacaoRepo.FindByID(ctx, relatorio.LicitacaoID)
	if err != nil {
		w.marcarFalha(ctx, relatorio)
		return fmt.Errorf("relatorio_worker: load licitacao: %w", err)
	}

	nomes, err := w.nomesFornecedores(ctx)
	if err != nil {
		return fmt.Errorf("relatorio_worker: load fornecedores: %w", err)
	}

	data, err := infra.GerarMapaCotacoes(licitacao, nomes)
	if err != nil {
		w.marcarFalha(ctx, relatorio)
		return err
	}

	if err := w.storage.Upload(relatorio.StoragePath, data); err != nil {
		return fmt.Errorf("relatorio_worker: store pdf: %w", err)
	}

	relatorio.Estado = model.RelatorioPronto
	if err := w.relatorioRepo.Update(ctx, relatorio); err != nil {
		return fmt.Errorf("relatorio_worker: mark pronto: %w", err)
	}
	log.Info().
		Str("relatorio_id", relatorio.ID.String()).
		Str("licitacao_id", relatorio.LicitacaoID.String()).
		Msg("relatorio_worker: mapa de cotações generated")

	if payload.EnviarPara != "" {
		emailPayload := EmailJobPayload{
			ToEmail:     payload.EnviarPara,
			Subject:     fmt.Sprintf("Mapa de cotações — aviso %s", licitacao.NumeroAviso),
			Body:        fmt.Sprintf("Segue em anexo o mapa de cotações da licitação %s (%s).", licitacao.NumeroAviso, licitacao.Orgao.Nome),
			PDFPath:     relatorio.StoragePath,
			PDFFileName: fmt.Sprintf("mapa-cotacoes-%s.pdf", licitacao.NumeroAviso),
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailPayload); err != nil {
			log.Error().Err(err).Msg("relatorio_worker: failed to enqueue delivery email")
		}
	}
	return nil
}

func (w *RelatorioWorker) nomesFornecedores(ctx context.Context) (map[string]string, error) {
	fornecedores, err := w.fornecedorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	nomes := make(map[string]string, len(fornecedores))
	for _, f := range fornecedores {
		nomes[f.ID.String()] = f.Empresa
	}
	return nomes, nil
}

func (w *RelatorioWorker) marcarFalha(ctx context.Context, relatorio *model.Relatorio) {
	relatorio.Estado = model.RelatorioFalhou
	if err := w.relatorioRepo.Update(ctx, relatorio); err != nil {
		log.Error().Err(err).Str("relatorio_id", relatorio.ID.String()).Msg("relatorio_worker: mark falhou")
	}
}
