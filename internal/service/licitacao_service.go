package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/model"
	"github.com/jbenteu/lance-pro-control/internal/repository"
	"github.com/jbenteu/lance-pro-control/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LicitacaoService owns every mutation of the licitação aggregate. Each
// operation loads the aggregate, applies the edit, recomputes derived pricing
// fields synchronously, refreshes UpdatedAt, and persists the whole aggregate
// in one Save — there is no partially applied edit and no stale-value window.
type LicitacaoService interface {
	Criar(ctx context.Context, req dto.CriarLicitacaoRequest) (*model.Licitacao, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Licitacao, error)
	Listar(ctx context.Context, filter dto.LicitacaoFilter) (*dto.LicitacaoListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarLicitacaoRequest) (*model.Licitacao, error)
	Excluir(ctx context.Context, id uuid.UUID) error

	// AtualizarStatus is an unconditional overwrite: the workflow imposes no
	// transition ordering, status is advisory labeling.
	AtualizarStatus(ctx context.Context, id uuid.UUID, status string) (*model.Licitacao, error)

	AdicionarItem(ctx context.Context, id uuid.UUID, req dto.CriarItemInput) (*model.Licitacao, error)
	AtualizarItem(ctx context.Context, id, itemID uuid.UUID, req dto.AtualizarItemRequest) (*model.Licitacao, error)
	RemoverItem(ctx context.Context, id, itemID uuid.UUID) (*model.Licitacao, error)

	AdicionarCotacao(ctx context.Context, id, itemID uuid.UUID) (*model.Licitacao, error)
	AtualizarCotacao(ctx context.Context, id, itemID, cotacaoID uuid.UUID, req dto.AtualizarCotacaoRequest) (*model.Licitacao, error)
	RemoverCotacao(ctx context.Context, id, itemID, cotacaoID uuid.UUID) (*model.Licitacao, error)
}

type licitacaoService struct {
	repo           repository.LicitacaoRepository
	orgaoRepo      repository.OrgaoRepository
	fornecedorRepo repository.FornecedorRepository
	dispatcher     *worker.Dispatcher
}

func NewLicitacaoService(
	repo repository.LicitacaoRepository,
	orgaoRepo repository.OrgaoRepository,
	fornecedorRepo repository.FornecedorRepository,
	dispatcher *worker.Dispatcher,
) LicitacaoService {
	return &licitacaoService{
		repo:           repo,
		orgaoRepo:      orgaoRepo,
		fornecedorRepo: fornecedorRepo,
		dispatcher:     dispatcher,
	}
}

func (s *licitacaoService) Criar(ctx context.Context, req dto.CriarLicitacaoRequest) (*model.Licitacao, error) {
	modalidade := model.Modalidade(req.Modalidade)
	if !modalidade.IsValid() {
		return nil, ErrModalidadeInvalida
	}

	orgaoID, err := uuid.Parse(req.OrgaoID)
	if err != nil {
		return nil, fmt.Errorf("orgaoId inválido: %w", err)
	}
	orgao, err := s.orgaoRepo.FindByID(ctx, orgaoID)
	if err != nil {
		return nil, ErrOrgaoNaoEncontrado
	}

	dataFim, err := parseData(req.DataFimPropostas)
	if err != nil {
		return nil, fmt.Errorf("dataFimPropostas inválida: %w", err)
	}
	dataSessao, err := parseData(req.DataSessao)
	if err != nil {
		return nil, fmt.Errorf("dataSessao inválida: %w", err)
	}

	l := &model.Licitacao{
		ID:          uuid.New(),
		Status:      model.StatusPropostaNaoCadastrada,
		NumeroAviso: req.NumeroAviso,
		Modalidade:  modalidade,
		// Snapshot copy: later edits to the órgão directory must not change
		// this licitação.
		Orgao:            orgao.Snapshot(),
		LocalEntrega:     req.LocalEntrega,
		Descricao:        req.Descricao,
		DataFimPropostas: dataFim,
		DataSessao:       dataSessao,
	}
	for _, in := range req.Itens {
		item := model.Item{
			ID:                      uuid.New(),
			LicitacaoID:             l.ID,
			Objeto:                  in.Objeto,
			Especificacoes:          in.Especificacoes,
			Quantidade:              in.Quantidade,
			ValorReferenciaUnitario: in.ValorReferenciaUnitario,
			Cotacoes:                []model.Cotacao{},
		}
		item.Recalcular()
		l.Itens = append(l.Itens, item)
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *licitacaoService) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Licitacao, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLicitacaoNaoEncontrada
		}
		return nil, err
	}
	return l, nil
}

func (s *licitacaoService) Listar(ctx context.Context, filter dto.LicitacaoFilter) (*dto.LicitacaoListResponse, error) {
	// The handler rejects out-of-range paging with a validation error; this
	// guard keeps other callers from zero offsets and a zero divisor below.
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	} else if filter.Limit > 100 {
		filter.Limit = 100
	}

	licitacoes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}
	return &dto.LicitacaoListResponse{
		Data:       licitacoes,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *licitacaoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarLicitacaoRequest) (*model.Licitacao, error) {
	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NumeroAviso != nil {
		l.NumeroAviso = *req.NumeroAviso
	}
	if req.Modalidade != nil {
		modalidade := model.Modalidade(*req.Modalidade)
		if !modalidade.IsValid() {
			return nil, ErrModalidadeInvalida
		}
		l.Modalidade = modalidade
	}
	if req.LocalEntrega != nil {
		l.LocalEntrega = *req.LocalEntrega
	}
	if req.Descricao != nil {
		l.Descricao = *req.Descricao
	}
	if req.DataFimPropostas != nil {
		dataFim, err := parseData(*req.DataFimPropostas)
		if err != nil {
			return nil, fmt.Errorf("dataFimPropostas inválida: %w", err)
		}
		l.DataFimPropostas = dataFim
	}
	if req.DataSessao != nil {
		dataSessao, err := parseData(*req.DataSessao)
		if err != nil {
			return nil, fmt.Errorf("dataSessao inválida: %w", err)
		}
		l.DataSessao = dataSessao
	}

	return s.salvar(ctx, l)
}

func (s *licitacaoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ObterPorID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *licitacaoService) AtualizarStatus(ctx context.Context, id uuid.UUID, status string) (*model.Licitacao, error) {
	novoStatus := model.StatusLicitacao(status)
	if !novoStatus.IsValid() {
		return nil, ErrStatusInvalido
	}

	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Status = novoStatus
	salvo, err := s.salvar(ctx, l)
	if err != nil {
		return nil, err
	}

	// Delivery and cancellation close the process; the responsible team gets
	// a notification email, off the request path.
	if novoStatus.IsTerminal() && s.dispatcher != nil {
		payload := worker.EmailJobPayload{
			Subject: fmt.Sprintf("Licitação %s: %s", l.NumeroAviso, novoStatus),
			Body: fmt.Sprintf("A licitação %s (%s) mudou para o status %q.",
				l.NumeroAviso, l.Orgao.Nome, novoStatus),
		}
		// Notification is best effort; the status change already landed.
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Warn().Err(err).
				Str("licitacao_id", l.ID.String()).
				Str("status", string(novoStatus)).
				Msg("falha ao enfileirar e-mail de notificação")
		}
	}
	return salvo, nil
}

func (s *licitacaoService) AdicionarItem(ctx context.Context, id uuid.UUID, req dto.CriarItemInput) (*model.Licitacao, error) {
	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	item := model.Item{
		ID:                      uuid.New(),
		LicitacaoID:             l.ID,
		Objeto:                  req.Objeto,
		Especificacoes:          req.Especificacoes,
		Quantidade:              req.Quantidade,
		ValorReferenciaUnitario: req.ValorReferenciaUnitario,
		Cotacoes:                []model.Cotacao{},
	}
	item.Recalcular()
	l.Itens = append(l.Itens, item)

	return s.salvar(ctx, l)
}

func (s *licitacaoService) AtualizarItem(ctx context.Context, id, itemID uuid.UUID, req dto.AtualizarItemRequest) (*model.Licitacao, error) {
	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	item := l.FindItem(itemID)
	if item == nil {
		return nil, ErrItemNaoEncontrado
	}

	if req.Objeto != nil {
		item.Objeto = *req.Objeto
	}
	if req.Especificacoes != nil {
		item.Especificacoes = *req.Especificacoes
	}
	if req.Quantidade != nil {
		item.Quantidade = *req.Quantidade
	}
	if req.ValorReferenciaUnitario != nil {
		item.ValorReferenciaUnitario = *req.ValorReferenciaUnitario
	}
	// Quantidade feeds every cotação total, so the whole item recomputes.
	item.Recalcular()

	return s.salvar(ctx, l)
}

func (s *licitacaoService) RemoverItem(ctx context.Context, id, itemID uuid.UUID) (*model.Licitacao, error) {
	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.FindItem(itemID) == nil {
		return nil, ErrItemNaoEncontrado
	}

	// Removing the last remaining item is allowed here; the creation flow
	// enforces its one-item minimum at the DTO boundary.
	itens := l.Itens[:0]
	for _, item := range l.Itens {
		if item.ID != itemID {
			itens = append(itens, item)
		}
	}
	l.Itens = itens

	l.UpdatedAt = time.Now().UTC()
	if err := s.repo.RemoveItem(ctx, l, itemID); err != nil {
		return nil, err
	}
	return l, nil
}

// AdicionarCotacao appends a quotation with a generated id, zeroed monetary
// fields and no supplier yet. Unknown itemID returns ErrItemNaoEncontrado —
// an explicit error instead of the silent no-op of earlier versions.
func (s *licitacaoService) AdicionarCotacao(ctx context.Context, id, itemID uuid.UUID) (*model.Licitacao, error) {
	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	item := l.FindItem(itemID)
	if item == nil {
		return nil, ErrItemNaoEncontrado
	}

	cotacao := model.Cotacao{
		ID:               uuid.New(),
		ItemID:           item.ID,
		ValorUnitario:    decimal.Zero,
		ValorTotal:       decimal.Zero,
		FreteEntrada:     decimal.Zero,
		FreteSaida:       decimal.Zero,
		LanceMinimo:      decimal.Zero,
		PorcentagemLucro: decimal.Zero,
		LanceIdeal:       decimal.Zero,
	}
	item.Cotacoes = append(item.Cotacoes, cotacao)

	return s.salvar(ctx, l)
}

func (s *licitacaoService) AtualizarCotacao(ctx context.Context, id, itemID, cotacaoID uuid.UUID, req dto.AtualizarCotacaoRequest) (*model.Licitacao, error) {
	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	item := l.FindItem(itemID)
	if item == nil {
		return nil, ErrItemNaoEncontrado
	}

	var cotacao *model.Cotacao
	for idx := range item.Cotacoes {
		if item.Cotacoes[idx].ID == cotacaoID {
			cotacao = &item.Cotacoes[idx]
			break
		}
	}
	if cotacao == nil {
		return nil, ErrCotacaoNaoEncontrada
	}

	if req.FornecedorID != nil {
		fornecedorID, err := uuid.Parse(*req.FornecedorID)
		if err != nil {
			return nil, fmt.Errorf("fornecedorId inválido: %w", err)
		}
		if _, err := s.fornecedorRepo.FindByID(ctx, fornecedorID); err != nil {
			return nil, ErrFornecedorNaoEncontrado
		}
		cotacao.FornecedorID = &fornecedorID
	}
	if req.ValorUnitario != nil {
		cotacao.ValorUnitario = *req.ValorUnitario
	}
	if req.FreteEntrada != nil {
		cotacao.FreteEntrada = *req.FreteEntrada
	}
	if req.FreteSaida != nil {
		cotacao.FreteSaida = *req.FreteSaida
	}
	if req.LanceMinimo != nil {
		cotacao.LanceMinimo = *req.LanceMinimo
	}
	if req.Marca != nil {
		cotacao.Marca = req.Marca
	}
	if req.Modelo != nil {
		cotacao.Modelo = req.Modelo
	}
	cotacao.Recalcular(item.Quantidade)

	return s.salvar(ctx, l)
}

func (s *licitacaoService) RemoverCotacao(ctx context.Context, id, itemID, cotacaoID uuid.UUID) (*model.Licitacao, error) {
	l, err := s.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	item := l.FindItem(itemID)
	if item == nil {
		return nil, ErrItemNaoEncontrado
	}

	found := false
	cotacoes := item.Cotacoes[:0]
	for _, c := range item.Cotacoes {
		if c.ID == cotacaoID {
			found = true
			continue
		}
		cotacoes = append(cotacoes, c)
	}
	if !found {
		return nil, ErrCotacaoNaoEncontrada
	}
	item.Cotacoes = cotacoes

	l.UpdatedAt = time.Now().UTC()
	if err := s.repo.RemoveCotacao(ctx, l, cotacaoID); err != nil {
		return nil, err
	}
	return l, nil
}

// salvar stamps UpdatedAt and persists the aggregate. Every mutating
// operation funnels through here so the timestamp advances exactly once per
// logical edit.
func (s *licitacaoService) salvar(ctx context.Context, l *model.Licitacao) (*model.Licitacao, error) {
	l.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// parseData accepts RFC 3339 timestamps and plain dates.
func parseData(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
