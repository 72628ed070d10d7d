package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dashboardCacheKey = "cache:dashboard"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService aggregates process counts for the landing screen. The
// result is cached briefly in Redis; a short TTL beats invalidation here.
type DashboardService interface {
	Resumo(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	licitacaoRepo  repository.LicitacaoRepository
	fornecedorRepo repository.FornecedorRepository
	orgaoRepo      repository.OrgaoRepository
	rdb            *redis.Client
}

func NewDashboardService(
	licitacaoRepo repository.LicitacaoRepository,
	fornecedorRepo repository.FornecedorRepository,
	orgaoRepo repository.OrgaoRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		licitacaoRepo:  licitacaoRepo,
		fornecedorRepo: fornecedorRepo,
		orgaoRepo:      orgaoRepo,
		rdb:            rdb,
	}
}

func (s *dashboardService) Resumo(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	porStatus, err := s.licitacaoRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	totalLicitacoes, err := s.licitacaoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalFornecedores, err := s.fornecedorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrgaos, err := s.orgaoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalLicitacoes:   totalLicitacoes,
		TotalFornecedores: totalFornecedores,
		TotalOrgaos:       totalOrgaos,
		PorStatus:         porStatus,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("dashboard: cache write failed")
			}
		}
	}
	return resp, nil
}
