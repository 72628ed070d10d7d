package handler

// HTTP-level tests for the query-string boundary of the list endpoint: the
// validator tags on the filter must reject out-of-range paging before the
// service runs.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLicitacaoService implements only what the routed handler calls; the
// embedded nil interface panics on anything unexpected.
type stubLicitacaoService struct {
	service.LicitacaoService
	listarFn func(filter dto.LicitacaoFilter) (*dto.LicitacaoListResponse, error)
}

func (s *stubLicitacaoService) Listar(_ context.Context, filter dto.LicitacaoFilter) (*dto.LicitacaoListResponse, error) {
	return s.listarFn(filter)
}

func newListarRouter(fn func(filter dto.LicitacaoFilter) (*dto.LicitacaoListResponse, error)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLicitacoesHandler(&stubLicitacaoService{listarFn: fn})
	r.GET("/v1/licitacoes", h.Listar)
	return r
}

func TestListarRejeitaPaginacaoForaDoIntervalo(t *testing.T) {
	chamadas := 0
	r := newListarRouter(func(dto.LicitacaoFilter) (*dto.LicitacaoListResponse, error) {
		chamadas++
		return &dto.LicitacaoListResponse{}, nil
	})

	for _, query := range []string{"limit=0", "limit=500", "page=0", "page=-1&limit=20"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/licitacoes?"+query, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, query)
		assert.Contains(t, w.Body.String(), "Erro de validação", query)
	}
	assert.Zero(t, chamadas)
}

func TestListarAplicaPadroesDePaginacao(t *testing.T) {
	var recebido dto.LicitacaoFilter
	r := newListarRouter(func(f dto.LicitacaoFilter) (*dto.LicitacaoListResponse, error) {
		recebido = f
		return &dto.LicitacaoListResponse{Page: f.Page, Limit: f.Limit}, nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/licitacoes", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, recebido.Page)
	assert.Equal(t, 20, recebido.Limit)
}
