package handler

import (
	"net/http"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/model"
	"github.com/jbenteu/lance-pro-control/internal/service"

	"github.com/gin-gonic/gin"
)

type LicitacoesHandler struct{ svc service.LicitacaoService }

func NewLicitacoesHandler(svc service.LicitacaoService) *LicitacoesHandler {
	return &LicitacoesHandler{svc: svc}
}

func (h *LicitacoesHandler) Criar(c *gin.Context) {
	var req dto.CriarLicitacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LicitacoesHandler) Listar(c *gin.Context) {
	var filter dto.LicitacaoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if !validateStruct(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LicitacoesHandler) ObterPorID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LicitacoesHandler) Atualizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarLicitacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LicitacoesHandler) Excluir(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LicitacoesHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StatusOptions returns every workflow status with its display color, in
// fixed order, so clients never hardcode the palette.
func (h *LicitacoesHandler) StatusOptions(c *gin.Context) {
	opts := make([]dto.StatusOptionResponse, 0, len(model.StatusOptions))
	for _, s := range model.StatusOptions {
		opts = append(opts, dto.StatusOptionResponse{Status: string(s), Cor: s.Cor()})
	}
	c.JSON(http.StatusOK, opts)
}

// ── Itens ─────────────────────────────────────────────────────────────────────

func (h *LicitacoesHandler) AdicionarItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CriarItemInput
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdicionarItem(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LicitacoesHandler) AtualizarItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}
	var req dto.AtualizarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarItem(c.Request.Context(), id, itemID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LicitacoesHandler) RemoverItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}
	resp, err := h.svc.RemoverItem(c.Request.Context(), id, itemID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Cotações ──────────────────────────────────────────────────────────────────

func (h *LicitacoesHandler) AdicionarCotacao(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}
	resp, err := h.svc.AdicionarCotacao(c.Request.Context(), id, itemID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LicitacoesHandler) AtualizarCotacao(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}
	cotacaoID, ok := parseUUIDParam(c, "cotacaoId")
	if !ok {
		return
	}
	var req dto.AtualizarCotacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarCotacao(c.Request.Context(), id, itemID, cotacaoID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LicitacoesHandler) RemoverCotacao(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}
	cotacaoID, ok := parseUUIDParam(c, "cotacaoId")
	if !ok {
		return
	}
	resp, err := h.svc.RemoverCotacao(c.Request.Context(), id, itemID, cotacaoID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
