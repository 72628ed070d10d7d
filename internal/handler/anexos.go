package handler

import (
	"io"
	"net/http"

	"github.com/jbenteu/lance-pro-control/internal/apierror"
	"github.com/jbenteu/lance-pro-control/internal/service"

	"github.com/gin-gonic/gin"
)

type AnexosHandler struct{ svc service.AnexoService }

func NewAnexosHandler(svc service.AnexoService) *AnexosHandler {
	return &AnexosHandler{svc: svc}
}

// Upload receives a multipart form with a single "arquivo" field. The service
// enforces type and size; the handler only caps the read so an oversized body
// cannot exhaust memory before the check runs.
func (h *AnexosHandler) Upload(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("campo 'arquivo' ausente no formulário"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer f.Close()

	// Read one byte past the limit so the service can reject oversized files.
	data, err := io.ReadAll(io.LimitReader(f, service.MaxAnexoBytes+1))
	if err != nil {
		_ = c.Error(err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	resp, err := h.svc.Upload(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AnexosHandler) Listar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnexosHandler) Download(c *gin.Context) {
	anexoID, ok := parseUUIDParam(c, "anexoId")
	if !ok {
		return
	}
	nome, data, err := h.svc.Download(c.Request.Context(), anexoID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+nome+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *AnexosHandler) Excluir(c *gin.Context) {
	anexoID, ok := parseUUIDParam(c, "anexoId")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), anexoID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
