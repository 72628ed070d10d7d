package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	service.AuthService
	refreshErr error
}

func (s *stubAuthService) Refresh(_ context.Context, _ string) (*dto.LoginResponse, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return &dto.LoginResponse{TokenType: "bearer"}, nil
}

func newRefreshRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/auth/refresh", NewAuthHandler(svc).Refresh)
	return r
}

func TestRefreshComTokenInvalidoRetorna401(t *testing.T) {
	r := newRefreshRouter(&stubAuthService{refreshErr: service.ErrTokenInvalido})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh",
		strings.NewReader(`{"refresh_token":"nem-um-jwt"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "refresh token inválido ou expirado")
}

func TestRefreshValido(t *testing.T) {
	r := newRefreshRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh",
		strings.NewReader(`{"refresh_token":"valido"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bearer")
}
