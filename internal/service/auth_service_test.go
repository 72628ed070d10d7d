package service

import (
	"context"
	"testing"

	"github.com/jbenteu/lance-pro-control/internal/config"
	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/model"
	"github.com/jbenteu/lance-pro-control/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existing := range r.usuarios {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cloned := *u
	r.usuarios[u.ID] = &cloned
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email && u.Ativo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Ativo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cloned := *u
	r.usuarios[u.ID] = &cloned
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Ativo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Ativo = true
	}
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── helpers ──────────────────────────────────────────────────────────────────

func newAuthFixture(t *testing.T) (AuthService, *stubUsuarioRepo, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	repo := newStubUsuarioRepo()
	return NewAuthService(repo, cfg), repo, cfg
}

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, email, senha, perfil string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		Email:        email,
		Nome:         "Usuário de Teste",
		PasswordHash: string(hash),
		Perfil:       perfil,
		Ativo:        true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	svc, repo, cfg := newAuthFixture(t)
	seedUsuario(t, repo, "ana@example.com", "s3nh4-forte", model.PerfilOperador)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Senha: "s3nh4-forte"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, cfg.JWTExpirationHours*3600, resp.ExpiresIn)
	assert.Equal(t, "ana@example.com", resp.User.Email)

	// access token carries the identity claims, HMAC-signed
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, model.PerfilOperador, claims["perfil"])
}

func TestLoginSenhaErrada(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUsuario(t, repo, "ana@example.com", "s3nh4-forte", model.PerfilOperador)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Senha: "errada"})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginUsuarioInativo(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	u := seedUsuario(t, repo, "ana@example.com", "s3nh4-forte", model.PerfilOperador)
	require.NoError(t, repo.SoftDelete(context.Background(), u.ID))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Senha: "s3nh4-forte"})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestRefresh(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUsuario(t, repo, "ana@example.com", "s3nh4-forte", model.PerfilAdmin)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Senha: "s3nh4-forte"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", renovado.User.Email)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	// the sentinel is what the handler maps to 401, not a generic failure
	_, err := svc.Refresh(context.Background(), "nem-um-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestRefreshUsuarioDesativado(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	u := seedUsuario(t, repo, "ana@example.com", "s3nh4-forte", model.PerfilOperador)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Senha: "s3nh4-forte"})
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(context.Background(), u.ID))
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestCriarUsuarioPerfilPadrao(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	resp, err := svc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{
		Nome:  "Bruno Lima",
		Email: "bruno@example.com",
		Senha: "s3nh4-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PerfilOperador, resp.Perfil)
	assert.True(t, resp.Ativo)
}

func TestCriarUsuarioEmailDuplicado(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUsuario(t, repo, "bruno@example.com", "s3nh4-forte", model.PerfilOperador)

	_, err := svc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{
		Nome:  "Outro Bruno",
		Email: "bruno@example.com",
		Senha: "s3nh4-forte",
	})
	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
}

func TestDesativarEReativarUsuario(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	u := seedUsuario(t, repo, "carla@example.com", "s3nh4-forte", model.PerfilOperador)

	require.NoError(t, svc.DesativarUsuario(context.Background(), u.ID))
	ativos, err := svc.ListarUsuarios(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, ativos)

	todos, err := svc.ListarUsuarios(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	require.NoError(t, svc.ReativarUsuario(context.Background(), u.ID))
	ativos, err = svc.ListarUsuarios(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, ativos, 1)
}
