package service

// Tests for attachment rules: PDF-only, 10 MiB ceiling, both enforced before
// any storage or DB call, and the storage path convention.

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/jbenteu/lance-pro-control/internal/infra"
	"github.com/jbenteu/lance-pro-control/internal/model"
	"github.com/jbenteu/lance-pro-control/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Recording stub Storage ───────────────────────────────────────────────────

type stubStorage struct {
	objects map[string][]byte
	uploads int
}

func newStubStorage() *stubStorage {
	return &stubStorage{objects: make(map[string][]byte)}
}

func (s *stubStorage) Upload(path string, data []byte) error {
	s.uploads++
	s.objects[path] = append([]byte(nil), data...)
	return nil
}

func (s *stubStorage) Download(path string) ([]byte, error) {
	data, ok := s.objects[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (s *stubStorage) Remove(path string) error {
	delete(s.objects, path)
	return nil
}

func (s *stubStorage) PublicURL(path string) string {
	return "http://localhost:8000/files/" + path
}

var _ infra.Storage = (*stubStorage)(nil)

// ── In-memory AnexoRepository stub ───────────────────────────────────────────

type stubAnexoRepo struct {
	anexos  map[uuid.UUID]*model.Anexo
	creates int
}

func newStubAnexoRepo() *stubAnexoRepo {
	return &stubAnexoRepo{anexos: make(map[uuid.UUID]*model.Anexo)}
}

func (r *stubAnexoRepo) Create(_ context.Context, a *model.Anexo) error {
	r.creates++
	cloned := *a
	r.anexos[a.ID] = &cloned
	return nil
}

func (r *stubAnexoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Anexo, error) {
	a, ok := r.anexos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAnexoRepo) ListByLicitacao(_ context.Context, licitacaoID uuid.UUID) ([]model.Anexo, error) {
	var out []model.Anexo
	for _, a := range r.anexos {
		if a.LicitacaoID == licitacaoID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAnexoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.anexos, id)
	return nil
}

var _ repository.AnexoRepository = (*stubAnexoRepo)(nil)

// ── helpers ──────────────────────────────────────────────────────────────────

func newAnexoFixture(t *testing.T) (AnexoService, *stubAnexoRepo, *stubStorage, uuid.UUID) {
	t.Helper()

	licitacaoRepo := newStubLicitacaoRepo()
	l := &model.Licitacao{ID: uuid.New(), Status: model.StatusEmDisputa}
	require.NoError(t, licitacaoRepo.Create(context.Background(), l))

	repo := newStubAnexoRepo()
	storage := newStubStorage()
	svc := NewAnexoService(repo, licitacaoRepo, storage)
	return svc, repo, storage, l.ID
}

func TestUploadRejeitaNaoPDF(t *testing.T) {
	svc, repo, storage, licitacaoID := newAnexoFixture(t)

	_, err := svc.Upload(context.Background(), licitacaoID, "foto.png", "image/png", []byte("png"))
	assert.ErrorIs(t, err, ErrAnexoNaoPDF)

	// rejected before any collaborator was touched
	assert.Zero(t, storage.uploads)
	assert.Zero(t, repo.creates)
}

func TestUploadRejeitaAcimaDoLimite(t *testing.T) {
	svc, repo, storage, licitacaoID := newAnexoFixture(t)

	grande := bytes.Repeat([]byte{0x25}, 11*1024*1024)
	_, err := svc.Upload(context.Background(), licitacaoID, "edital.pdf", "application/pdf", grande)
	assert.ErrorIs(t, err, ErrAnexoMuitoGrande)
	assert.Zero(t, storage.uploads)
	assert.Zero(t, repo.creates)
}

func TestUploadNoLimiteExato(t *testing.T) {
	svc, _, storage, licitacaoID := newAnexoFixture(t)

	exato := bytes.Repeat([]byte{0x25}, MaxAnexoBytes)
	resp, err := svc.Upload(context.Background(), licitacaoID, "edital.pdf", "application/pdf", exato)
	require.NoError(t, err)
	assert.Equal(t, int64(MaxAnexoBytes), resp.TamanhoBytes)
	assert.Equal(t, 1, storage.uploads)
}

func TestUploadConvencaoDeCaminho(t *testing.T) {
	svc, _, storage, licitacaoID := newAnexoFixture(t)

	_, err := svc.Upload(context.Background(), licitacaoID, "proposta final.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)

	require.Len(t, storage.objects, 1)
	var path string
	for p := range storage.objects {
		path = p
	}

	// {licitacaoId}/{epochMillis}-{nomeArquivo}
	require.True(t, strings.HasPrefix(path, licitacaoID.String()+"/"))
	resto := strings.TrimPrefix(path, licitacaoID.String()+"/")
	dash := strings.Index(resto, "-")
	require.Greater(t, dash, 0)
	_, err = strconv.ParseInt(resto[:dash], 10, 64)
	assert.NoError(t, err, "prefix before the dash must be epoch millis")
	assert.Equal(t, "proposta final.pdf", resto[dash+1:])
}

func TestUploadLicitacaoInexistente(t *testing.T) {
	svc, _, storage, _ := newAnexoFixture(t)

	_, err := svc.Upload(context.Background(), uuid.New(), "edital.pdf", "application/pdf", []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, ErrLicitacaoNaoEncontrada)
	assert.Zero(t, storage.uploads)
}

func TestDownloadEExcluir(t *testing.T) {
	svc, repo, storage, licitacaoID := newAnexoFixture(t)

	resp, err := svc.Upload(context.Background(), licitacaoID, "edital.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	anexoID := uuid.MustParse(resp.ID)

	nome, data, err := svc.Download(context.Background(), anexoID)
	require.NoError(t, err)
	assert.Equal(t, "edital.pdf", nome)
	assert.Equal(t, []byte("%PDF-1.7"), data)

	require.NoError(t, svc.Excluir(context.Background(), anexoID))
	assert.Empty(t, storage.objects)
	assert.Empty(t, repo.anexos)

	assert.ErrorIs(t, svc.Excluir(context.Background(), anexoID), ErrAnexoNaoEncontrado)
}
