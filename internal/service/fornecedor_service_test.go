package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func criarFornecedorRequest() dto.CriarFornecedorRequest {
	site := "https://master.example.com.br"
	return dto.CriarFornecedorRequest{
		Empresa:     "Master Distribuidora LTDA",
		RamoAtuacao: "Material de escritório",
		UF:          "pe",
		NomeContato: "Joana Albuquerque",
		Telefone:    "(81) 99999-0000",
		WhatsApp:    true,
		Email:       "contato@master.example.com.br",
		Site:        &site,
		CNPJ:        "12.345.678/0001-00",
	}
}

func TestCriarFornecedor(t *testing.T) {
	repo := &stubFornecedorRepo{fornecedores: map[uuid.UUID]*model.Fornecedor{}}
	svc := NewFornecedorService(repo)

	resp, err := svc.Criar(context.Background(), criarFornecedorRequest())
	require.NoError(t, err)
	assert.Equal(t, "Master Distribuidora LTDA", resp.Empresa)
	// UF is normalized to uppercase on the way in
	assert.Equal(t, "PE", resp.UF)
	assert.Len(t, repo.fornecedores, 1)
}

func TestCriarFornecedorCNPJDuplicado(t *testing.T) {
	repo := &stubFornecedorRepo{
		fornecedores: map[uuid.UUID]*model.Fornecedor{},
		createErr:    gorm.ErrDuplicatedKey,
	}
	svc := NewFornecedorService(repo)

	_, err := svc.Criar(context.Background(), criarFornecedorRequest())
	assert.ErrorIs(t, err, ErrCNPJJaCadastrado)
}

func TestObterFornecedorInexistente(t *testing.T) {
	repo := &stubFornecedorRepo{fornecedores: map[uuid.UUID]*model.Fornecedor{}}
	svc := NewFornecedorService(repo)

	_, err := svc.ObterPorID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrFornecedorNaoEncontrado)
}

func TestAtualizarFornecedor(t *testing.T) {
	repo := &stubFornecedorRepo{fornecedores: map[uuid.UUID]*model.Fornecedor{}}
	svc := NewFornecedorService(repo)

	criado, err := svc.Criar(context.Background(), criarFornecedorRequest())
	require.NoError(t, err)

	req := criarFornecedorRequest()
	req.Telefone = "(81) 98888-1111"
	atualizado, err := svc.Atualizar(context.Background(), uuid.MustParse(criado.ID), req)
	require.NoError(t, err)
	assert.Equal(t, "(81) 98888-1111", atualizado.Telefone)
}

func TestExcluirFornecedorInexistente(t *testing.T) {
	repo := &stubFornecedorRepo{fornecedores: map[uuid.UUID]*model.Fornecedor{}}
	svc := NewFornecedorService(repo)

	err := svc.Excluir(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrFornecedorNaoEncontrado)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.New(`duplicate key value violates unique constraint "uni_fornecedores_cnpj"`)))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
