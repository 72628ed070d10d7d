package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOptionsCompleto(t *testing.T) {
	assert.Len(t, StatusOptions, 10)
	seen := make(map[StatusLicitacao]bool)
	for _, s := range StatusOptions {
		assert.True(t, s.IsValid(), "status %q out of the enumeration", s)
		assert.False(t, seen[s], "status %q listed twice", s)
		seen[s] = true
	}
}

func TestStatusCor(t *testing.T) {
	cases := map[StatusLicitacao]string{
		StatusPropostaNaoCadastrada: "red",
		StatusPropostaCadastrada:    "yellow",
		StatusEmDisputa:             "blue",
		StatusSelecaoFornecedores:   "purple",
		StatusAceita:                "green",
		StatusAceitaHabilitada:      "green",
		StatusAguardandoEmpenho:     "orange",
		StatusAguardandoEntrega:     "indigo",
		StatusEntregue:              "emerald",
		StatusCancelada:             "gray",
	}
	for status, cor := range cases {
		assert.Equal(t, cor, status.Cor())
	}
}

func TestStatusCorDesconhecido(t *testing.T) {
	// Cor is total: anything outside the enumeration gets the neutral token.
	assert.Equal(t, CorNeutra, StatusLicitacao("Rascunho").Cor())
	assert.Equal(t, CorNeutra, StatusLicitacao("").Cor())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusEntregue.IsTerminal())
	assert.True(t, StatusCancelada.IsTerminal())
	for _, s := range StatusOptions[:8] {
		assert.False(t, s.IsTerminal(), "status %q must not be terminal", s)
	}
}

func TestModalidade(t *testing.T) {
	assert.True(t, ModalidadeDispensa.IsValid())
	assert.True(t, ModalidadePregao.IsValid())
	assert.False(t, Modalidade("Concorrência").IsValid())
}
