package infra

import (
	"testing"

	"github.com/jbenteu/lance-pro-control/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Accented names everywhere: the renderer must translate them to the core
// fonts' codepage instead of emitting raw UTF-8.
func TestGerarMapaCotacoesComAcentos(t *testing.T) {
	fornecedorID := uuid.New()
	marca := "Suprimentos São João"

	l := &model.Licitacao{
		ID:          uuid.New(),
		NumeroAviso: "90012/2026",
		Modalidade:  model.ModalidadePregao,
		Status:      model.StatusEmDisputa,
		Orgao:       model.OrgaoSnapshot{OrgaoID: uuid.New(), Nome: "Fundação José de Alencar"},
		Itens: []model.Item{
			{
				ID:                      uuid.New(),
				Objeto:                  "Papel A4 não reciclado",
				Quantidade:              10,
				ValorReferenciaUnitario: decimal.RequireFromString("25"),
				ValorReferenciaTotal:    decimal.RequireFromString("250"),
				Cotacoes: []model.Cotacao{
					{
						ID:            uuid.New(),
						FornecedorID:  &fornecedorID,
						ValorUnitario: decimal.RequireFromString("20"),
						ValorTotal:    decimal.RequireFromString("200"),
						LanceMinimo:   decimal.RequireFromString("22"),
						Marca:         &marca,
					},
				},
			},
			{ID: uuid.New(), Objeto: "Grampeador", Quantidade: 2},
		},
	}

	data, err := GerarMapaCotacoes(l, map[string]string{
		fornecedorID.String(): "Distribuidora Irmãos Araújo LTDA",
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
