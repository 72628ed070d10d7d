package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotalCotacao(t *testing.T) {
	assert.True(t, dec("250").Equal(TotalCotacao(10, dec("25"))))
	assert.True(t, dec("200").Equal(TotalCotacao(10, dec("20"))))
	assert.True(t, decimal.Zero.Equal(TotalCotacao(0, dec("99.90"))))
	// cents must not drift
	assert.True(t, dec("0.30").Equal(TotalCotacao(3, dec("0.10"))))
}

func TestLanceIdeal(t *testing.T) {
	assert.True(t, dec("28").Equal(LanceIdeal(dec("20"))))
	assert.True(t, dec("35").Equal(LanceIdeal(dec("25"))))
	assert.True(t, decimal.Zero.Equal(LanceIdeal(decimal.Zero)))
}

func TestMargemLucro(t *testing.T) {
	m, ok := MargemLucro(dec("20"), dec("22"))
	require.True(t, ok)
	assert.True(t, dec("10").Equal(m))

	// losses are negative margins, still defined
	m, ok = MargemLucro(dec("20"), dec("18"))
	require.True(t, ok)
	assert.True(t, dec("-10").Equal(m))

	// undefined while either input is unset
	_, ok = MargemLucro(decimal.Zero, dec("22"))
	assert.False(t, ok)
	_, ok = MargemLucro(dec("20"), decimal.Zero)
	assert.False(t, ok)
	_, ok = MargemLucro(decimal.Zero, decimal.Zero)
	assert.False(t, ok)
}

func TestCotacaoRecalcular(t *testing.T) {
	c := Cotacao{
		ValorUnitario: dec("20"),
		LanceMinimo:   dec("22"),
	}
	c.Recalcular(10)

	assert.True(t, dec("200").Equal(c.ValorTotal))
	assert.True(t, dec("28").Equal(c.LanceIdeal))
	assert.True(t, dec("10").Equal(c.PorcentagemLucro))
}

func TestCotacaoRecalcularPreservaMargemIndefinida(t *testing.T) {
	c := Cotacao{
		ValorUnitario:    dec("20"),
		LanceMinimo:      decimal.Zero,
		PorcentagemLucro: dec("12.5"),
	}
	c.Recalcular(4)

	// lance mínimo cleared: stored margin survives, totals still refresh
	assert.True(t, dec("12.5").Equal(c.PorcentagemLucro))
	assert.True(t, dec("80").Equal(c.ValorTotal))
}

func TestItemRecalcularCascata(t *testing.T) {
	item := Item{
		Quantidade:              10,
		ValorReferenciaUnitario: dec("25"),
		Cotacoes: []Cotacao{
			{ValorUnitario: dec("20"), LanceMinimo: dec("22")},
			{ValorUnitario: dec("18")},
		},
	}
	item.Recalcular()

	assert.True(t, dec("250").Equal(item.ValorReferenciaTotal))
	assert.True(t, dec("200").Equal(item.Cotacoes[0].ValorTotal))
	assert.True(t, dec("10").Equal(item.Cotacoes[0].PorcentagemLucro))
	assert.True(t, dec("180").Equal(item.Cotacoes[1].ValorTotal))
	assert.True(t, dec("25.2").Equal(item.Cotacoes[1].LanceIdeal))
}
