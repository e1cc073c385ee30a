package conciliacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValorBRL(t *testing.T) {
	casos := map[string]float64{
		"R$ 1.234,56": 1234.56,
		"1.234,56":    1234.56,
		"12,50":       12.50,
		"-1500.00":    -1500.00,
		"(200,00)":    -200.00,
		`"1.500,00"`:  1500.00,
		"R$ -35,90":   -35.90,
		"0,00":        0,
		"":            0,
		"lixo":        0,
		"SALDO":       0,
	}

	for entrada, esperado := range casos {
		assert.InDelta(t, esperado, ParseValorBRL(entrada), 1e-9, "entrada: %q", entrada)
	}
}

func TestValoresIguaisNaFronteiraDaTolerancia(t *testing.T) {
	// diferença exatamente igual à tolerância ainda é igualdade
	assert.True(t, valoresIguais(-100.00, -100.01, Epsilon))
	assert.True(t, valoresIguais(100.01, 100.00, Epsilon))
	// um centavo além, não
	assert.False(t, valoresIguais(-100.00, -100.02, Epsilon))
	assert.False(t, valoresIguais(100.02, 100.00, Epsilon))
}

func TestArredondar(t *testing.T) {
	assert.InDelta(t, 10.35, arredondar(10.346, 2), 1e-9)
	assert.InDelta(t, -10.35, arredondar(-10.346, 2), 1e-9)
	assert.InDelta(t, 0.0, arredondar(0.004, 2), 1e-9)
}
