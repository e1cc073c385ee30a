package conciliacao

import (
	"testing"

	"conciliacao-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBanco(t *testing.T) {
	linhas := [][]string{
		{"Data", "Descrição", "Documento", "Valor", "Saldo"},
		{"", "SALDO ANTERIOR", "", "10.000,00", ""},
		{"10/03/2024", "PAGAMENTO PIX JOAO SILVA", "123", "-1.500,00", "8.500,00"},
		{"12/03/2024", "TED RECEBIDA CONSTRUTORA ALFA LTDA", "", "3.000,00", "11.500,00"},
		{"", "", "", "", ""},
		{"texto solto"},
	}

	lancamentos, saldoAnterior, avisos := ParseBanco(linhas, RegrasPadrao())

	require.Len(t, lancamentos, 2)
	require.NotNil(t, saldoAnterior)
	assert.InDelta(t, 10000.00, *saldoAnterior, 1e-9)

	primeiro := lancamentos[0]
	assert.Equal(t, 0, primeiro.Seq)
	assert.Equal(t, "PAGAMENTO PIX JOAO SILVA", primeiro.Descricao)
	assert.InDelta(t, -1500.00, primeiro.Valor, 1e-9)
	assert.Equal(t, "JOAO SILVA", primeiro.Nome)
	assert.Equal(t, domain.ClassPixEnviado, primeiro.Classificacao)
	require.NotNil(t, primeiro.Saldo)
	assert.InDelta(t, 8500.00, *primeiro.Saldo, 1e-9)
	assert.False(t, primeiro.Conciliado)
	assert.Equal(t, -1, primeiro.IndiceOmie)

	// a linha de cabeçalho gera aviso de descarte, não erro
	assert.NotEmpty(t, avisos)
}

func TestParseBancoLinhaSemValor(t *testing.T) {
	linhas := [][]string{
		{"10/03/2024", "PIX SEM VALOR", "", "", ""},
	}

	lancamentos, _, avisos := ParseBanco(linhas, RegrasPadrao())

	assert.Empty(t, lancamentos)
	require.Len(t, avisos, 1)
	assert.Contains(t, avisos[0], "valor ausente")
}

func TestParseBancoVazio(t *testing.T) {
	lancamentos, saldoAnterior, avisos := ParseBanco(nil, RegrasPadrao())

	assert.Empty(t, lancamentos)
	assert.Nil(t, saldoAnterior)
	assert.Empty(t, avisos)
}
