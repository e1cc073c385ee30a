package conciliacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCartaoFromText(t *testing.T) {
	texto := "Vencimento: 15/04/2024\n" +
		"Situação;Aberta\n" +
		"Total;R$ 6.500,00\n" +
		"\n" +
		"10/03/2024;LOJA MATCON;3/10;1.200,00;PEDRO;FINAL 1234\n" +
		"12/03/2024;ESTORNO COMPRA LOJA;-300,00\n" +
		"13/03/2024;PAGAMENTO RECEBIDO;-5.000,00\n" +
		"linha qualquer sem data\n"

	transacoes, info, avisos := ParseCartaoFromText(texto)

	require.Len(t, transacoes, 3)
	assert.Empty(t, avisos)

	compra := transacoes[0]
	assert.Equal(t, "LOJA MATCON", compra.Descricao)
	assert.Equal(t, "3/10", compra.Parcela)
	assert.InDelta(t, 1200.00, compra.Valor, 1e-9)
	assert.Equal(t, "PEDRO", compra.Portador)
	assert.Equal(t, "FINAL 1234", compra.Cartao)
	assert.False(t, compra.EhPagamentoFatura)
	assert.False(t, compra.EhEstorno)
	assert.Equal(t, -1, compra.IndiceOmie)

	estorno := transacoes[1]
	assert.True(t, estorno.EhEstorno)
	assert.False(t, estorno.EhPagamentoFatura)
	assert.InDelta(t, -300.00, estorno.Valor, 1e-9)

	pagamento := transacoes[2]
	assert.True(t, pagamento.EhPagamentoFatura)
	assert.InDelta(t, -5000.00, pagamento.Valor, 1e-9)

	require.NotNil(t, info)
	assert.Equal(t, 15, info.Vencimento.Day())
	assert.Equal(t, 4, int(info.Vencimento.Month()))
	assert.InDelta(t, 6500.00, info.ValorTotal, 1e-9)
	assert.Equal(t, "Aberta", info.Situacao)
}

func TestParseCartaoSemMetadados(t *testing.T) {
	transacoes, info, _ := ParseCartaoFromText("10/03/2024;MERCADO CENTRAL;89,90\n")

	require.Len(t, transacoes, 1)
	assert.Nil(t, info)
}

func TestParseCartaoVazio(t *testing.T) {
	transacoes, info, avisos := ParseCartaoFromText("")

	assert.Empty(t, transacoes)
	assert.Nil(t, info)
	assert.Empty(t, avisos)
}
