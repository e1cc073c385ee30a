package conciliacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cabecalhoOmie() []string {
	return []string{
		"Situação", "Data", "Cliente", "Conta Corrente", "Categoria", "Valor",
		"Tipo de Lançamento", "Tipo de Documento", "Número do Documento",
		"Nota Fiscal", "Parcela", "Origem", "Projeto", "Razão Social",
		"CNPJ/CPF", "Observações",
	}
}

func TestParseOmie(t *testing.T) {
	linhas := [][]string{
		{"Relatório de Movimentações"},
		cabecalhoOmie(),
		{"Pago", "10/03/2024", "JOAO SILVA", "Conta Principal", "Serviços de Terceiros", "1.500,00",
			"Pagamento", "BOL", "98765", "1234", "1/1", "Contas a Pagar", "Obra Norte",
			"JOAO SILVA ME", "123.456.789-01", "obs"},
		{"Recebido", "12/03/2024", "CONSTRUTORA ALFA", "Conta Principal", "Receita de Obras", "3.000,00",
			"Recebimento", "", "", "", "", "", "", "", "", ""},
		{"", "sem data", "", "", "", "100,00"},
	}

	lancamentos, saldoAnterior, avisos := ParseOmie(linhas)

	require.Len(t, lancamentos, 2)
	assert.Nil(t, saldoAnterior)

	pago := lancamentos[0]
	assert.Equal(t, 0, pago.Seq)
	assert.Equal(t, "Pago", pago.Situacao)
	assert.Equal(t, "JOAO SILVA", pago.Cliente)
	// a coluna de natureza força o sinal: pagamento é negativo
	assert.InDelta(t, -1500.00, pago.Valor, 1e-9)
	assert.Equal(t, "98765", pago.NumeroDocumento)
	assert.Equal(t, "1234", pago.NotaFiscal)
	assert.Equal(t, "12345678901", pago.CnpjCpf)
	assert.Equal(t, -1, pago.IndiceBanco)

	recebido := lancamentos[1]
	assert.InDelta(t, 3000.00, recebido.Valor, 1e-9)

	require.Len(t, avisos, 1)
	assert.Contains(t, avisos[0], "data inválida")
}

func TestParseOmieSemCabecalho(t *testing.T) {
	linhas := [][]string{
		{"qualquer coisa"},
		{"sem rotulos aqui"},
	}

	lancamentos, _, avisos := ParseOmie(linhas)

	assert.Empty(t, lancamentos)
	require.Len(t, avisos, 1)
	assert.Contains(t, avisos[0], "cabeçalho")
}

func TestAplicarSinalOmie(t *testing.T) {
	assert.InDelta(t, -100.0, aplicarSinalOmie(100.0, "Pagamento"), 1e-9)
	assert.InDelta(t, -100.0, aplicarSinalOmie(-100.0, "Despesa"), 1e-9)
	assert.InDelta(t, 100.0, aplicarSinalOmie(-100.0, "Recebimento"), 1e-9)
	assert.InDelta(t, 100.0, aplicarSinalOmie(100.0, "C"), 1e-9)
	// sem natureza, o valor passa intacto
	assert.InDelta(t, -100.0, aplicarSinalOmie(-100.0, ""), 1e-9)
}

func TestDividirPorConta(t *testing.T) {
	lancamentos := lancamentosOmie(
		omieParams{cliente: "A", conta: "Conta Principal"},
		omieParams{cliente: "B", conta: "Cartão de Crédito Sicredi"},
		omieParams{cliente: "C", conta: "CARTAO EMPRESARIAL"},
		omieParams{cliente: "D", conta: ""},
	)

	conta, cartao := DividirPorConta(lancamentos, RegrasPadrao().ContasCartao)

	assert.Equal(t, []int{0, 3}, conta)
	assert.Equal(t, []int{1, 2}, cartao)
}
