package conciliacao

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"conciliacao-service/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extratoCSV = `Data;Descrição;Documento;Valor;Saldo
;SALDO ANTERIOR;;10.000,00;
10/03/2024;PAGAMENTO PIX JOAO SILVA;123;-1.500,00;8.500,00
12/03/2024;TED MARIA SANTOS;;-500,00;8.000,00
`

const omieCSV = `Situação;Data;Cliente;Conta Corrente;Categoria;Valor;Tipo de Lançamento
Pago;10/03/2024;JOAO SILVA;Conta Principal;Serviços de Terceiros;1.500,00;Pagamento
Pago;11/03/2024;AUTO POSTO IPIRANGA LTDA;Cartão de Crédito;Combustíveis e Lubrificantes;250,00;Pagamento
`

const faturaCSV = `Vencimento;15/04/2024
Total;1.250,00
10/03/2024;POSTO IPIRANGA;250,00;JOAO
12/03/2024;PAGAMENTO RECEBIDO;-1.250,00
11/03/2024;PADARIA DONA MARIA;45,90;JOAO
`

func TestExecutarConciliacaoCompleta(t *testing.T) {
	svc := NewService(RegrasPadrao())

	resultado, err := svc.ExecutarConciliacao(Entrada{
		Banco:      strings.NewReader(extratoCSV),
		NomeBanco:  "extrato.csv",
		Omie:       strings.NewReader(omieCSV),
		NomeOmie:   "omie.csv",
		Cartao:     strings.NewReader(faturaCSV),
		NomeCartao: "fatura.csv",
	})
	require.NoError(t, err)

	// o PIX do banco casa com o lançamento do Omie na camada A
	require.Len(t, resultado.Matches, 1)
	assert.Equal(t, domain.CamadaA, resultado.Matches[0].Camada)

	// a compra do cartão casa com a conta do cartão no Omie
	require.Len(t, resultado.Cartao, 3)
	assert.True(t, resultado.Cartao[0].Conciliado)
	assert.Equal(t, "Combustíveis e Lubrificantes", resultado.Cartao[0].CategoriaSugerida)

	// sobram o TED sem par e a compra importável da padaria
	esperadoPorTipo := map[domain.TipoDivergencia]int{
		domain.DivSoBanco:    1,
		domain.DivImportavel: 1,
	}
	if diff := cmp.Diff(esperadoPorTipo, resultado.DivergenciasPorTipo); diff != "" {
		t.Errorf("divergências por tipo divergem (-esperado +obtido):\n%s", diff)
	}
	esperadoPorCamada := map[domain.CamadaMatch]int{domain.CamadaA: 1}
	if diff := cmp.Diff(esperadoPorCamada, resultado.MatchesPorCamada); diff != "" {
		t.Errorf("matches por camada divergem (-esperado +obtido):\n%s", diff)
	}

	assert.Equal(t, 2, resultado.TotalConciliados)
	assert.Equal(t, 2, resultado.TotalDivergentes)
	assert.Equal(t, 0, resultado.ContasVencidas)
	assert.Equal(t, 1, resultado.CartaoImportaveis)

	require.NotNil(t, resultado.SaldoAnteriorBanco)
	assert.InDelta(t, 10000.00, *resultado.SaldoAnteriorBanco, 1e-9)

	require.NotNil(t, resultado.InfoCartao)
	assert.InDelta(t, 1250.00, resultado.InfoCartao.ValorTotal, 1e-9)

	assert.Equal(t, 3, resultado.Mes)
	assert.Equal(t, 2024, resultado.Ano)
	assert.Equal(t, "03/2024", resultado.MesAno)

	// a linha de cabeçalho do extrato vira aviso, não erro
	assert.NotEmpty(t, resultado.Avisos)
}

func TestExecutarConciliacaoSemCartao(t *testing.T) {
	svc := NewService(RegrasPadrao())

	resultado, err := svc.ExecutarConciliacao(Entrada{
		Banco:     strings.NewReader(extratoCSV),
		NomeBanco: "extrato.csv",
		Omie:      strings.NewReader(omieCSV),
		NomeOmie:  "omie.csv",
	})
	require.NoError(t, err)

	assert.Empty(t, resultado.Cartao)
	assert.Nil(t, resultado.InfoCartao)
	require.Len(t, resultado.Matches, 1)

	// sem fatura, o lançamento do cartão no Omie fica sem par
	assert.Equal(t, 1, resultado.DivergenciasPorTipo[domain.DivSoOmie])
}

func TestExecutarConciliacaoArquivosVazios(t *testing.T) {
	svc := NewService(RegrasPadrao())

	resultado, err := svc.ExecutarConciliacao(Entrada{
		Banco:     strings.NewReader(""),
		NomeBanco: "extrato.csv",
		Omie:      strings.NewReader(""),
		NomeOmie:  "omie.csv",
	})
	require.NoError(t, err)

	assert.Empty(t, resultado.Matches)
	assert.Empty(t, resultado.Divergencias)
	assert.Equal(t, 0, resultado.TotalConciliados)
	assert.Equal(t, 0, resultado.TotalDivergentes)

	// extrato vazio cai no mês corrente
	agora := time.Now()
	assert.Equal(t, fmt.Sprintf("%02d/%04d", agora.Month(), agora.Year()), resultado.MesAno)
}

func TestExecutarConciliacaoFormatoNaoSuportado(t *testing.T) {
	svc := NewService(RegrasPadrao())

	_, err := svc.ExecutarConciliacao(Entrada{
		Banco:     strings.NewReader("qualquer coisa"),
		NomeBanco: "extrato.pdf",
		Omie:      strings.NewReader(""),
		NomeOmie:  "omie.csv",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "não suportado")
}

func TestDetectarMesAno(t *testing.T) {
	agora := dataDe("01/09/2026")

	dominante := lancamentosBanco(
		bancoParams{data: "10/03/2024", descricao: "A", valor: -1},
		bancoParams{data: "20/03/2024", descricao: "B", valor: -1},
		bancoParams{data: "02/04/2024", descricao: "C", valor: -1},
	)
	mes, ano := DetectarMesAno(dominante, agora)
	assert.Equal(t, 3, mes)
	assert.Equal(t, 2024, ano)

	// empate resolve pelo par mais antigo
	empate := lancamentosBanco(
		bancoParams{data: "30/04/2024", descricao: "A", valor: -1},
		bancoParams{data: "01/03/2024", descricao: "B", valor: -1},
	)
	mes, ano = DetectarMesAno(empate, agora)
	assert.Equal(t, 3, mes)
	assert.Equal(t, 2024, ano)

	// extrato vazio cai no relógio
	mes, ano = DetectarMesAno(nil, agora)
	assert.Equal(t, 9, mes)
	assert.Equal(t, 2026, ano)
}
