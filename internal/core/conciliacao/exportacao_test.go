package conciliacao

import (
	"strings"
	"testing"

	"conciliacao-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestGerarCSVImportacaoCartao(t *testing.T) {
	svc := NewService(RegrasPadrao())

	resultado := &domain.ResultadoConciliacao{
		Cartao: []domain.TransacaoCartao{
			{Data: dataDe("10/03/2024"), Descricao: "POSTO IPIRANGA", Valor: 250.00, Conciliado: true},
			{Data: dataDe("11/03/2024"), Descricao: "PADARIA DONA MARIA", Parcela: "2/6", Portador: "JOAO",
				Valor: 45.90, CategoriaSugerida: "Alimentação"},
			{Data: dataDe("12/03/2024"), Descricao: "PAGAMENTO RECEBIDO", Valor: -1250.00, EhPagamentoFatura: true},
			{Data: dataDe("13/03/2024"), Descricao: "DEPOSITO MATCON", Valor: 154.10, CategoriaSugerida: "Materiais de Construção"},
		},
	}

	data, err := svc.GerarCSVImportacaoCartao(resultado)
	require.NoError(t, err)

	// a planilha sai em Windows-1252; decodifica antes de inspecionar
	texto, _, err := transform.String(charmap.Windows1252.NewDecoder(), string(data))
	require.NoError(t, err)

	linhas := strings.Split(strings.TrimSpace(texto), "\n")
	require.Len(t, linhas, 4)

	assert.Equal(t, "Data;Descrição;Parcela;Portador;Valor;Categoria", strings.TrimRight(linhas[0], "\r"))
	assert.Equal(t, "11/03/2024;PADARIA DONA MARIA;2/6;JOAO;45,90;Alimentação", strings.TrimRight(linhas[1], "\r"))
	assert.Equal(t, "13/03/2024;DEPOSITO MATCON;;;154,10;Materiais de Construção", strings.TrimRight(linhas[2], "\r"))

	// a linha de total soma só as importáveis
	assert.Equal(t, ";TOTAL;;;200,00;", strings.TrimRight(linhas[3], "\r"))
}

func TestGerarCSVImportacaoCartaoSemTransacoes(t *testing.T) {
	svc := NewService(RegrasPadrao())

	data, err := svc.GerarCSVImportacaoCartao(&domain.ResultadoConciliacao{})
	require.NoError(t, err)

	texto, _, err := transform.String(charmap.Windows1252.NewDecoder(), string(data))
	require.NoError(t, err)

	linhas := strings.Split(strings.TrimSpace(texto), "\n")
	require.Len(t, linhas, 2)
	assert.Equal(t, ";TOTAL;;;0,00;", strings.TrimRight(linhas[1], "\r"))
}
