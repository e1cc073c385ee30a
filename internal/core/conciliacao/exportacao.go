package conciliacao

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode"
	"unicode/utf8"

	"conciliacao-service/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ---------------------- exportação para importação no Omie ----------------------

// GerarCSVImportacaoCartao gera a planilha de importação das compras de
// cartão sem par no Omie: uma linha por transação importável, mais a linha
// de total. Saída em Windows-1252 com ';', o formato que o importador do
// Omie aceita.
func (svc *service) GerarCSVImportacaoCartao(resultado *domain.ResultadoConciliacao) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := charmap.Windows1252.NewEncoder()
	writer := csv.NewWriter(transform.NewWriter(&buffer, encoder))
	writer.Comma = ';'

	header := []string{"Data", "Descrição", "Parcela", "Portador", "Valor", "Categoria"}
	for i := range header {
		header[i] = sanitizarParaCSV(header[i])
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i := range resultado.Cartao {
		tc := &resultado.Cartao[i]
		if tc.Conciliado || tc.EhPagamentoFatura {
			continue
		}

		registro := []string{
			tc.Data.Format("02/01/2006"),
			sanitizarParaCSV(tc.Descricao),
			sanitizarParaCSV(tc.Parcela),
			sanitizarParaCSV(tc.Portador),
			formatarValorCSV(tc.Valor),
			sanitizarParaCSV(tc.CategoriaSugerida),
		}
		if err := writer.Write(registro); err != nil {
			return nil, err
		}
		total = total.Add(decimal.NewFromFloat(tc.Valor))
	}

	totalLinha := []string{"", "TOTAL", "", "", formatarDecimalCSV(total.Round(2)), ""}
	if err := writer.Write(totalLinha); err != nil {
		return nil, err
	}

	writer.Flush()
	return buffer.Bytes(), writer.Error()
}

func formatarValorCSV(v float64) string {
	return formatarDecimalCSV(decimal.NewFromFloat(v).Round(2))
}

func formatarDecimalCSV(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// sanitizarParaCSV remove quebras de linha e caracteres de controle que
// quebrariam o importador, e apara espaços nas pontas.
func sanitizarParaCSV(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == '\r' || r == '\n' || r == '\t' {
			continue
		}
		if r < 32 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimFunc(b.String(), unicode.IsSpace)
}
