package conciliacao

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ---------------------- leitura de planilhas e CSV ----------------------
//
// Fronteira de I/O do motor: converte bytes de planilha/CSV em linhas de
// células cruas. Todo o resto do pacote trabalha sobre [][]string.

// WorkbookParaLinhas decodifica um arquivo .xlsx, .xls ou .csv em linhas de
// células. A extensão do nome original decide a rota; .xls corrompido ainda
// tenta excelize antes de desistir.
func WorkbookParaLinhas(arquivo io.Reader, nomeArquivo string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(nomeArquivo))

	data, err := io.ReadAll(arquivo)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo %s: %w", nomeArquivo, err)
	}

	switch ext {
	case ".csv", ".txt":
		return csvParaLinhas(data)
	case ".xls":
		if linhas, err := xlsParaLinhas(data); err == nil {
			return linhas, nil
		}
		return xlsxParaLinhas(data)
	case ".xlsx", "":
		return xlsxParaLinhas(data)
	default:
		return nil, fmt.Errorf("formato de arquivo não suportado: %s", ext)
	}
}

func xlsxParaLinhas(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("a planilha não contém abas")
	}
	return f.GetRows(sheets[0])
}

func xlsParaLinhas(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo .xls: %w", err)
	}
	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("o arquivo .xls não contém planilhas")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter planilha do arquivo .xls: %w", err)
	}

	var linhas [][]string
	for _, row := range sheet.GetRows() {
		var linha []string
		for _, cell := range row.GetCols() {
			linha = append(linha, cell.GetString())
		}
		linhas = append(linhas, linha)
	}
	return linhas, nil
}

func csvParaLinhas(data []byte) ([][]string, error) {
	texto := DecodificarTexto(data)

	reader := csv.NewReader(strings.NewReader(texto))
	reader.Comma = detectarSeparador(texto)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}

// DecodificarTexto devolve o conteúdo como UTF-8. Exportações bancárias
// brasileiras ainda chegam em ISO-8859-1 com frequência.
func DecodificarTexto(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoder := charmap.ISO8859_1.NewDecoder()
	texto, _, err := transform.String(decoder, string(data))
	if err != nil {
		return string(data)
	}
	return texto
}

// detectarSeparador escolhe entre ';' e ',' pelo que aparece mais na
// primeira linha não vazia.
func detectarSeparador(texto string) rune {
	for _, linha := range strings.Split(texto, "\n") {
		if strings.TrimSpace(linha) == "" {
			continue
		}
		if strings.Count(linha, ";") >= strings.Count(linha, ",") {
			return ';'
		}
		return ','
	}
	return ';'
}
