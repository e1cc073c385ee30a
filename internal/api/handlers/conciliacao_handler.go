package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"conciliacao-service/internal/api/responses"
	"conciliacao-service/internal/core/conciliacao"

	"github.com/gin-gonic/gin"
)

// ConciliacaoHandler lida com as requisições da API de conciliação bancária.
type ConciliacaoHandler struct {
	service conciliacao.Service
}

// NewConciliacaoHandler cria um novo handler de conciliação.
func NewConciliacaoHandler(service conciliacao.Service) *ConciliacaoHandler {
	return &ConciliacaoHandler{
		service: service,
	}
}

// extensaoValida aceita os formatos de planilha/CSV suportados.
func extensaoValida(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".csv" || ext == ".xls" || ext == ".xlsx" || ext == ".txt"
}

// abrirEntrada monta a Entrada do serviço a partir dos arquivos do
// formulário. O arquivo de cartão é opcional. Os io.Closer abertos são
// devolvidos para fechamento pelo chamador.
func (h *ConciliacaoHandler) abrirEntrada(c *gin.Context) (conciliacao.Entrada, []io.Closer, bool) {
	var fechaveis []io.Closer

	bancoHeader, err := c.FormFile("bancoFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo do extrato bancário (.csv, .xls, .xlsx) não encontrado ou inválido")
		return conciliacao.Entrada{}, nil, false
	}
	omieHeader, err := c.FormFile("omieFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo do extrato Omie (.csv, .xls, .xlsx) não encontrado ou inválido")
		return conciliacao.Entrada{}, nil, false
	}

	if !extensaoValida(bancoHeader.Filename) || !extensaoValida(omieHeader.Filename) {
		responses.Error(c, http.StatusBadRequest, "Extensão de arquivo não suportada")
		return conciliacao.Entrada{}, nil, false
	}

	abrir := func(header *multipart.FileHeader, rotulo string) (multipart.File, bool) {
		f, err := header.Open()
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, fmt.Sprintf("Não foi possível abrir o arquivo %s", rotulo))
			return nil, false
		}
		fechaveis = append(fechaveis, f)
		return f, true
	}

	bancoFile, ok := abrir(bancoHeader, "do extrato bancário")
	if !ok {
		fecharTodos(fechaveis)
		return conciliacao.Entrada{}, nil, false
	}
	omieFile, ok := abrir(omieHeader, "do Omie")
	if !ok {
		fecharTodos(fechaveis)
		return conciliacao.Entrada{}, nil, false
	}

	entrada := conciliacao.Entrada{
		Banco:     bancoFile,
		NomeBanco: bancoHeader.Filename,
		Omie:      omieFile,
		NomeOmie:  omieHeader.Filename,
	}

	// fatura de cartão é opcional
	if cartaoHeader, err := c.FormFile("cartaoFile"); err == nil {
		cartaoFile, ok := abrir(cartaoHeader, "da fatura de cartão")
		if !ok {
			fecharTodos(fechaveis)
			return conciliacao.Entrada{}, nil, false
		}
		entrada.Cartao = cartaoFile
		entrada.NomeCartao = cartaoHeader.Filename
	}

	return entrada, fechaveis, true
}

func fecharTodos(fechaveis []io.Closer) {
	for _, f := range fechaveis {
		f.Close()
	}
}

// HandleConciliar executa a conciliação completa e devolve o resultado em JSON.
func (h *ConciliacaoHandler) HandleConciliar(c *gin.Context) {
	entrada, fechaveis, ok := h.abrirEntrada(c)
	if !ok {
		return
	}
	defer fecharTodos(fechaveis)

	resultado, err := h.service.ExecutarConciliacao(entrada)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao executar a conciliação", err.Error())
		return
	}

	responses.Success(c, resultado, "Conciliação concluída")
}

// HandleExportarCartao executa a conciliação e devolve a planilha de
// importação das compras de cartão como download.
func (h *ConciliacaoHandler) HandleExportarCartao(c *gin.Context) {
	entrada, fechaveis, ok := h.abrirEntrada(c)
	if !ok {
		return
	}
	defer fecharTodos(fechaveis)

	if entrada.Cartao == nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo da fatura de cartão é obrigatório para a exportação")
		return
	}

	resultado, err := h.service.ExecutarConciliacao(entrada)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao executar a conciliação", err.Error())
		return
	}

	outputCSV, err := h.service.GerarCSVImportacaoCartao(resultado)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar a planilha de importação", err.Error())
		return
	}

	fileName := fmt.Sprintf("ImportacaoCartao_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/csv; charset=windows-1252", outputCSV)
}
