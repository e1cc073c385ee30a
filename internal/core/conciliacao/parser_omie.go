package conciliacao

import (
	"fmt"
	"strings"

	"conciliacao-service/internal/domain"
)

// ---------------------- parser do extrato Omie ----------------------
//
// A exportação do Omie varia de posição de coluna conforme o relatório, mas
// as colunas têm rótulo. O cabeçalho é localizado nas primeiras linhas e as
// colunas são resolvidas por palavra-chave, como nos conversores de plano de
// contas; o que não for encontrado fica vazio.

// colunasOmie guarda os índices resolvidos de cada campo (-1 = ausente).
type colunasOmie struct {
	situacao   int
	data       int
	cliente    int
	conta      int
	categoria  int
	valor      int
	tipoLanc   int
	tipoDoc    int
	numeroDoc  int
	notaFiscal int
	parcela    int
	origem     int
	projeto    int
	razao      int
	cnpjCpf    int
	observacao int
}

// ParseOmie converte as linhas cruas do relatório do Omie em lançamentos
// tipados, além do saldo anterior quando presente.
func ParseOmie(linhas [][]string) ([]domain.LancamentoOmie, *float64, []string) {
	var lancamentos []domain.LancamentoOmie
	var saldoAnterior *float64
	var avisos []string

	idxCabecalho, cols := localizarCabecalhoOmie(linhas)
	if cols.data == -1 || cols.valor == -1 {
		if len(linhas) > 0 {
			avisos = append(avisos, "omie: cabeçalho com colunas de data e valor não encontrado")
		}
		return nil, nil, avisos
	}

	for i := idxCabecalho + 1; i < len(linhas); i++ {
		linha := linhas[i]
		if len(linha) == 0 {
			continue
		}

		if saldoAnterior == nil && strings.Contains(normalizarTexto(strings.Join(linha, " ")), "SALDO ANTERIOR") {
			if v := strings.TrimSpace(celula(linha, cols.valor)); v != "" {
				saldo := ParseValorBRL(v)
				saldoAnterior = &saldo
			}
			continue
		}

		data, ok := ParseData(celula(linha, cols.data))
		if !ok {
			if strings.TrimSpace(strings.Join(linha, "")) != "" {
				avisos = append(avisos, fmt.Sprintf("omie: linha %d ignorada (data inválida)", i+1))
			}
			continue
		}

		valorBruto := strings.TrimSpace(celula(linha, cols.valor))
		if valorBruto == "" {
			avisos = append(avisos, fmt.Sprintf("omie: linha %d ignorada (valor ausente)", i+1))
			continue
		}
		valor := ParseValorBRL(valorBruto)
		valor = aplicarSinalOmie(valor, celula(linha, cols.tipoLanc))

		lancamentos = append(lancamentos, domain.LancamentoOmie{
			Seq:             len(lancamentos),
			Situacao:        strings.TrimSpace(celula(linha, cols.situacao)),
			Data:            data,
			Cliente:         strings.TrimSpace(celula(linha, cols.cliente)),
			ContaCorrente:   strings.TrimSpace(celula(linha, cols.conta)),
			Categoria:       strings.TrimSpace(celula(linha, cols.categoria)),
			Valor:           valor,
			TipoDocumento:   strings.TrimSpace(celula(linha, cols.tipoDoc)),
			NumeroDocumento: strings.TrimSpace(celula(linha, cols.numeroDoc)),
			NotaFiscal:      strings.TrimSpace(celula(linha, cols.notaFiscal)),
			Parcela:         strings.TrimSpace(celula(linha, cols.parcela)),
			Origem:          strings.TrimSpace(celula(linha, cols.origem)),
			Projeto:         strings.TrimSpace(celula(linha, cols.projeto)),
			RazaoSocial:     strings.TrimSpace(celula(linha, cols.razao)),
			CnpjCpf:         NormalizarCnpjCpf(celula(linha, cols.cnpjCpf)),
			Observacoes:     strings.TrimSpace(celula(linha, cols.observacao)),
			IndiceBanco:     -1,
		})
	}

	return lancamentos, saldoAnterior, avisos
}

// localizarCabecalhoOmie varre as primeiras linhas atrás da que contém os
// rótulos, e resolve o índice de cada coluna por palavra-chave.
func localizarCabecalhoOmie(linhas [][]string) (int, colunasOmie) {
	maxBusca := 40
	if len(linhas) < maxBusca {
		maxBusca = len(linhas)
	}

	for i := 0; i < maxBusca; i++ {
		cols := resolverColunasOmie(linhas[i])
		if cols.data != -1 && cols.valor != -1 {
			return i, cols
		}
	}
	return 0, colunasOmie{
		situacao: -1, data: -1, cliente: -1, conta: -1, categoria: -1,
		valor: -1, tipoLanc: -1, tipoDoc: -1, numeroDoc: -1, notaFiscal: -1,
		parcela: -1, origem: -1, projeto: -1, razao: -1, cnpjCpf: -1, observacao: -1,
	}
}

func resolverColunasOmie(cabecalho []string) colunasOmie {
	norm := make([]string, len(cabecalho))
	for i, c := range cabecalho {
		norm[i] = normalizarTexto(c)
	}

	achar := func(palavras ...string) int {
		for _, p := range palavras {
			for idx, n := range norm {
				if n != "" && strings.Contains(n, p) {
					return idx
				}
			}
		}
		return -1
	}

	return colunasOmie{
		situacao:   achar("SITUACAO", "STATUS"),
		data:       achar("DATA DE PAGAMENTO", "DATA DE VENCIMENTO", "DATA"),
		cliente:    achar("CLIENTE", "FORNECEDOR", "FAVORECIDO"),
		conta:      achar("CONTA CORRENTE", "CONTA"),
		categoria:  achar("CATEGORIA"),
		valor:      achar("VALOR LIQUIDO", "VALOR DO DOCUMENTO", "VALOR"),
		tipoLanc:   achar("TIPO DE LANCAMENTO", "NATUREZA"),
		tipoDoc:    achar("TIPO DE DOCUMENTO", "TIPO DOC"),
		numeroDoc:  achar("NUMERO DO DOCUMENTO", "N DOCUMENTO", "DOCUMENTO"),
		notaFiscal: achar("NOTA FISCAL", "NUMERO DA NF", "NF"),
		parcela:    achar("PARCELA"),
		origem:     achar("ORIGEM"),
		projeto:    achar("PROJETO", "OBRA"),
		razao:      achar("RAZAO SOCIAL"),
		cnpjCpf:    achar("CNPJ", "CPF"),
		observacao: achar("OBSERVACAO", "OBSERVACOES"),
	}
}

// aplicarSinalOmie força a convenção de sinal: pagamentos/despesas são
// negativos, recebimentos positivos, quando a coluna de natureza existe.
func aplicarSinalOmie(valor float64, tipoLancamento string) float64 {
	tipo := normalizarTexto(tipoLancamento)
	abs := valor
	if abs < 0 {
		abs = -abs
	}
	switch {
	case strings.HasPrefix(tipo, "PAG") || strings.HasPrefix(tipo, "DESP") || tipo == "D" || strings.HasPrefix(tipo, "SAIDA"):
		return -abs
	case strings.HasPrefix(tipo, "REC") || tipo == "C" || strings.HasPrefix(tipo, "ENTRADA"):
		return abs
	default:
		return valor
	}
}

// DividirPorConta separa os índices dos lançamentos do Omie entre a conta
// corrente principal e a conta vinculada ao cartão de crédito, decidindo
// pela palavra-chave no identificador da conta. Os dois conjuntos são
// disjuntos por construção.
func DividirPorConta(lancamentos []domain.LancamentoOmie, palavrasCartao []string) (conta []int, cartao []int) {
	for i := range lancamentos {
		nomeConta := normalizarTexto(lancamentos[i].ContaCorrente)
		ehCartao := false
		for _, p := range palavrasCartao {
			if strings.Contains(nomeConta, normalizarTexto(p)) {
				ehCartao = true
				break
			}
		}
		if ehCartao {
			cartao = append(cartao, i)
		} else {
			conta = append(conta, i)
		}
	}
	return conta, cartao
}
