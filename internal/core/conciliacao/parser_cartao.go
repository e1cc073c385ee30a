package conciliacao

import (
	"regexp"
	"strings"

	"conciliacao-service/internal/domain"
)

// ---------------------- parser da fatura de cartão ----------------------
//
// A fatura chega como CSV já decodificado: linhas de transação (data,
// descrição, parcela opcional, valor, portador/cartão opcionais) misturadas
// com linhas de metadados (vencimento, total, situação, subtotais e
// pagamentos). O que não for nem uma coisa nem outra é ignorado.

var parcelaRegex = regexp.MustCompile(`^\d{1,2}\s*/\s*\d{1,2}$`)

// ParseCartaoFromText separa transações e metadados de uma fatura de cartão.
func ParseCartaoFromText(texto string) ([]domain.TransacaoCartao, *domain.InfoCartao, []string) {
	var transacoes []domain.TransacaoCartao
	info := &domain.InfoCartao{}
	var avisos []string
	temInfo := false

	sep := detectarSeparador(texto)

	for _, linhaBruta := range strings.Split(texto, "\n") {
		linha := strings.TrimRight(linhaBruta, "\r")
		if strings.TrimSpace(linha) == "" {
			continue
		}

		campos := dividirCampos(linha, sep)
		if len(campos) == 0 {
			continue
		}

		if preencherInfoCartao(info, campos) {
			temInfo = true
			continue
		}

		data, ok := ParseData(campos[0])
		if !ok {
			continue
		}
		if len(campos) < 3 {
			avisos = append(avisos, "cartão: linha de transação incompleta ignorada")
			continue
		}

		t := domain.TransacaoCartao{
			Data:       data,
			Descricao:  strings.TrimSpace(campos[1]),
			IndiceOmie: -1,
		}

		// campo 2 pode ser a parcela ("3/10") ou já o valor
		resto := campos[2:]
		if parcelaRegex.MatchString(strings.TrimSpace(resto[0])) {
			t.Parcela = strings.TrimSpace(resto[0])
			resto = resto[1:]
		}
		if len(resto) == 0 {
			avisos = append(avisos, "cartão: linha de transação sem valor ignorada")
			continue
		}
		t.Valor = ParseValorBRL(resto[0])
		if len(resto) > 1 {
			t.Portador = strings.TrimSpace(resto[1])
		}
		if len(resto) > 2 {
			t.Cartao = strings.TrimSpace(resto[2])
		}

		descNorm := normalizarTexto(t.Descricao)
		t.EhPagamentoFatura = ehPagamentoFatura(descNorm)
		t.EhEstorno = strings.Contains(descNorm, "ESTORNO") || strings.HasPrefix(descNorm, "CREDITO DE")

		transacoes = append(transacoes, t)
	}

	if !temInfo {
		info = nil
	}
	return transacoes, info, avisos
}

func dividirCampos(linha string, sep rune) []string {
	partes := strings.Split(linha, string(sep))
	for i := range partes {
		partes[i] = strings.Trim(strings.TrimSpace(partes[i]), `"`)
	}
	// descarta vazios à direita (colunas sobrando na exportação)
	for len(partes) > 0 && partes[len(partes)-1] == "" {
		partes = partes[:len(partes)-1]
	}
	return partes
}

// preencherInfoCartao reconhece as linhas de metadados da fatura e acumula
// os campos no InfoCartao. Devolve true quando a linha foi consumida.
func preencherInfoCartao(info *domain.InfoCartao, campos []string) bool {
	rotulo := normalizarTexto(campos[0])
	valor := ""
	if len(campos) > 1 {
		valor = campos[1]
	} else if idx := strings.Index(campos[0], ":"); idx != -1 {
		valor = campos[0][idx+1:]
		rotulo = normalizarTexto(campos[0][:idx])
	}

	switch {
	case strings.HasPrefix(rotulo, "VENCIMENTO"):
		if d, ok := ParseData(strings.TrimSpace(valor)); ok {
			info.Vencimento = d
		}
	case strings.HasPrefix(rotulo, "TOTAL"):
		info.ValorTotal = ParseValorBRL(valor)
	case strings.HasPrefix(rotulo, "SITUACAO") || strings.HasPrefix(rotulo, "STATUS"):
		info.Situacao = strings.TrimSpace(valor)
	case strings.Contains(rotulo, "GASTOS NO BRASIL") || strings.Contains(rotulo, "COMPRAS NO BRASIL"):
		info.GastosBrasil = ParseValorBRL(valor)
	case strings.Contains(rotulo, "EXTERIOR"):
		info.GastosExterior = ParseValorBRL(valor)
	case rotulo == "PAGAMENTOS" || strings.HasPrefix(rotulo, "PAGAMENTOS EFETUADOS"):
		info.Pagamentos = ParseValorBRL(valor)
	default:
		return false
	}
	return true
}

func ehPagamentoFatura(descNorm string) bool {
	if strings.Contains(descNorm, "PAGAMENTO RECEBIDO") || strings.Contains(descNorm, "PAGAMENTO DE FATURA") {
		return true
	}
	if strings.Contains(descNorm, "PGTO") && strings.Contains(descNorm, "DEB") {
		return true
	}
	return strings.Contains(descNorm, "PAGAMENTO") && strings.Contains(descNorm, "FATURA")
}
