package conciliacao

import (
	"fmt"
	"strings"

	"conciliacao-service/internal/domain"
)

// ---------------------- parser do extrato bancário ----------------------
//
// Layout esperado (exportação padrão do internet banking):
//   Data | Descrição | Documento | Valor | Saldo
// Linhas de cabeçalho, totais e lixo são ignoradas em silêncio: só entra na
// coleção o que tiver data e valor válidos. Os motivos de descarte são
// acumulados em avisos para diagnóstico, sem mudar o contrato de sucesso.

// ParseBanco converte as linhas cruas do extrato em lançamentos tipados,
// além do saldo anterior quando a linha designada existe.
func ParseBanco(linhas [][]string, regras Regras) ([]domain.LancamentoBanco, *float64, []string) {
	var lancamentos []domain.LancamentoBanco
	var saldoAnterior *float64
	var avisos []string

	for i, linha := range linhas {
		if len(linha) < 2 {
			continue
		}

		descricao := strings.TrimSpace(celula(linha, 1))

		if saldoAnterior == nil && strings.Contains(normalizarTexto(descricao), "SALDO ANTERIOR") {
			for _, col := range []int{3, 4, 2} {
				if v := strings.TrimSpace(celula(linha, col)); v != "" {
					saldo := ParseValorBRL(v)
					saldoAnterior = &saldo
					break
				}
			}
			continue
		}

		data, ok := ParseData(celula(linha, 0))
		if !ok {
			if descricao != "" {
				avisos = append(avisos, fmt.Sprintf("extrato: linha %d ignorada (data inválida)", i+1))
			}
			continue
		}

		valorBruto := strings.TrimSpace(celula(linha, 3))
		if valorBruto == "" {
			avisos = append(avisos, fmt.Sprintf("extrato: linha %d ignorada (valor ausente)", i+1))
			continue
		}
		valor := ParseValorBRL(valorBruto)

		var saldo *float64
		if s := strings.TrimSpace(celula(linha, 4)); s != "" {
			v := ParseValorBRL(s)
			saldo = &v
		}

		lancamentos = append(lancamentos, domain.LancamentoBanco{
			Seq:           len(lancamentos),
			Data:          data,
			Descricao:     descricao,
			Documento:     strings.TrimSpace(celula(linha, 2)),
			Valor:         valor,
			Saldo:         saldo,
			CnpjCpf:       ExtrairCnpjCpf(descricao),
			Nome:          ExtrairNomeBanco(descricao, regras.PrefixosExtrato),
			Classificacao: ClassificarBanco(descricao, regras.Classificacao),
			IndiceOmie:    -1,
		})
	}

	return lancamentos, saldoAnterior, avisos
}

func celula(linha []string, idx int) string {
	if idx < 0 || idx >= len(linha) {
		return ""
	}
	return linha[idx]
}
