package conciliacao

import (
	"fmt"
	"strings"
	"time"

	"conciliacao-service/internal/domain"

	"github.com/shopspring/decimal"
)

// ---------------------- classificador de divergências ----------------------
//
// Tudo que sobrou sem par depois do matcher, e todo match aceito com
// diferença de valor acima da tolerância, vira uma Divergencia tipada. As
// divergências são apenas acrescentadas; nunca alteradas depois.

// DetectarDuplicidades procura no subconjunto principal do Omie grupos de
// lançamentos com mesmo valor, mesma data e mesmo cliente, e emite uma
// divergência de duplicidade para cada ocorrência além da primeira.
func DetectarDuplicidades(omie []domain.LancamentoOmie, indicesConta []int, divergencias *[]domain.Divergencia) {
	vistos := make(map[string]int)

	for _, j := range indicesConta {
		lo := &omie[j]
		chave := fmt.Sprintf("%.2f|%s|%s", lo.Valor, lo.Data.Format("2006-01-02"), normalizarTexto(lo.Cliente))
		vistos[chave]++
		if vistos[chave] < 2 {
			continue
		}

		*divergencias = append(*divergencias, domain.Divergencia{
			Tipo:        domain.DivDuplicidade,
			Titulo:      "Possível lançamento duplicado no Omie",
			Origem:      "OMIE",
			Data:        lo.Data,
			Valor:       lo.Valor,
			Cliente:     lo.Cliente,
			Situacao:    lo.Situacao,
			Sugestao:    "Verificar se o lançamento foi incluído duas vezes no Omie",
			IndiceBanco: -1,
			IndiceOmie:  j,
		})
	}
}

// ClassificarDivergencias percorre as quatro coleções e os matches aceitos,
// emitindo a taxonomia completa: A (só banco), B (só Omie), B* (conta em
// aberto vencida), C (valor divergente em par aceito), I (compra de cartão
// importável). O tipo D é emitido antes por DetectarDuplicidades.
func ClassificarDivergencias(
	banco []domain.LancamentoBanco,
	omie []domain.LancamentoOmie,
	indicesConta []int,
	indicesCartao []int,
	cartao []domain.TransacaoCartao,
	matches []domain.Match,
	divergencias *[]domain.Divergencia,
	hoje time.Time,
) {
	for i := range banco {
		lb := &banco[i]
		if lb.Conciliado {
			continue
		}
		*divergencias = append(*divergencias, domain.Divergencia{
			Tipo:        domain.DivSoBanco,
			Titulo:      "Lançamento no banco sem correspondência no Omie",
			Origem:      "BANCO",
			Data:        lb.Data,
			Valor:       lb.Valor,
			Cliente:     lb.Nome,
			Sugestao:    "Incluir o lançamento no Omie ou verificar a conta de origem",
			IndiceBanco: lb.Seq,
			IndiceOmie:  -1,
		})
	}

	for _, j := range indicesConta {
		classificarOmieSemPar(&omie[j], j, divergencias, hoje)
	}
	for _, j := range indicesCartao {
		classificarOmieSemPar(&omie[j], j, divergencias, hoje)
	}

	for _, m := range matches {
		delta := decimal.NewFromFloat(m.ValorBanco).Sub(decimal.NewFromFloat(m.ValorOmie)).Round(2)
		if delta.Abs().LessThanOrEqual(decimal.NewFromFloat(Epsilon)) {
			continue
		}
		lb := &banco[m.IndiceBanco]
		lo := &omie[m.IndiceOmie]
		vb, vo := lb.Valor, lo.Valor
		db, do := lb.Data, lo.Data
		deltaF, _ := delta.Float64()

		*divergencias = append(*divergencias, domain.Divergencia{
			Tipo:          domain.DivValorDiferente,
			Titulo:        "Par conciliado com diferença de valor",
			Origem:        "MATCH",
			Data:          lb.Data,
			Valor:         lb.Valor,
			Cliente:       lo.Cliente,
			Sugestao:      "Conferir juros, multa ou desconto não lançados no Omie",
			ValorBanco:    &vb,
			ValorOmie:     &vo,
			DataBanco:     &db,
			DataOmie:      &do,
			Delta:         deltaF,
			DiasDiferenca: DiasEntre(lb.Data, lo.Data),
			IndiceBanco:   m.IndiceBanco,
			IndiceOmie:    m.IndiceOmie,
		})
	}

	for i := range cartao {
		tc := &cartao[i]
		if tc.Conciliado || tc.EhPagamentoFatura {
			continue
		}
		*divergencias = append(*divergencias, domain.Divergencia{
			Tipo:              domain.DivImportavel,
			Titulo:            "Compra no cartão pronta para importação",
			Origem:            "CARTAO",
			Data:              tc.Data,
			Valor:             tc.Valor,
			Cliente:           tc.Descricao,
			Sugestao:          "Importar como conta a pagar no Omie com a categoria sugerida",
			Parcela:           tc.Parcela,
			Portador:          tc.Portador,
			CategoriaSugerida: tc.CategoriaSugerida,
			IndiceBanco:       -1,
			IndiceOmie:        -1,
		})
	}
}

func classificarOmieSemPar(lo *domain.LancamentoOmie, indice int, divergencias *[]domain.Divergencia, hoje time.Time) {
	if lo.Conciliado {
		return
	}

	if contaVencida(lo, hoje) {
		*divergencias = append(*divergencias, domain.Divergencia{
			Tipo:        domain.DivContaVencida,
			Titulo:      "Conta em aberto vencida no Omie",
			Origem:      "OMIE",
			Data:        lo.Data,
			Valor:       lo.Valor,
			Cliente:     lo.Cliente,
			Situacao:    lo.Situacao,
			Sugestao:    "Confirmar se o título foi pago fora do banco ou renegociado",
			IndiceBanco: -1,
			IndiceOmie:  indice,
		})
		return
	}

	*divergencias = append(*divergencias, domain.Divergencia{
		Tipo:        domain.DivSoOmie,
		Titulo:      "Lançamento no Omie sem correspondência no banco",
		Origem:      "OMIE",
		Data:        lo.Data,
		Valor:       lo.Valor,
		Cliente:     lo.Cliente,
		Situacao:    lo.Situacao,
		Sugestao:    "Verificar se o lançamento saiu de outra conta ou ainda não liquidou",
		IndiceBanco: -1,
		IndiceOmie:  indice,
	})
}

// contaVencida detecta o título ainda em aberto cuja data já passou.
func contaVencida(lo *domain.LancamentoOmie, hoje time.Time) bool {
	sit := normalizarTexto(lo.Situacao)
	if strings.Contains(sit, "VENCID") || strings.Contains(sit, "ATRASAD") {
		return true
	}
	aberto := strings.Contains(sit, "ABERTO") || strings.Contains(sit, "A VENCER") || strings.Contains(sit, "PENDENTE") || strings.Contains(sit, "PREVIS")
	return aberto && lo.Data.Before(time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC))
}
