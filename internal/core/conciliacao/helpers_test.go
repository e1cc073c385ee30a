package conciliacao

import (
	"time"

	"conciliacao-service/internal/domain"
)

// ---------------------- construtores compartilhados dos testes ----------------------

type bancoParams struct {
	data      string
	descricao string
	valor     float64
}

// lancamentosBanco monta lançamentos bancários já normalizados, derivando
// nome e classificação das regras padrão, como faria o parser.
func lancamentosBanco(params ...bancoParams) []domain.LancamentoBanco {
	regras := RegrasPadrao()
	out := make([]domain.LancamentoBanco, 0, len(params))
	for i, p := range params {
		data, _ := ParseData(p.data)
		out = append(out, domain.LancamentoBanco{
			Seq:           i,
			Data:          data,
			Descricao:     p.descricao,
			Valor:         p.valor,
			CnpjCpf:       ExtrairCnpjCpf(p.descricao),
			Nome:          ExtrairNomeBanco(p.descricao, regras.PrefixosExtrato),
			Classificacao: ClassificarBanco(p.descricao, regras.Classificacao),
			IndiceOmie:    -1,
		})
	}
	return out
}

type omieParams struct {
	situacao   string
	data       string
	cliente    string
	razao      string
	conta      string
	categoria  string
	valor      float64
	numeroDoc  string
	notaFiscal string
}

func lancamentosOmie(params ...omieParams) []domain.LancamentoOmie {
	out := make([]domain.LancamentoOmie, 0, len(params))
	for i, p := range params {
		var data time.Time
		if p.data != "" {
			data, _ = ParseData(p.data)
		}
		out = append(out, domain.LancamentoOmie{
			Seq:             i,
			Situacao:        p.situacao,
			Data:            data,
			Cliente:         p.cliente,
			ContaCorrente:   p.conta,
			Categoria:       p.categoria,
			Valor:           p.valor,
			NumeroDocumento: p.numeroDoc,
			NotaFiscal:      p.notaFiscal,
			RazaoSocial:     p.razao,
			IndiceBanco:     -1,
		})
	}
	return out
}

func dataDe(valor string) time.Time {
	d, _ := ParseData(valor)
	return d
}

// indices devolve [0, 1, ..., n-1], o conjunto completo de índices.
func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
