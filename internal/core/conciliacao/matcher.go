package conciliacao

import (
	"strings"

	"conciliacao-service/internal/domain"
)

// ---------------------- matcher em camadas ----------------------
//
// O pareamento roda em camadas de tolerância crescente, em ordem fixa
// A → B → C → D → fatura → cartão. Um lançamento aceito em uma camada fica
// travado (Conciliado=true) e nunca é reconsiderado: as camadas exatas
// precisam consumir seus pares antes que uma regra frouxa possa roubá-los.
// Reordenar as camadas muda o resultado.
//
// Desempate dentro de uma camada: menor distância em dias, depois menor
// índice de sequência do Omie. Determinístico por construção.

// camadaConfig é o perfil de tolerância de uma camada.
type camadaConfig struct {
	camada     domain.CamadaMatch
	tipo       string
	tolerancia float64
	janelaDias int
	exigeNome  bool
	// na última camada o nome pode ser substituído por outro indício
	// (número de documento do Omie presente na descrição do extrato)
	aceitaIndicio bool
}

var camadas = []camadaConfig{
	{camada: domain.CamadaA, tipo: "VALOR_E_DATA_EXATOS", tolerancia: Epsilon, janelaDias: 0},
	{camada: domain.CamadaB, tipo: "VALOR_EXATO_DATA_PROXIMA", tolerancia: Epsilon, janelaDias: 3},
	{camada: domain.CamadaC, tipo: "VALOR_PROXIMO_NOME_COMPATIVEL", tolerancia: 0.05, janelaDias: 7, exigeNome: true},
	{camada: domain.CamadaD, tipo: "APROXIMADO_COM_INDICIO", tolerancia: 0.10, janelaDias: 15, exigeNome: true, aceitaIndicio: true},
}

// ExecutarMatcher roda as quatro camadas gerais entre o extrato bancário e o
// subconjunto principal do Omie, na ordem fixa, acumulando os matches
// aceitos. Os índices em indicesOmie referenciam a coleção completa do Omie.
func ExecutarMatcher(banco []domain.LancamentoBanco, omie []domain.LancamentoOmie, indicesOmie []int, regras Regras) []domain.Match {
	var matches []domain.Match
	for _, cfg := range camadas {
		matches = append(matches, executarCamada(cfg, banco, omie, indicesOmie, regras)...)
	}
	return matches
}

func executarCamada(cfg camadaConfig, banco []domain.LancamentoBanco, omie []domain.LancamentoOmie, indicesOmie []int, regras Regras) []domain.Match {
	var matches []domain.Match

	for i := range banco {
		lb := &banco[i]
		if lb.Conciliado {
			continue
		}

		melhor := -1
		melhorGap := cfg.janelaDias + 1

		for _, j := range indicesOmie {
			lo := &omie[j]
			if lo.Conciliado {
				continue
			}
			if !valoresIguais(lb.Valor, lo.Valor, cfg.tolerancia) {
				continue
			}
			gap := DiasEntre(lb.Data, lo.Data)
			if gap > cfg.janelaDias {
				continue
			}
			if cfg.exigeNome && !corroborado(cfg, lb, lo, regras.Stopwords) {
				continue
			}
			if gap < melhorGap {
				melhorGap = gap
				melhor = j
			}
		}

		if melhor >= 0 {
			matches = append(matches, aceitarMatch(cfg.camada, cfg.tipo, lb, &omie[melhor], melhor))
		}
	}
	return matches
}

// corroborado decide o sinal adicional exigido pelas camadas frouxas: nome
// compatível sempre vale; na camada final, o número do documento do Omie
// aparecendo na descrição do extrato também vale.
func corroborado(cfg camadaConfig, lb *domain.LancamentoBanco, lo *domain.LancamentoOmie, stopwords []string) bool {
	if NomeCompativel(lb.Nome, lb.Descricao, lo.Cliente, lo.RazaoSocial, stopwords) {
		return true
	}
	if !cfg.aceitaIndicio {
		return false
	}
	doc := strings.TrimSpace(lo.NumeroDocumento)
	if len(doc) >= 4 && strings.Contains(lb.Descricao, doc) {
		return true
	}
	nf := strings.TrimSpace(lo.NotaFiscal)
	return len(nf) >= 4 && strings.Contains(lb.Descricao, nf)
}

func aceitarMatch(camada domain.CamadaMatch, tipo string, lb *domain.LancamentoBanco, lo *domain.LancamentoOmie, indiceOmie int) domain.Match {
	lb.Conciliado = true
	lb.TipoMatch = tipo
	lb.Camada = camada
	lb.IndiceOmie = indiceOmie

	lo.Conciliado = true
	lo.TipoMatch = tipo
	lo.Camada = camada
	lo.IndiceBanco = lb.Seq

	return domain.Match{
		Camada:      camada,
		Tipo:        tipo,
		IndiceBanco: lb.Seq,
		IndiceOmie:  indiceOmie,
		ValorBanco:  lb.Valor,
		ValorOmie:   lo.Valor,
	}
}

// ---------------------- fatura de cartão ----------------------

// Janela de dias aceita entre o débito da fatura no extrato e a baixa do
// pagamento no Omie.
const janelaFaturaDias = 5

// MatchFaturaCartao pareia os débitos de fatura de cartão do extrato com o
// lançamento de pagamento de fatura no Omie (qualquer conta), por valor e
// proximidade de data, fora das camadas gerais.
func MatchFaturaCartao(banco []domain.LancamentoBanco, omie []domain.LancamentoOmie) []domain.Match {
	var matches []domain.Match

	for i := range banco {
		lb := &banco[i]
		if lb.Conciliado || lb.Classificacao != domain.ClassFaturaCartao {
			continue
		}

		melhor := -1
		melhorGap := janelaFaturaDias + 1

		for j := range omie {
			lo := &omie[j]
			if lo.Conciliado {
				continue
			}
			if !valoresIguais(lb.Valor, lo.Valor, Epsilon) {
				continue
			}
			gap := DiasEntre(lb.Data, lo.Data)
			if gap > janelaFaturaDias {
				continue
			}
			if gap < melhorGap {
				melhorGap = gap
				melhor = j
			}
		}

		if melhor >= 0 {
			matches = append(matches, aceitarMatch(domain.CamadaFatura, "FATURA_CARTAO", lb, &omie[melhor], melhor))
		}
	}
	return matches
}

// ---------------------- transações de cartão × Omie ----------------------

// Janela de dias aceita entre a compra no cartão e o lançamento no Omie.
const janelaCartaoDias = 3

// MatchCartaoNf pareia cada transação de cartão com um lançamento do
// subconjunto do cartão no Omie, por valor, data e compatibilidade frouxa de
// nome, anotando a transação com os dados contábeis do lançamento casado. A
// categoria sugerida vem do Omie quando há match, e do sugestor quando não.
func MatchCartaoNf(cartao []domain.TransacaoCartao, omie []domain.LancamentoOmie, indicesCartao []int, regras Regras, sugestor *SugestorCategoria) {
	for i := range cartao {
		tc := &cartao[i]
		if tc.EhPagamentoFatura {
			continue
		}

		melhor := -1
		melhorGap := janelaCartaoDias + 1

		for _, j := range indicesCartao {
			lo := &omie[j]
			if lo.Conciliado {
				continue
			}
			if !valoresIguais(abs(tc.Valor), abs(lo.Valor), Epsilon) {
				continue
			}
			gap := DiasEntre(tc.Data, lo.Data)
			if gap > janelaCartaoDias {
				continue
			}
			if !NomeCompativelCartao(tc.Descricao, lo.Cliente, lo.RazaoSocial, regras.Stopwords) {
				continue
			}
			if gap < melhorGap {
				melhorGap = gap
				melhor = j
			}
		}

		if melhor >= 0 {
			lo := &omie[melhor]
			lo.Conciliado = true
			lo.TipoMatch = "CARTAO_NF"
			lo.Camada = domain.CamadaCartao

			tc.Conciliado = true
			tc.IndiceOmie = melhor
			tc.ClienteOmie = lo.Cliente
			tc.TipoDocumentoOmie = lo.TipoDocumento
			tc.NotaFiscalOmie = lo.NotaFiscal
			tc.CategoriaSugerida = lo.Categoria
		}

		if tc.CategoriaSugerida == "" {
			tc.CategoriaSugerida = sugestor.Sugerir(tc.Descricao)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
