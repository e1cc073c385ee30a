package conciliacao

import (
	"strings"

	"github.com/schollz/closestmatch"
)

// ---------------------- sugestão de categoria ----------------------
//
// A tabela palavra-chave → categoria é dado de configuração (Regras), não
// lógica. A busca tenta primeiro a correspondência literal e depois cai no
// índice fuzzy, como a busca de plano de contas dos conversores.

// SugestorCategoria sugere a categoria contábil de uma compra de cartão a
// partir da descrição.
type SugestorCategoria struct {
	regras      []RegraCategoria
	porPalavra  map[string]string
	indiceFuzzy *closestmatch.ClosestMatch
}

// NovoSugestorCategoria monta o sugestor a partir da tabela de regras.
func NovoSugestorCategoria(regras []RegraCategoria) *SugestorCategoria {
	porPalavra := make(map[string]string)
	var palavras []string
	for _, r := range regras {
		for _, p := range r.Contem {
			chave := normalizarTexto(p)
			if chave == "" {
				continue
			}
			if _, existe := porPalavra[chave]; !existe {
				porPalavra[chave] = r.Categoria
				palavras = append(palavras, chave)
			}
		}
	}

	var indice *closestmatch.ClosestMatch
	if len(palavras) > 0 {
		indice = closestmatch.New(palavras, []int{3, 4})
	}

	return &SugestorCategoria{
		regras:      regras,
		porPalavra:  porPalavra,
		indiceFuzzy: indice,
	}
}

// Sugerir devolve a categoria sugerida para a descrição, ou "" quando nem a
// busca literal nem a fuzzy encontram algo aproveitável.
func (s *SugestorCategoria) Sugerir(descricao string) string {
	descNorm := normalizarTexto(descricao)
	if descNorm == "" {
		return ""
	}

	for _, r := range s.regras {
		for _, p := range r.Contem {
			if strings.Contains(descNorm, normalizarTexto(p)) {
				return r.Categoria
			}
		}
	}

	if s.indiceFuzzy != nil {
		// fuzzy apenas sobre o primeiro token relevante da descrição, que é
		// onde o estabelecimento costuma aparecer
		tokens := tokenizar(descNorm, nil)
		if len(tokens) > 0 {
			if m := s.indiceFuzzy.Closest(tokens[0]); m != "" {
				if cat, ok := s.porPalavra[m]; ok && compativelFuzzy(tokens[0], m) {
					return cat
				}
			}
		}
	}
	return ""
}

// compativelFuzzy exige alguma sobreposição real entre a descrição e a
// palavra-chave escolhida pelo índice, para não aceitar vizinho qualquer.
func compativelFuzzy(token, palavra string) bool {
	if len(token) < 4 || len(palavra) < 4 {
		return token == palavra
	}
	return strings.Contains(token, palavra[:4]) || strings.Contains(palavra, token[:4])
}
