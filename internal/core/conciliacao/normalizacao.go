package conciliacao

import (
	"regexp"
	"strings"
	"unicode"

	"conciliacao-service/internal/domain"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ---------------------- normalização de texto ----------------------

var naoAlfanumericoRegex = regexp.MustCompile(`[^A-Z0-9 ]+`)
var espacosRegex = regexp.MustCompile(`\s+`)

// normalizarTexto remove acentos, sobe para maiúsculas e colapsa tudo que não
// for letra/dígito em espaços simples.
func normalizarTexto(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	result, _, _ := transform.String(t, str)
	result = strings.ToUpper(result)
	result = naoAlfanumericoRegex.ReplaceAllString(result, " ")
	result = espacosRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// ---------------------- CNPJ / CPF ----------------------

var digitosRegex = regexp.MustCompile(`\D`)
var cnpjRegex = regexp.MustCompile(`\d{14}`)
var cpfRegex = regexp.MustCompile(`\d{11}`)

// NormalizarCnpjCpf remove tudo que não for dígito. Entrada vazia vira "".
func NormalizarCnpjCpf(texto string) string {
	if texto == "" {
		return ""
	}
	return digitosRegex.ReplaceAllString(texto, "")
}

// FormatarCnpj aplica a pontuação canônica XX.XXX.XXX/XXXX-XX quando a
// entrada tem exatamente 14 dígitos; caso contrário devolve a entrada intacta.
func FormatarCnpj(digitos string) string {
	if len(digitos) != 14 {
		return digitos
	}
	return digitos[0:2] + "." + digitos[2:5] + "." + digitos[5:8] + "/" + digitos[8:12] + "-" + digitos[12:14]
}

// FormatarCpf aplica a pontuação canônica XXX.XXX.XXX-XX quando a entrada
// tem exatamente 11 dígitos; caso contrário devolve a entrada intacta.
func FormatarCpf(digitos string) string {
	if len(digitos) != 11 {
		return digitos
	}
	return digitos[0:3] + "." + digitos[3:6] + "." + digitos[6:9] + "-" + digitos[9:11]
}

// ExtrairCnpjCpf procura na descrição uma sequência de 14 dígitos (CNPJ) e,
// na falta dela, uma de 11 dígitos isolada (CPF). Devolve o documento já
// formatado, ou "" quando nada é encontrado.
func ExtrairCnpjCpf(descricao string) string {
	if m := cnpjRegex.FindString(descricao); m != "" {
		return FormatarCnpj(m)
	}
	for _, loc := range cpfRegex.FindAllStringIndex(descricao, -1) {
		ini, fim := loc[0], loc[1]
		if ini > 0 && ehDigito(descricao[ini-1]) {
			continue
		}
		if fim < len(descricao) && ehDigito(descricao[fim]) {
			continue
		}
		return FormatarCpf(descricao[ini:fim])
	}
	return ""
}

func ehDigito(b byte) bool {
	return b >= '0' && b <= '9'
}

// ---------------------- nome do favorecido no extrato ----------------------

// ExtrairNomeBanco tenta isolar o nome do favorecido de uma descrição de
// extrato: remove o prefixo operacional conhecido, remove CNPJ/CPF embutido e
// apara separadores soltos. Se sobrar nada, devolve a descrição original.
func ExtrairNomeBanco(descricao string, prefixos []string) string {
	nome := strings.TrimSpace(descricao)
	nomeNorm := normalizarTexto(nome)

	for _, p := range prefixos {
		if strings.HasPrefix(nomeNorm, p) {
			// recorta o prefixo sobre o texto original, caractere a caractere,
			// consumindo o mesmo número de palavras
			nome = cortarPrefixoOriginal(nome, len(strings.Fields(p)))
			break
		}
	}

	nome = cnpjRegex.ReplaceAllString(nome, "")
	nome = cpfRegex.ReplaceAllString(nome, "")
	nome = strings.Trim(nome, " -–/|.:;,")
	nome = espacosRegex.ReplaceAllString(nome, " ")
	nome = strings.TrimSpace(nome)

	if nome == "" {
		return strings.TrimSpace(descricao)
	}
	return nome
}

// cortarPrefixoOriginal descarta as n primeiras palavras do texto original.
func cortarPrefixoOriginal(texto string, n int) string {
	campos := strings.Fields(texto)
	if n >= len(campos) {
		return ""
	}
	return strings.Join(campos[n:], " ")
}

// ---------------------- classificação do extrato ----------------------

// ClassificarBanco percorre a escada de regras em ordem fixa e devolve a tag
// da primeira regra cuja palavra-chave aparece na descrição. Sem regra
// casando, devolve OUTROS.
func ClassificarBanco(descricao string, regras []RegraClassificacao) domain.ClassificacaoBanco {
	descNorm := normalizarTexto(descricao)
	for _, regra := range regras {
		for _, palavra := range regra.Contem {
			if strings.Contains(descNorm, palavra) {
				return regra.Tag
			}
		}
	}
	return domain.ClassOutros
}

// ---------------------- compatibilidade de nomes ----------------------

// tokenizar quebra o texto normalizado em tokens com mais de 2 caracteres,
// opcionalmente descartando stopwords societárias e conectivos.
func tokenizar(texto string, stopwords []string) []string {
	var tokens []string
	for _, t := range strings.Fields(normalizarTexto(texto)) {
		if len(t) <= 2 {
			continue
		}
		if stopwords != nil && contemString(stopwords, t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

func contemString(lista []string, alvo string) bool {
	for _, s := range lista {
		if s == alvo {
			return true
		}
	}
	return false
}

// NomeCompativel decide se o favorecido do extrato e o cliente do Omie são a
// mesma parte. Exige que pelo menos min(2, tokens do Omie) tokens do Omie
// tenham sobreposição com algum token do banco, ou que o primeiro token do
// Omie apareça literalmente na descrição bruta do extrato.
func NomeCompativel(nomeBanco, descricaoBanco, nomeOmie, razaoOmie string, stopwords []string) bool {
	tokensOmie := tokensUnicos(tokenizar(nomeOmie, stopwords), tokenizar(razaoOmie, stopwords))
	tokensBanco := tokensUnicos(tokenizar(nomeBanco, nil), tokenizar(descricaoBanco, nil))

	if len(tokensOmie) == 0 || len(tokensBanco) == 0 {
		return false
	}

	necessarios := 2
	if len(tokensOmie) < necessarios {
		necessarios = len(tokensOmie)
	}

	acertos := 0
	for _, to := range tokensOmie {
		for _, tb := range tokensBanco {
			if strings.Contains(tb, to) || strings.Contains(to, tb) {
				acertos++
				break
			}
		}
	}
	if acertos >= necessarios {
		return true
	}

	return strings.Contains(normalizarTexto(descricaoBanco), tokensOmie[0])
}

// NomeCompativelCartao é a variante frouxa usada para descrições de fatura de
// cartão, que são curtas: basta um token do Omie com sobreposição.
func NomeCompativelCartao(descricaoCartao, nomeOmie, razaoOmie string, stopwords []string) bool {
	tokensOmie := tokensUnicos(tokenizar(nomeOmie, stopwords), tokenizar(razaoOmie, stopwords))
	tokensCartao := tokenizar(descricaoCartao, nil)

	if len(tokensOmie) == 0 || len(tokensCartao) == 0 {
		return false
	}

	for _, to := range tokensOmie {
		for _, tc := range tokensCartao {
			if strings.Contains(tc, to) || strings.Contains(to, tc) {
				return true
			}
		}
	}
	return false
}

func tokensUnicos(listas ...[]string) []string {
	var out []string
	visto := make(map[string]bool)
	for _, lista := range listas {
		for _, t := range lista {
			if !visto[t] {
				visto[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
