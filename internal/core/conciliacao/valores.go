package conciliacao

import (
	"strconv"
	"strings"
)

// Tolerância monetária usada em todas as comparações de valor.
const Epsilon = 0.01

// ParseValorBRL interpreta um valor monetário em formato brasileiro ou
// anglo ("R$ 1.234,56", "-1500.00", "(200,00)"). Nunca falha: entradas
// vazias ou lixo viram 0.
func ParseValorBRL(valor string) float64 {
	s := strings.TrimSpace(valor)
	s = strings.Trim(s, `"'`)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return 0
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}

	// a última ocorrência de ponto/vírgula decide o separador decimal
	ultimoPonto := strings.LastIndex(s, ".")
	ultimaVirgula := strings.LastIndex(s, ",")
	switch {
	case ultimaVirgula > ultimoPonto:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case ultimoPonto > ultimaVirgula:
		if strings.Count(s, ".") > 1 {
			partes := strings.Split(s, ".")
			s = strings.Join(partes[:len(partes)-1], "") + "." + partes[len(partes)-1]
		}
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if neg {
		f = -f
	}
	return arredondar(f, 2)
}

func arredondar(val float64, casas int) float64 {
	pow := 1.0
	for i := 0; i < casas; i++ {
		pow *= 10
	}
	if val >= 0 {
		return float64(int64(val*pow+0.5)) / pow
	}
	return float64(int64(val*pow-0.5)) / pow
}

// valoresIguais compara dois valores dentro da tolerância dada. A diferença
// exatamente igual à tolerância ainda conta como igual.
func valoresIguais(a, b, tolerancia float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerancia+1e-9
}
