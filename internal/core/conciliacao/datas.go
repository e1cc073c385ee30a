package conciliacao

import (
	"strconv"
	"strings"
	"time"
)

// Intervalo aceito para serial de data do Excel (~1995 a ~2028), para não
// confundir valores monetários com datas.
const (
	serialExcelMin = 35000
	serialExcelMax = 47000
)

// ParseData interpreta os formatos de data que aparecem nos três extratos:
// dd/mm/aaaa, dd/mm/aa, ISO (aaaa-mm-dd, com ou sem hora) e serial numérico
// do Excel. Devolve ok=false quando nada casa.
func ParseData(valor string) (time.Time, bool) {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(valor), `"'`))
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("02/01/06", s); err == nil {
		return t, true
	}
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, true
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f > serialExcelMin && f < serialExcelMax {
			return serialExcelParaData(f), true
		}
	}
	if t, err := time.Parse("2/1/2006", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// serialExcelParaData converte o serial do Excel (dias desde 1899-12-30, com
// o clássico deslocamento do dia 2) para uma data UTC.
func serialExcelParaData(serial float64) time.Time {
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	dias := int(serial)
	frac := serial - float64(dias)
	d := base.AddDate(0, 0, dias)
	return d.Add(time.Duration(frac * 24 * float64(time.Hour)))
}

// DiasEntre devolve a diferença absoluta em dias inteiros entre duas datas.
func DiasEntre(d1, d2 time.Time) int {
	a := time.Date(d1.Year(), d1.Month(), d1.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(d2.Year(), d2.Month(), d2.Day(), 0, 0, 0, 0, time.UTC)
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
