package conciliacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSugerirCategoriaLiteral(t *testing.T) {
	sugestor := NovoSugestorCategoria(RegrasPadrao().Categorias)

	assert.Equal(t, "Combustíveis e Lubrificantes", sugestor.Sugerir("POSTO SHELL CENTRO"))
	assert.Equal(t, "Alimentação", sugestor.Sugerir("SUPERMERCADO PAGUE MENOS"))
	assert.Equal(t, "Viagens e Estadias", sugestor.Sugerir("HOTEL BOA VISTA"))
}

func TestSugerirCategoriaFuzzy(t *testing.T) {
	sugestor := NovoSugestorCategoria(RegrasPadrao().Categorias)

	// "RESTAURANT" sem o E final não casa literal, mas o índice fuzzy acha
	assert.Equal(t, "Alimentação", sugestor.Sugerir("RESTAURANT DO ZE"))
}

func TestSugerirCategoriaSemPalpite(t *testing.T) {
	sugestor := NovoSugestorCategoria(RegrasPadrao().Categorias)

	assert.Equal(t, "", sugestor.Sugerir(""))
	assert.Equal(t, "", sugestor.Sugerir("XYZQW"))
}
