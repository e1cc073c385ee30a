package conciliacao

import (
	"fmt"
	"os"

	"conciliacao-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// RegraClassificacao mapeia palavras-chave da descrição do extrato para uma
// tag de classificação. As regras são avaliadas em ordem: a primeira que
// casar vence.
type RegraClassificacao struct {
	Tag    domain.ClassificacaoBanco `yaml:"tag"`
	Contem []string                  `yaml:"contem"`
}

// RegraCategoria mapeia palavras-chave da descrição de uma compra de cartão
// para a categoria contábil sugerida na importação.
type RegraCategoria struct {
	Categoria string   `yaml:"categoria"`
	Contem    []string `yaml:"contem"`
}

// Regras reúne as tabelas de dados que parametrizam parsers, matcher e
// classificador. São dados de configuração, não lógica: podem ser
// substituídas por um arquivo YAML sem tocar no fluxo de controle.
type Regras struct {
	Classificacao   []RegraClassificacao `yaml:"classificacao"`
	PrefixosExtrato []string             `yaml:"prefixos_extrato"`
	Stopwords       []string             `yaml:"stopwords"`
	ContasCartao    []string             `yaml:"contas_cartao"`
	Categorias      []RegraCategoria     `yaml:"categorias"`
}

// RegrasPadrao devolve as tabelas embutidas, levantadas dos extratos reais
// (Sicredi/Itaú) e dos relatórios do Omie com que o sistema convive.
func RegrasPadrao() Regras {
	return Regras{
		Classificacao: []RegraClassificacao{
			{Tag: domain.ClassPixRecebido, Contem: []string{"PIX RECEBIDO", "RECEBIMENTO PIX", "PIX CRED"}},
			{Tag: domain.ClassPixEnviado, Contem: []string{"PIX"}},
			{Tag: domain.ClassTed, Contem: []string{"TED", "DOC "}},
			{Tag: domain.ClassBoleto, Contem: []string{"LIQUIDACAO BOLETO", "PAGAMENTO DE TITULO", "BOLETO", "TITULO"}},
			{Tag: domain.ClassFaturaCartao, Contem: []string{"FATURA", "PAGTO CARTAO", "CARTAO CREDITO"}},
			{Tag: domain.ClassFolha, Contem: []string{"FOLHA", "SALARIO", "PAGAMENTO FUNCIONARIO", "FERIAS", "RESCISAO"}},
			{Tag: domain.ClassPedagio, Contem: []string{"PEDAGIO"}},
			{Tag: domain.ClassTagPedagio, Contem: []string{"SEM PARAR", "VELOE", "CONECTCAR", "MENSALIDADE TAG"}},
			{Tag: domain.ClassTarifa, Contem: []string{"TARIFA", "TAR COBRANCA", "MANUTENCAO CONTA"}},
			{Tag: domain.ClassDebitoAutomatico, Contem: []string{"DEBITO AUTOMATICO", "DEB AUT", "CESTA"}},
			{Tag: domain.ClassTransfInterna, Contem: []string{"TRANSFERENCIA ENTRE CONTAS", "MESMA TITULARIDADE", "APLICACAO", "RESGATE"}},
			{Tag: domain.ClassAporte, Contem: []string{"APORTE", "INTEGRALIZACAO"}},
			{Tag: domain.ClassLiberacaoCredito, Contem: []string{"LIBERACAO DE CREDITO", "CREDITO LIBERADO", "EMPRESTIMO", "FINANCIAMENTO"}},
			{Tag: domain.ClassImposto, Contem: []string{"DARF", "GPS", "FGTS", "DAS ", "GARE", "IMPOSTO", "TRIBUTO"}},
			{Tag: domain.ClassConsorcio, Contem: []string{"CONSORCIO"}},
		},
		PrefixosExtrato: []string{
			"PAGAMENTO PIX",
			"RECEBIMENTO PIX",
			"PIX RECEBIDO",
			"PIX ENVIADO",
			"PIX TRANSF",
			"TED RECEBIDA",
			"TED ENVIADA",
			"TED TRANSF",
			"TRANSFERENCIA RECEBIDA",
			"TRANSFERENCIA ENVIADA",
			"LIQUIDACAO BOLETO",
			"PAGAMENTO DE BOLETO",
			"PAGAMENTO BOLETO",
			"PAGAMENTO TITULO",
			"DEBITO AUTOMATICO",
			"PAGAMENTO FORNECEDOR",
			"COMPRA CARTAO",
			"PAGTO",
		},
		Stopwords: []string{
			"LTDA", "SA", "S.A", "S/A", "EIRELI", "EPP", "ME", "MEI",
			"DE", "DA", "DO", "DOS", "DAS", "E",
		},
		ContasCartao: []string{"CARTAO", "CARTÃO", "CREDIT CARD"},
		Categorias: []RegraCategoria{
			{Categoria: "Combustíveis e Lubrificantes", Contem: []string{"POSTO", "COMBUSTIVEL", "AUTO POSTO", "IPIRANGA", "SHELL"}},
			{Categoria: "Materiais de Construção", Contem: []string{"MATERIAL", "CONSTRUCAO", "DEPOSITO", "MADEIREIRA", "CONCRETO", "ACOS"}},
			{Categoria: "Ferramentas e Equipamentos", Contem: []string{"FERRAMENTA", "MAQUINA", "LOCACAO DE EQUIP"}},
			{Categoria: "Alimentação", Contem: []string{"RESTAURANTE", "PADARIA", "LANCHONETE", "SUPERMERCADO", "MERCADO", "IFOOD"}},
			{Categoria: "Viagens e Estadias", Contem: []string{"HOTEL", "POUSADA", "HOSPEDAGEM", "AIRBNB"}},
			{Categoria: "Passagens e Transporte", Contem: []string{"AZUL", "GOL", "LATAM", "UBER", "99APP", "TAXI", "PASSAGEM"}},
			{Categoria: "Pedágio e Tags", Contem: []string{"PEDAGIO", "SEM PARAR", "VELOE", "CONECTCAR"}},
			{Categoria: "Despesas Administrativas", Contem: []string{"PAPELARIA", "CARTORIO", "CORREIOS", "GRAFICA"}},
			{Categoria: "Saúde", Contem: []string{"FARMACIA", "DROGARIA"}},
			{Categoria: "Tecnologia e Software", Contem: []string{"GOOGLE", "MICROSOFT", "ADOBE", "SOFTWARE", "HOSPEDAGEM SITE"}},
		},
	}
}

// CarregarRegras lê um arquivo YAML de regras. Campos ausentes no arquivo
// caem nas tabelas padrão, para que a configuração possa ser parcial.
func CarregarRegras(path string) (Regras, error) {
	regras := RegrasPadrao()

	data, err := os.ReadFile(path)
	if err != nil {
		return regras, fmt.Errorf("erro ao ler arquivo de regras: %w", err)
	}

	var arquivo Regras
	if err := yaml.Unmarshal(data, &arquivo); err != nil {
		return regras, fmt.Errorf("erro ao interpretar arquivo de regras: %w", err)
	}

	if len(arquivo.Classificacao) > 0 {
		regras.Classificacao = arquivo.Classificacao
	}
	if len(arquivo.PrefixosExtrato) > 0 {
		regras.PrefixosExtrato = arquivo.PrefixosExtrato
	}
	if len(arquivo.Stopwords) > 0 {
		regras.Stopwords = arquivo.Stopwords
	}
	if len(arquivo.ContasCartao) > 0 {
		regras.ContasCartao = arquivo.ContasCartao
	}
	if len(arquivo.Categorias) > 0 {
		regras.Categorias = arquivo.Categorias
	}
	return regras, nil
}
