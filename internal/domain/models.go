// package domain/models.go
package domain

import "time"

// ClassificacaoBanco identifica o tipo de lançamento do extrato bancário,
// derivado das palavras-chave da descrição.
type ClassificacaoBanco string

// Constantes de classificação do extrato bancário.
const (
	ClassPixRecebido      ClassificacaoBanco = "PIX_RECEBIDO"
	ClassPixEnviado       ClassificacaoBanco = "PIX_ENVIADO"
	ClassTed              ClassificacaoBanco = "TED"
	ClassBoleto           ClassificacaoBanco = "BOLETO"
	ClassFaturaCartao     ClassificacaoBanco = "FATURA_CARTAO"
	ClassFolha            ClassificacaoBanco = "FOLHA"
	ClassPedagio          ClassificacaoBanco = "PEDAGIO"
	ClassTagPedagio       ClassificacaoBanco = "TAG_PEDAGIO"
	ClassTarifa           ClassificacaoBanco = "TARIFA"
	ClassDebitoAutomatico ClassificacaoBanco = "DEBITO_AUTOMATICO"
	ClassTransfInterna    ClassificacaoBanco = "TRANSF_INTERNA"
	ClassAporte           ClassificacaoBanco = "APORTE"
	ClassLiberacaoCredito ClassificacaoBanco = "LIBERACAO_CREDITO"
	ClassImposto          ClassificacaoBanco = "IMPOSTO"
	ClassConsorcio        ClassificacaoBanco = "CONSORCIO"
	ClassOutros           ClassificacaoBanco = "OUTROS"
)

// CamadaMatch identifica a camada do matcher que aceitou o pareamento.
type CamadaMatch string

// Constantes das camadas de conciliação, em ordem de confiança.
const (
	CamadaA      CamadaMatch = "A"
	CamadaB      CamadaMatch = "B"
	CamadaC      CamadaMatch = "C"
	CamadaD      CamadaMatch = "D"
	CamadaFatura CamadaMatch = "FATURA"
	CamadaCartao CamadaMatch = "CARTAO"
)

// TipoDivergencia é o código fechado da taxonomia de divergências.
type TipoDivergencia string

// Constantes dos tipos de divergência.
const (
	DivSoBanco        TipoDivergencia = "A"  // lançamento no banco sem correspondência no Omie
	DivSoOmie         TipoDivergencia = "B"  // lançamento no Omie sem correspondência no banco
	DivContaVencida   TipoDivergencia = "B*" // conta em aberto no Omie já vencida
	DivValorDiferente TipoDivergencia = "C"  // pareado, mas com diferença de valor acima da tolerância
	DivDuplicidade    TipoDivergencia = "D"  // possível lançamento duplicado no Omie
	DivImportavel     TipoDivergencia = "I"  // transação de cartão pronta para importação no Omie
)

// LancamentoBanco representa uma linha normalizada do extrato bancário.
// Os campos de estado de conciliação são escritos apenas pelo matcher.
type LancamentoBanco struct {
	Seq           int                `json:"seq"`
	Data          time.Time          `json:"data"`
	Descricao     string             `json:"descricao"`
	Documento     string             `json:"documento,omitempty"`
	Valor         float64            `json:"valor"`
	Saldo         *float64           `json:"saldo,omitempty"`
	CnpjCpf       string             `json:"cnpj_cpf,omitempty"`
	Nome          string             `json:"nome,omitempty"`
	Classificacao ClassificacaoBanco `json:"classificacao"`

	Conciliado bool        `json:"conciliado"`
	TipoMatch  string      `json:"tipo_match,omitempty"`
	Camada     CamadaMatch `json:"camada,omitempty"`
	IndiceOmie int         `json:"indice_omie"`
}

// LancamentoOmie representa uma linha normalizada do extrato do Omie,
// cobrindo tanto a conta corrente principal quanto a conta do cartão.
type LancamentoOmie struct {
	Seq             int       `json:"seq"`
	Situacao        string    `json:"situacao,omitempty"`
	Data            time.Time `json:"data"`
	Cliente         string    `json:"cliente,omitempty"`
	ContaCorrente   string    `json:"conta_corrente,omitempty"`
	Categoria       string    `json:"categoria,omitempty"`
	Valor           float64   `json:"valor"`
	TipoDocumento   string    `json:"tipo_documento,omitempty"`
	NumeroDocumento string    `json:"numero_documento,omitempty"`
	NotaFiscal      string    `json:"nota_fiscal,omitempty"`
	Parcela         string    `json:"parcela,omitempty"`
	Origem          string    `json:"origem,omitempty"`
	Projeto         string    `json:"projeto,omitempty"`
	RazaoSocial     string    `json:"razao_social,omitempty"`
	CnpjCpf         string    `json:"cnpj_cpf,omitempty"`
	Observacoes     string    `json:"observacoes,omitempty"`

	Conciliado  bool        `json:"conciliado"`
	TipoMatch   string      `json:"tipo_match,omitempty"`
	Camada      CamadaMatch `json:"camada,omitempty"`
	IndiceBanco int         `json:"indice_banco"`
}

// TransacaoCartao representa uma linha de compra/crédito da fatura do cartão.
type TransacaoCartao struct {
	Data              time.Time `json:"data"`
	Descricao         string    `json:"descricao"`
	Parcela           string    `json:"parcela,omitempty"`
	Valor             float64   `json:"valor"`
	Portador          string    `json:"portador,omitempty"`
	Cartao            string    `json:"cartao,omitempty"`
	EhPagamentoFatura bool      `json:"eh_pagamento_fatura"`
	EhEstorno         bool      `json:"eh_estorno"`

	Conciliado        bool   `json:"conciliado"`
	IndiceOmie        int    `json:"indice_omie"`
	ClienteOmie       string `json:"cliente_omie,omitempty"`
	TipoDocumentoOmie string `json:"tipo_documento_omie,omitempty"`
	NotaFiscalOmie    string `json:"nota_fiscal_omie,omitempty"`
	CategoriaSugerida string `json:"categoria_sugerida,omitempty"`
}

// InfoCartao traz os metadados da fatura, extraídos uma única vez por arquivo.
type InfoCartao struct {
	Vencimento     time.Time `json:"vencimento,omitempty"`
	ValorTotal     float64   `json:"valor_total"`
	Situacao       string    `json:"situacao,omitempty"`
	GastosBrasil   float64   `json:"gastos_brasil"`
	GastosExterior float64   `json:"gastos_exterior"`
	Pagamentos     float64   `json:"pagamentos"`
}

// Match registra um pareamento aceito entre um lançamento do banco e um do
// Omie. Cada lançamento aparece em no máximo um Match por execução.
type Match struct {
	Camada      CamadaMatch `json:"camada"`
	Tipo        string      `json:"tipo"`
	IndiceBanco int         `json:"indice_banco"`
	IndiceOmie  int         `json:"indice_omie"`
	ValorBanco  float64     `json:"valor_banco"`
	ValorOmie   float64     `json:"valor_omie"`
}

// Divergencia descreve uma anomalia encontrada na conciliação. Registros são
// apenas acrescentados pelo classificador, nunca alterados depois de criados.
type Divergencia struct {
	Tipo     TipoDivergencia `json:"tipo"`
	Titulo   string          `json:"titulo"`
	Origem   string          `json:"origem"` // BANCO, OMIE, CARTAO ou MATCH
	Data     time.Time       `json:"data"`
	Valor    float64         `json:"valor"`
	Cliente  string          `json:"cliente,omitempty"`
	Situacao string          `json:"situacao,omitempty"`
	Sugestao string          `json:"sugestao,omitempty"`

	ValorBanco    *float64   `json:"valor_banco,omitempty"`
	ValorOmie     *float64   `json:"valor_omie,omitempty"`
	DataBanco     *time.Time `json:"data_banco,omitempty"`
	DataOmie      *time.Time `json:"data_omie,omitempty"`
	Delta         float64    `json:"delta,omitempty"`
	DiasDiferenca int        `json:"dias_diferenca,omitempty"`

	Parcela           string `json:"parcela,omitempty"`
	Portador          string `json:"portador,omitempty"`
	CategoriaSugerida string `json:"categoria_sugerida,omitempty"`

	IndiceBanco int `json:"indice_banco"`
	IndiceOmie  int `json:"indice_omie"`
}

// ResultadoConciliacao é o agregado raiz devolvido pelo motor. Depois de
// retornado, deve ser tratado como somente leitura.
type ResultadoConciliacao struct {
	Matches      []Match           `json:"matches"`
	Divergencias []Divergencia     `json:"divergencias"`
	Banco        []LancamentoBanco `json:"banco"`
	Omie         []LancamentoOmie  `json:"omie"`
	Cartao       []TransacaoCartao `json:"cartao"`
	InfoCartao   *InfoCartao       `json:"info_cartao,omitempty"`

	SaldoAnteriorBanco *float64 `json:"saldo_anterior_banco,omitempty"`
	SaldoAnteriorOmie  *float64 `json:"saldo_anterior_omie,omitempty"`

	MatchesPorCamada    map[CamadaMatch]int     `json:"matches_por_camada"`
	DivergenciasPorTipo map[TipoDivergencia]int `json:"divergencias_por_tipo"`

	TotalConciliados  int `json:"total_conciliados"`
	TotalDivergentes  int `json:"total_divergentes"`
	ContasVencidas    int `json:"contas_vencidas"`
	CartaoImportaveis int `json:"cartao_importaveis"`

	Mes    int    `json:"mes"`
	Ano    int    `json:"ano"`
	MesAno string `json:"mes_ano"`

	Avisos []string `json:"avisos,omitempty"`
}
