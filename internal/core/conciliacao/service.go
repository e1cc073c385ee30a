package conciliacao

import (
	"fmt"
	"io"
	"time"

	"conciliacao-service/internal/domain"
)

// Service define a interface do motor de conciliação bancária.
type Service interface {
	ExecutarConciliacao(entrada Entrada) (*domain.ResultadoConciliacao, error)
	GerarCSVImportacaoCartao(resultado *domain.ResultadoConciliacao) ([]byte, error)
}

// Entrada agrupa os três arquivos de uma execução. O arquivo de cartão é
// opcional: nil significa conciliação sem fatura.
type Entrada struct {
	Banco      io.Reader
	NomeBanco  string
	Omie       io.Reader
	NomeOmie   string
	Cartao     io.Reader
	NomeCartao string
}

type service struct {
	regras   Regras
	sugestor *SugestorCategoria
	agora    func() time.Time
}

// NewService cria o serviço de conciliação com as tabelas de regras dadas.
func NewService(regras Regras) Service {
	return &service{
		regras:   regras,
		sugestor: NovoSugestorCategoria(regras.Categorias),
		agora:    time.Now,
	}
}

// ExecutarConciliacao roda o pipeline completo: decodifica e interpreta os
// três arquivos, divide o Omie por conta, roda as camadas do matcher na
// ordem fixa, classifica duplicidades e divergências e consolida os totais.
func (svc *service) ExecutarConciliacao(entrada Entrada) (*domain.ResultadoConciliacao, error) {
	linhasBanco, err := WorkbookParaLinhas(entrada.Banco, entrada.NomeBanco)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo do extrato bancário: %w", err)
	}
	banco, saldoBanco, avisosBanco := ParseBanco(linhasBanco, svc.regras)

	linhasOmie, err := WorkbookParaLinhas(entrada.Omie, entrada.NomeOmie)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo do Omie: %w", err)
	}
	omie, saldoOmie, avisosOmie := ParseOmie(linhasOmie)

	var cartao []domain.TransacaoCartao
	var infoCartao *domain.InfoCartao
	var avisosCartao []string
	if entrada.Cartao != nil {
		data, err := io.ReadAll(entrada.Cartao)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo da fatura de cartão: %w", err)
		}
		cartao, infoCartao, avisosCartao = ParseCartaoFromText(DecodificarTexto(data))
	}

	indicesConta, indicesCartao := DividirPorConta(omie, svc.regras.ContasCartao)

	matches := ExecutarMatcher(banco, omie, indicesConta, svc.regras)
	matches = append(matches, MatchFaturaCartao(banco, omie)...)
	if len(cartao) > 0 {
		MatchCartaoNf(cartao, omie, indicesCartao, svc.regras, svc.sugestor)
	}

	var divergencias []domain.Divergencia
	DetectarDuplicidades(omie, indicesConta, &divergencias)
	ClassificarDivergencias(banco, omie, indicesConta, indicesCartao, cartao, matches, &divergencias, svc.agora())

	resultado := &domain.ResultadoConciliacao{
		Matches:            matches,
		Divergencias:       divergencias,
		Banco:              banco,
		Omie:               omie,
		Cartao:             cartao,
		InfoCartao:         infoCartao,
		SaldoAnteriorBanco: saldoBanco,
		SaldoAnteriorOmie:  saldoOmie,
	}

	resultado.Avisos = append(resultado.Avisos, avisosBanco...)
	resultado.Avisos = append(resultado.Avisos, avisosOmie...)
	resultado.Avisos = append(resultado.Avisos, avisosCartao...)

	consolidarTotais(resultado)
	resultado.Mes, resultado.Ano = DetectarMesAno(banco, svc.agora())
	resultado.MesAno = fmt.Sprintf("%02d/%04d", resultado.Mes, resultado.Ano)

	return resultado, nil
}

// consolidarTotais calcula as contagens por camada, por tipo e os quatro
// totais de resumo.
func consolidarTotais(r *domain.ResultadoConciliacao) {
	r.MatchesPorCamada = make(map[domain.CamadaMatch]int)
	for _, m := range r.Matches {
		r.MatchesPorCamada[m.Camada]++
	}

	r.DivergenciasPorTipo = make(map[domain.TipoDivergencia]int)
	for _, d := range r.Divergencias {
		r.DivergenciasPorTipo[d.Tipo]++
	}

	r.TotalConciliados = len(r.Matches)
	for i := range r.Cartao {
		if r.Cartao[i].Conciliado {
			r.TotalConciliados++
		}
	}
	r.TotalDivergentes = len(r.Divergencias)
	r.ContasVencidas = r.DivergenciasPorTipo[domain.DivContaVencida]
	r.CartaoImportaveis = r.DivergenciasPorTipo[domain.DivImportavel]
}

// DetectarMesAno devolve o par (mês, ano) dominante entre os lançamentos do
// extrato. Empate resolve pelo par mais antigo; extrato vazio cai no mês
// corrente do relógio do sistema.
func DetectarMesAno(banco []domain.LancamentoBanco, agora time.Time) (int, int) {
	if len(banco) == 0 {
		return int(agora.Month()), agora.Year()
	}

	type mesAno struct {
		mes int
		ano int
	}
	contagem := make(map[mesAno]int)
	for i := range banco {
		contagem[mesAno{int(banco[i].Data.Month()), banco[i].Data.Year()}]++
	}

	var melhor mesAno
	melhorContagem := -1
	for ma, c := range contagem {
		if c > melhorContagem {
			melhor = ma
			melhorContagem = c
			continue
		}
		if c == melhorContagem && (ma.ano < melhor.ano || (ma.ano == melhor.ano && ma.mes < melhor.mes)) {
			melhor = ma
		}
	}
	return melhor.mes, melhor.ano
}
