package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"conciliacao-service/internal/core/conciliacao"

	"github.com/spf13/cobra"
)

var (
	bancoPath   string
	omiePath    string
	cartaoPath  string
	saidaPath   string
	exportarCSV string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa a conciliação sobre arquivos locais",
	RunE: func(cmd *cobra.Command, args []string) error {
		regras := conciliacao.RegrasPadrao()
		if regrasPath != "" {
			var err error
			regras, err = conciliacao.CarregarRegras(regrasPath)
			if err != nil {
				return err
			}
		}

		bancoFile, err := os.Open(bancoPath)
		if err != nil {
			return fmt.Errorf("erro ao abrir extrato bancário: %w", err)
		}
		defer bancoFile.Close()

		omieFile, err := os.Open(omiePath)
		if err != nil {
			return fmt.Errorf("erro ao abrir extrato Omie: %w", err)
		}
		defer omieFile.Close()

		entrada := conciliacao.Entrada{
			Banco:     bancoFile,
			NomeBanco: bancoPath,
			Omie:      omieFile,
			NomeOmie:  omiePath,
		}

		if cartaoPath != "" {
			cartaoFile, err := os.Open(cartaoPath)
			if err != nil {
				return fmt.Errorf("erro ao abrir fatura de cartão: %w", err)
			}
			defer cartaoFile.Close()
			entrada.Cartao = cartaoFile
			entrada.NomeCartao = cartaoPath
		}

		service := conciliacao.NewService(regras)
		resultado, err := service.ExecutarConciliacao(entrada)
		if err != nil {
			return err
		}

		saida, err := json.MarshalIndent(resultado, "", "  ")
		if err != nil {
			return err
		}
		if saidaPath == "" || saidaPath == "-" {
			fmt.Println(string(saida))
		} else if err := os.WriteFile(saidaPath, saida, 0o644); err != nil {
			return fmt.Errorf("erro ao gravar resultado: %w", err)
		}

		if exportarCSV != "" {
			csvData, err := service.GerarCSVImportacaoCartao(resultado)
			if err != nil {
				return err
			}
			if err := os.WriteFile(exportarCSV, csvData, 0o644); err != nil {
				return fmt.Errorf("erro ao gravar planilha de importação: %w", err)
			}
		}

		fmt.Fprintf(os.Stderr, "Conciliação %s: %d conciliados, %d divergências (%d contas vencidas, %d importáveis)\n",
			resultado.MesAno, resultado.TotalConciliados, resultado.TotalDivergentes,
			resultado.ContasVencidas, resultado.CartaoImportaveis)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&bancoPath, "banco", "", "arquivo do extrato bancário (.csv, .xls, .xlsx)")
	runCmd.Flags().StringVar(&omiePath, "omie", "", "arquivo do relatório do Omie (.csv, .xls, .xlsx)")
	runCmd.Flags().StringVar(&cartaoPath, "cartao", "", "arquivo da fatura de cartão (.csv), opcional")
	runCmd.Flags().StringVar(&saidaPath, "saida", "-", "arquivo de saída do resultado em JSON (- para stdout)")
	runCmd.Flags().StringVar(&exportarCSV, "exportar-cartao", "", "grava a planilha de importação das compras de cartão")

	_ = runCmd.MarkFlagRequired("banco")
	_ = runCmd.MarkFlagRequired("omie")
}
