// Package cmd define os comandos do CLI de conciliação.
package cmd

import (
	"github.com/spf13/cobra"
)

var regrasPath string

// rootCmd é o comando base quando chamado sem subcomandos.
var rootCmd = &cobra.Command{
	Use:   "conciliar",
	Short: "Conciliação entre extrato bancário, Omie e fatura de cartão",
	Long: `conciliar roda o motor de conciliação sobre arquivos locais, sem o
serviço HTTP: interpreta o extrato bancário, o relatório do Omie e a fatura
de cartão (opcional), pareia os lançamentos em camadas e grava o resultado.

Exemplo:
  conciliar run --banco extrato.xlsx --omie omie.xlsx --cartao fatura.csv --saida resultado.json`,
}

// Execute registra os subcomandos e executa o comando raiz.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&regrasPath, "regras", "", "arquivo YAML de regras (padrão: tabelas embutidas)")

	rootCmd.AddCommand(runCmd)
}
