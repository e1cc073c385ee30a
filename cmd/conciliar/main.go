// cmd/conciliar/main.go
package main

import (
	"os"

	"conciliacao-service/cmd/conciliar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
