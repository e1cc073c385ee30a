// Package config carrega a configuração do serviço a partir de variáveis de
// ambiente, com suporte a arquivo .env no diretório corrente.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config é a configuração do serviço de conciliação.
type Config struct {
	// Port é a porta HTTP do serviço.
	Port string
	// RegrasPath aponta para um YAML opcional com as tabelas de regras
	// (classificação, stopwords, categorias); vazio usa as embutidas.
	RegrasPath string
	// Debug habilita o modo de depuração do gin.
	Debug bool
}

// Load lê a configuração do ambiente. Um caminho de .env pode ser passado;
// sem ele, tenta o .env do diretório corrente e ignora se não existir.
func Load(envPath ...string) Config {
	if len(envPath) > 0 && envPath[0] != "" {
		_ = godotenv.Load(envPath[0])
	} else {
		_ = godotenv.Load()
	}

	return Config{
		Port:       getEnvOrDefault("PORT", "8084"),
		RegrasPath: os.Getenv("REGRAS_PATH"),
		Debug:      os.Getenv("DEBUG") == "true",
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
