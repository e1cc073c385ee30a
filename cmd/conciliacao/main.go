// cmd/conciliacao/main.go
package main

import (
	"log"

	"conciliacao-service/internal/api/handlers"
	"conciliacao-service/internal/api/responses"
	"conciliacao-service/internal/config"
	"conciliacao-service/internal/core/conciliacao"

	"github.com/gin-gonic/gin"
)

func main() {
	responses.InitLogger()

	cfg := config.Load()

	regras := conciliacao.RegrasPadrao()
	if cfg.RegrasPath != "" {
		var err error
		regras, err = conciliacao.CarregarRegras(cfg.RegrasPath)
		if err != nil {
			log.Fatal("Falha ao carregar arquivo de regras: ", err)
		}
	}

	conciliacaoService := conciliacao.NewService(regras)
	conciliacaoHandler := handlers.NewConciliacaoHandler(conciliacaoService)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/conciliar", conciliacaoHandler.HandleConciliar)
		apiV1.POST("/conciliar/exportar-cartao", conciliacaoHandler.HandleExportarCartao)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "conciliacao-service"})
	})

	log.Printf("🚀 Conciliação Service (Go) iniciado e escutando na porta %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Falha ao iniciar o servidor de conciliação: ", err)
	}
}
