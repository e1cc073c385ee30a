// Package responses padroniza o envelope JSON da API de conciliação e o
// log estruturado de cada resposta.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// APIResponse é o envelope padrão das respostas da API.
type APIResponse struct {
	Status  string      `json:"status"` // "success" ou "error"
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// InitLogger inicializa o logger estruturado das respostas. Antes da
// chamada, as respostas saem sem log (logger nop).
func InitLogger() {
	if l, err := zap.NewProduction(); err == nil {
		logger = l
	}
}

// Success envia uma resposta de sucesso com os dados e a mensagem dados.
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{Status: "success", Data: data, Message: message})
	logger.Info("resposta enviada",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", http.StatusOK))
}

// Error envia uma resposta de erro com o código HTTP, a mensagem e os
// detalhes opcionais.
func Error(c *gin.Context, code int, message string, errs ...string) {
	c.JSON(code, APIResponse{Status: "error", Message: message, Errors: errs})
	logger.Error("resposta de erro",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.String("message", message),
		zap.Strings("errors", errs))
}
