package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromDomain mapeia a taxonomia de negócio para status HTTP.
// Erro desconhecido vira 500 genérico (nunca vaza detalhe interno).
func FromDomain(c *gin.Context, err error, message string) {
	kind, ok := KindOf(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch kind {
	case KindNotFound:
		NotFound(c, err.Error(), message)
	case KindMissingInput, KindValidation:
		BadRequest(c, err.Error(), message)
	case KindInvalidTransition, KindInvalidState:
		Write(c, http.StatusConflict, err.Error(), message)
	case KindPersistence:
		Internal(c, err.Error(), message)
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
