package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(200, gin.H{"message": message})
}

// EmptyList é o degrade dos endpoints de leitura: falha interna nunca
// quebra o painel, devolve lista vazia com 200.
func EmptyList[T any](c *gin.Context) {
	c.JSON(200, []T{})
}
