package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for every API reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "success", Data: data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: http.StatusCreated, Message: "created", Data: data})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Code: code, Message: message})
}
