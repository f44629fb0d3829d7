package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the single response shape every endpoint answers with.
// status is "success" or "error"; code is set only on errors.
type Envelope struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}
