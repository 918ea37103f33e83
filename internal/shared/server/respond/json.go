package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform success wrapper returned by write operations.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Success writes a success envelope with an optional message and data body.
func Success(c *gin.Context, status int, message string, data any) {
	JSON(c, status, Envelope{Success: true, Message: message, Data: data})
}

// OK writes a 200 success envelope carrying only data.
func OK(c *gin.Context, data any) {
	Success(c, http.StatusOK, "", data)
}
