// Package response shapes the API's uniform envelopes.
// Success bodies are {status:"success", ..., data:{...}}; failures are
// {status:"fail"|"error", message} where "fail" covers 4xx and "error" 5xx.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillpress/quillpress/internal/apperr"
)

// Success writes a success envelope. extra carries additional top-level
// fields such as token, count, or pagination.
func Success(c *gin.Context, status int, data any, extra gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range extra {
		body[k] = v
	}
	body["data"] = data
	c.JSON(status, body)
}

// Fail writes an error envelope without aborting the request chain.
func Fail(c *gin.Context, status int, message string) {
	kind := "fail"
	if status >= http.StatusInternalServerError {
		kind = "error"
	}
	c.JSON(status, gin.H{"status": kind, "message": message})
}

// FromError is the single funnel from service errors to the wire. Known
// taxonomy errors keep their status and message; anything else becomes a
// generic 500 so internals never leak.
func FromError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		Fail(c, ae.Status(), ae.Message)
		return
	}
	Fail(c, http.StatusInternalServerError, "internal server error")
}
