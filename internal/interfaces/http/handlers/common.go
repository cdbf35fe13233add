// Package handlers holds the gin request handlers for the public API.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeAppError maps an application error onto its HTTP status; non-client
// errors are masked so internals never leak to callers.
func writeAppError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)
	message := err.Error()
	if errors.IsServerError(code) {
		message = errors.DefaultMessageForCode(code)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Code: string(code), Message: message})
}

// parseLimit reads the limit query parameter, bounded to [1, max].
func parseLimit(c *gin.Context, fallback, max int) int {
	v := c.Query("limit")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    string(errors.ErrCodeBadRequest),
			Message: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}
