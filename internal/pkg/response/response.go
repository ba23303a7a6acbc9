// internal/pkg/response/response.go
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body defines the standard API response format. The submitting client only
// ever sees ok plus an optional error string; Data carries payloads for the
// read-only helper endpoints.
type Body struct {
	OK    bool        `json:"ok"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// OK sends a successful response with optional payload data.
func OK(c *gin.Context, data ...interface{}) {
	body := Body{OK: true}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail sends a standardized error response.
func Fail(c *gin.Context, code int, message string) {
	c.Abort()
	c.JSON(code, Body{OK: false, Error: message})
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// ServerError sends a generic 500 response without leaking internals.
func ServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "Server error")
}
