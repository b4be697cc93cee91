// Package web holds the shared response envelope and the stable error kinds
// returned by every handler.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind is a machine-readable failure code carried next to the human message.
type Kind string

const (
	KindUnauthenticated     Kind = "unauthenticated"
	KindInvalidRequest      Kind = "invalid_request"
	KindNotFound            Kind = "not_found"
	KindNotFoundOrForbidden Kind = "not_found_or_forbidden"
	KindConflict            Kind = "conflict"
	KindInvalidTransition   Kind = "invalid_transition"
	KindUpstreamFailure     Kind = "upstream_failure"
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidRequest, KindInvalidTransition:
		return http.StatusBadRequest
	case KindNotFound, KindNotFoundOrForbidden:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes the failure envelope {success, code, message}.
func Error(c *gin.Context, kind Kind, message string) {
	c.JSON(kind.HTTPStatus(), gin.H{
		"success": false,
		"code":    string(kind),
		"message": message,
	})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, kind Kind, message string) {
	c.AbortWithStatusJSON(kind.HTTPStatus(), gin.H{
		"success": false,
		"code":    string(kind),
		"message": message,
	})
}
