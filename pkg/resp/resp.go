package resp

import (
	"errors"
	"net/http"

	"lacarreta/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

// Error maps a service error onto the HTTP surface. Unknown errors become a
// bare 500 so internals never leak to the caller.
func Error(c *gin.Context, err error) {
	var fe *apperr.FieldError
	switch {
	case errors.As(err, &fe):
		BadRequest(c, fe.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		Unauthorized(c, "unauthorized")
	case errors.Is(err, apperr.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
