// Package httperr maps domain errors to HTTP responses so every controller
// reports failures the same way.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

// Status picks the response code for a service error.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrOrderStatus):
		return http.StatusNotAcceptable
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes the error as the standard {"error": ...} body.
func JSON(c *gin.Context, err error) {
	c.JSON(Status(err), gin.H{"error": err.Error()})
}
