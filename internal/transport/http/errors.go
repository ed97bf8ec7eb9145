package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// writeDomainError maps known domain errors onto HTTP statuses. Anything
// unrecognised is a 500.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
	case errors.Is(err, domain.ErrCartNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Cart not found",
		})
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Quantity must be at least 1",
		})
	case errors.Is(err, domain.ErrColorNotOffered):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Color is not offered for this product",
		})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "EMPTY_CART",
			Message: "Cannot place an order with an empty cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "INTERNAL",
			Message: "Internal server error",
		})
	}
}
