package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/place_order"
)

// CheckoutHandler turns a cart into a placed order.
type CheckoutHandler struct {
	placeOrder *place_order.Interactor
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(placeOrder *place_order.Interactor) *CheckoutHandler {
	return &CheckoutHandler{placeOrder: placeOrder}
}

// Checkout handles POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CustomerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	result, err := h.placeOrder.Execute(c.Request.Context(), &place_order.Request{
		SessionID: sessionID(c),
		Customer:  req.toDomain(),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderResponse(result.Summary, req, result.MailtoLink))
}
