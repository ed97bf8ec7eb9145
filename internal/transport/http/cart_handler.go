package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/app/store/pricing"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/get_cart"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/add_item"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/clear_cart"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/remove_item"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/update_quantity"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
)

// AddItemRequest is the payload for POST /api/v1/cart/items. A zero
// quantity means the client omitted it and defaults to 1.
type AddItemRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	Color         string `json:"color" binding:"required"`
	Quantity      int64  `json:"quantity"`
	Customization string `json:"customization"`
}

// UpdateQuantityRequest is the payload for PATCH /api/v1/cart/items.
// Zero or negative quantity removes the line.
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

// CartHandler serves the per-session shopping cart.
type CartHandler struct {
	getCart        *get_cart.Query
	addItem        *add_item.Interactor
	updateQuantity *update_quantity.Interactor
	removeItem     *remove_item.Interactor
	clearCart      *clear_cart.Interactor
	catalog        *catalog.Catalog
	pricing        *pricing.Calculator
	clock          clock.Clock
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(
	getCart *get_cart.Query,
	addItem *add_item.Interactor,
	updateQuantity *update_quantity.Interactor,
	removeItem *remove_item.Interactor,
	clearCart *clear_cart.Interactor,
	cat *catalog.Catalog,
	calc *pricing.Calculator,
	clk clock.Clock,
) *CartHandler {
	return &CartHandler{
		getCart:        getCart,
		addItem:        addItem,
		updateQuantity: updateQuantity,
		removeItem:     removeItem,
		clearCart:      clearCart,
		catalog:        cat,
		pricing:        calc,
		clock:          clk,
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.getCart.Execute(c.Request.Context(), &get_cart.Request{
		SessionID: sessionID(c),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.renderCart(c, http.StatusOK, cart)
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.addItem.Execute(c.Request.Context(), &add_item.Request{
		SessionID:     sessionID(c),
		ProductID:     req.ProductID,
		Color:         req.Color,
		Quantity:      req.Quantity,
		Customization: req.Customization,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.renderCart(c, http.StatusCreated, cart)
}

// UpdateQuantity handles PATCH /api/v1/cart/items
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	cart, err := h.updateQuantity.Execute(c.Request.Context(), &update_quantity.Request{
		SessionID: sessionID(c),
		ProductID: req.ProductID,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.renderCart(c, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/v1/cart/items
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Query("product_id")
	color := c.Query("color")
	if productID == "" || color == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "product_id and color query parameters are required",
		})
		return
	}

	cart, err := h.removeItem.Execute(c.Request.Context(), &remove_item.Request{
		SessionID: sessionID(c),
		ProductID: productID,
		Color:     color,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.renderCart(c, http.StatusOK, cart)
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart, err := h.clearCart.Execute(c.Request.Context(), &clear_cart.Request{
		SessionID: sessionID(c),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.renderCart(c, http.StatusOK, cart)
}

func (h *CartHandler) renderCart(c *gin.Context, status int, cart *domain.Cart) {
	view, err := cartView(cart, h.catalog, h.pricing, h.clock.Now())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(status, view)
}
