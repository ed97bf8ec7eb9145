// Package http exposes the storefront over a JSON API. Carts are keyed
// by an anonymous session header so one server instance can serve many
// browsers at once.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(
	logger *zap.Logger,
	catalogHandler *CatalogHandler,
	cartHandler *CartHandler,
	checkoutHandler *CheckoutHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(SessionMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", catalogHandler.ListProducts)
		v1.GET("/products/:id", catalogHandler.GetProduct)

		v1.GET("/cart", cartHandler.GetCart)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.PATCH("/cart/items", cartHandler.UpdateQuantity)
		v1.DELETE("/cart/items", cartHandler.RemoveItem)
		v1.DELETE("/cart", cartHandler.ClearCart)

		v1.POST("/checkout", checkoutHandler.Checkout)
	}

	return router
}
