package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/get_product"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/list_products"
)

// CatalogHandler serves the read-only product catalog.
type CatalogHandler struct {
	listProducts *list_products.Query
	getProduct   *get_product.Query
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(listQ *list_products.Query, getQ *get_product.Query) *CatalogHandler {
	return &CatalogHandler{
		listProducts: listQ,
		getProduct:   getQ,
	}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	req := &list_products.Request{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}

	dtos, err := h.listProducts.Execute(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	products := make([]ProductResponse, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, productResponse(dto))
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	req := &get_product.Request{ProductID: c.Param("id")}

	dto, err := h.getProduct.Execute(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, productResponse(dto))
}
