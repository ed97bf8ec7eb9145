package repo

import (
	"context"
	"time"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/app/store/pricing"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
)

// CatalogReadModel serves display queries from the in-memory catalog.
// The catalog itself never changes after load; only the effective
// prices vary, because discount windows open and close over time.
type CatalogReadModel struct {
	catalog *catalog.Catalog
	pricing *pricing.Calculator
	clock   clock.Clock
}

// NewCatalogReadModel creates a new catalog read model.
func NewCatalogReadModel(cat *catalog.Catalog, calc *pricing.Calculator, clk clock.Clock) *CatalogReadModel {
	return &CatalogReadModel{
		catalog: cat,
		pricing: calc,
		clock:   clk,
	}
}

// ListProducts returns products in stored catalog order, filtered by the
// optional category and featured flags.
func (rm *CatalogReadModel) ListProducts(_ context.Context, filter *contracts.ListFilter) ([]*contracts.ProductDTO, error) {
	now := rm.clock.Now()
	result := make([]*contracts.ProductDTO, 0)

	for _, product := range rm.catalog.Products() {
		if filter != nil {
			if filter.Category != "" && product.Category() != filter.Category {
				continue
			}
			if filter.FeaturedOnly && !product.Featured() {
				continue
			}
		}

		dto, err := rm.buildDTO(product, now)
		if err != nil {
			return nil, err
		}
		result = append(result, dto)
	}

	return result, nil
}

// GetProductByID returns a single product with its price resolved now.
func (rm *CatalogReadModel) GetProductByID(_ context.Context, productID string) (*contracts.ProductDTO, error) {
	product, ok := rm.catalog.ProductByID(productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return rm.buildDTO(product, rm.clock.Now())
}

func (rm *CatalogReadModel) buildDTO(product *domain.Product, now time.Time) (*contracts.ProductDTO, error) {
	effective, err := rm.pricing.EffectivePrice(product.ID(), now)
	if err != nil {
		return nil, err
	}

	dto := &contracts.ProductDTO{
		ProductID:      product.ID(),
		Name:           product.Name(),
		Description:    product.Description(),
		Category:       product.Category(),
		BasePrice:      product.BasePrice().Float64(),
		EffectivePrice: effective.Float64(),
		Images:         product.Images(),
		Colors:         product.Colors(),
		Materials:      product.Materials(),
		Dimensions:     product.Dimensions(),
		Featured:       product.Featured(),
	}

	if discount := rm.catalog.ActiveDiscountFor(product.ID(), now); discount != nil {
		pct := discount.Percentage()
		dto.DiscountPercent = &pct
		dto.DiscountName = discount.Name()
	}

	return dto, nil
}
