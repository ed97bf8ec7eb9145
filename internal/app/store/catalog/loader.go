package catalog

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/models/m_catalog_discount"
	"github.com/CimeM/shellLeatherStore/internal/models/m_catalog_product"
)

// Loader reads the products and discounts tables into a Catalog. The load
// happens once at startup; the resulting Catalog is read-only. Data-integrity
// violations (bad percentage, inverted window, empty color set) are rejected
// here so that pricing never sees an invalid record.
type Loader struct {
	client *spanner.Client
}

// NewLoader creates a new Loader.
func NewLoader(client *spanner.Client) *Loader {
	return &Loader{client: client}
}

// Load builds the Catalog from storage, preserving stored catalog order.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	products, err := l.loadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	discounts, err := l.loadDiscounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load discounts: %w", err)
	}

	return New(products, discounts)
}

func (l *Loader) loadProducts(ctx context.Context) ([]*domain.Product, error) {
	stmt := spanner.Statement{
		SQL: "SELECT product_id, name, description, category, " +
			"price_numerator, price_denominator, images, colors, materials, " +
			"dimensions, featured, position " +
			"FROM products ORDER BY position",
	}

	iter := l.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var products []*domain.Product
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_catalog_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product row: %w", err)
		}

		product, err := dataToProduct(&data)
		if err != nil {
			return nil, fmt.Errorf("invalid product %q: %w", data.ProductID, err)
		}

		products = append(products, product)
	}

	return products, nil
}

func (l *Loader) loadDiscounts(ctx context.Context) ([]*domain.Discount, error) {
	stmt := spanner.Statement{
		SQL: "SELECT discount_id, name, description, percentage, active, " +
			"start_date, end_date, product_ids, position " +
			"FROM discounts ORDER BY position",
	}

	iter := l.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var discounts []*domain.Discount
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate discounts: %w", err)
		}

		var data m_catalog_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse discount row: %w", err)
		}

		discount, err := dataToDiscount(&data)
		if err != nil {
			return nil, fmt.Errorf("invalid discount %q: %w", data.DiscountID, err)
		}

		discounts = append(discounts, discount)
	}

	return discounts, nil
}

func dataToProduct(data *m_catalog_product.Data) (*domain.Product, error) {
	price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return nil, err
	}

	dimensions := ""
	if data.Dimensions.Valid {
		dimensions = data.Dimensions.StringVal
	}

	return domain.NewProduct(
		data.ProductID,
		data.Name,
		data.Description,
		price,
		data.Images,
		data.Category,
		data.Colors,
		data.Materials,
		dimensions,
		data.Featured,
	)
}

func dataToDiscount(data *m_catalog_discount.Data) (*domain.Discount, error) {
	return domain.NewDiscount(
		data.DiscountID,
		data.Name,
		data.Description,
		data.Percentage,
		data.Active,
		data.StartDate,
		data.EndDate,
		data.ProductIDs,
	)
}
