// Command seed loads the catalog fixture file into Spanner. It is
// idempotent: rows are written with InsertOrUpdate so re-running it
// refreshes the catalog in place.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/CimeM/shellLeatherStore/internal/models/m_catalog_discount"
	"github.com/CimeM/shellLeatherStore/internal/models/m_catalog_product"
)

var (
	databaseFlag = flag.String("database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	catalogFlag  = flag.String("catalog", "data/catalog.json", "Path to the catalog fixture file")
)

// seedProduct mirrors one product entry in the fixture file. Price is a
// decimal string so values like "85.50" stay exact.
type seedProduct struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       json.Number `json:"price"`
	Images      []string    `json:"images"`
	Colors      []string    `json:"colors"`
	Materials   []string    `json:"materials"`
	Dimensions  string      `json:"dimensions"`
	Featured    bool        `json:"featured"`
}

// seedDiscount mirrors one discount entry. A missing or null product_ids
// field means the discount covers the whole catalog.
type seedDiscount struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Percentage  float64  `json:"percentage"`
	Active      bool     `json:"active"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	ProductIDs  []string `json:"product_ids"`
}

type seedCatalog struct {
	Products  []seedProduct  `json:"products"`
	Discounts []seedDiscount `json:"discounts"`
}

func main() {
	flag.Parse()

	if *databaseFlag == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed completed successfully")
}

func run(ctx context.Context) error {
	raw, err := os.ReadFile(*catalogFlag)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat seedCatalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	muts, err := buildMutations(&cat)
	if err != nil {
		return err
	}

	client, err := spanner.NewClient(ctx, *databaseFlag)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	if _, err := client.Apply(ctx, muts); err != nil {
		return fmt.Errorf("failed to apply seed mutations: %w", err)
	}

	log.Printf("Seeded %d products and %d discounts", len(cat.Products), len(cat.Discounts))
	return nil
}

func buildMutations(cat *seedCatalog) ([]*spanner.Mutation, error) {
	productModel := m_catalog_product.NewModel()
	discountModel := m_catalog_discount.NewModel()

	muts := make([]*spanner.Mutation, 0, len(cat.Products)+len(cat.Discounts))

	for i, p := range cat.Products {
		num, denom, err := parsePrice(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}

		muts = append(muts, productModel.UpsertMut(&m_catalog_product.Data{
			ProductID:        p.ID,
			Name:             p.Name,
			Description:      p.Description,
			Category:         p.Category,
			PriceNumerator:   num,
			PriceDenominator: denom,
			Images:           p.Images,
			Colors:           p.Colors,
			Materials:        p.Materials,
			Dimensions:       spanner.NullString{StringVal: p.Dimensions, Valid: p.Dimensions != ""},
			Featured:         p.Featured,
			Position:         int64(i),
		}))
	}

	for i, d := range cat.Discounts {
		start, err := time.Parse(time.RFC3339, d.StartDate)
		if err != nil {
			return nil, fmt.Errorf("discount %s: invalid start_date: %w", d.ID, err)
		}
		end, err := time.Parse(time.RFC3339, d.EndDate)
		if err != nil {
			return nil, fmt.Errorf("discount %s: invalid end_date: %w", d.ID, err)
		}

		muts = append(muts, discountModel.UpsertMut(&m_catalog_discount.Data{
			DiscountID:  d.ID,
			Name:        d.Name,
			Description: d.Description,
			Percentage:  d.Percentage,
			Active:      d.Active,
			StartDate:   start,
			EndDate:     end,
			ProductIDs:  d.ProductIDs,
			Position:    int64(i),
		}))
	}

	return muts, nil
}

// parsePrice converts a decimal price string into an exact fraction.
func parsePrice(price json.Number) (int64, int64, error) {
	rat, ok := new(big.Rat).SetString(price.String())
	if !ok {
		return 0, 0, fmt.Errorf("invalid price %q", price)
	}
	if rat.Sign() < 0 {
		return 0, 0, fmt.Errorf("negative price %q", price)
	}
	if !rat.Num().IsInt64() || !rat.Denom().IsInt64() {
		return 0, 0, fmt.Errorf("price %q out of range", price)
	}
	return rat.Num().Int64(), rat.Denom().Int64(), nil
}
