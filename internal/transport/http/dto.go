package http

import (
	"time"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/checkout"
	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/app/store/pricing"
)

// ProductResponse is the JSON shape for catalog endpoints.
type ProductResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	EffectivePrice  float64  `json:"effective_price"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	DiscountName    string   `json:"discount_name,omitempty"`
	Images          []string `json:"images"`
	Colors          []string `json:"colors"`
	Materials       []string `json:"materials,omitempty"`
	Dimensions      string   `json:"dimensions,omitempty"`
	Featured        bool     `json:"featured"`
}

func productResponse(dto *contracts.ProductDTO) ProductResponse {
	return ProductResponse{
		ID:              dto.ProductID,
		Name:            dto.Name,
		Description:     dto.Description,
		Category:        dto.Category,
		Price:           dto.BasePrice,
		EffectivePrice:  dto.EffectivePrice,
		DiscountPercent: dto.DiscountPercent,
		DiscountName:    dto.DiscountName,
		Images:          dto.Images,
		Colors:          dto.Colors,
		Materials:       dto.Materials,
		Dimensions:      dto.Dimensions,
		Featured:        dto.Featured,
	}
}

// CartLineView is one cart line with prices resolved at render time.
type CartLineView struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	Quantity      int64  `json:"quantity"`
	Customization string `json:"customization,omitempty"`
	UnitPrice     string `json:"unit_price"`
	LineTotal     string `json:"line_total"`
	Discounted    bool   `json:"discounted"`
}

// CartView is the JSON shape for cart endpoints. The total is computed
// from current effective prices on every render, never cached.
type CartView struct {
	SessionID string         `json:"session_id"`
	Items     []CartLineView `json:"items"`
	ItemCount int64          `json:"item_count"`
	Total     string         `json:"total"`
}

func cartView(cart *domain.Cart, cat *catalog.Catalog, calc *pricing.Calculator, now time.Time) (*CartView, error) {
	view := &CartView{
		SessionID: cart.SessionID(),
		Items:     make([]CartLineView, 0, cart.Len()),
	}

	total := domain.Zero()
	for _, line := range cart.Lines() {
		product, ok := cat.ProductByID(line.ProductID())
		if !ok {
			return nil, domain.ErrProductNotFound
		}

		unit, err := calc.EffectivePrice(line.ProductID(), now)
		if err != nil {
			return nil, err
		}
		lineTotal := unit.MultiplyInt(line.Quantity())
		total = total.Add(lineTotal)

		view.Items = append(view.Items, CartLineView{
			ProductID:     line.ProductID(),
			Name:          product.Name(),
			Color:         line.Color(),
			Quantity:      line.Quantity(),
			Customization: line.Customization(),
			UnitPrice:     unit.String(),
			LineTotal:     lineTotal.String(),
			Discounted:    cat.ActiveDiscountFor(line.ProductID(), now) != nil,
		})
		view.ItemCount += line.Quantity()
	}

	view.Total = total.String()
	return view, nil
}

// OrderResponse is returned by the checkout endpoint.
type OrderResponse struct {
	Customer   CustomerPayload `json:"customer"`
	Items      []OrderLineView `json:"items"`
	Total      string          `json:"total"`
	MailtoLink string          `json:"mailto_link"`
	PlacedAt   time.Time       `json:"placed_at"`
}

// OrderLineView is one line of a placed order.
type OrderLineView struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	Color           string  `json:"color"`
	Quantity        int64   `json:"quantity"`
	Customization   string  `json:"customization,omitempty"`
	UnitPrice       string  `json:"unit_price"`
	LineTotal       string  `json:"line_total"`
	DiscountName    string  `json:"discount_name,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
}

// CustomerPayload is the checkout form, bound from the request and
// echoed in the response.
type CustomerPayload struct {
	FullName            string `json:"full_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone"`
	Address             string `json:"address" binding:"required"`
	City                string `json:"city" binding:"required"`
	PostalCode          string `json:"postal_code" binding:"required"`
	Country             string `json:"country" binding:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

func (p CustomerPayload) toDomain() checkout.CustomerInfo {
	return checkout.CustomerInfo{
		FullName:            p.FullName,
		Email:               p.Email,
		Phone:               p.Phone,
		Address:             p.Address,
		City:                p.City,
		PostalCode:          p.PostalCode,
		Country:             p.Country,
		SpecialInstructions: p.SpecialInstructions,
	}
}

func orderResponse(summary *checkout.OrderSummary, customer CustomerPayload, mailtoLink string) OrderResponse {
	resp := OrderResponse{
		Customer:   customer,
		Items:      make([]OrderLineView, 0, len(summary.Lines)),
		Total:      summary.Total.String(),
		MailtoLink: mailtoLink,
		PlacedAt:   summary.PlacedAt,
	}
	for _, line := range summary.Lines {
		resp.Items = append(resp.Items, OrderLineView{
			ProductID:       line.ProductID,
			Name:            line.ProductName,
			Color:           line.Color,
			Quantity:        line.Quantity,
			Customization:   line.Customization,
			UnitPrice:       line.UnitPrice.String(),
			LineTotal:       line.LineTotal.String(),
			DiscountName:    line.DiscountName,
			DiscountPercent: line.DiscountPercent,
		})
	}
	return resp
}
