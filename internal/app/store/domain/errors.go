package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyProductID   = errors.New("product id cannot be empty")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrInvalidPrice     = errors.New("product base price cannot be negative")
	ErrNoColors         = errors.New("product must offer at least one color")
	ErrDuplicateProduct = errors.New("duplicate product id in catalog")

	// Discount errors
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidDiscountPeriod  = errors.New("discount end date cannot be before start date")

	// Cart errors
	ErrCartNotFound    = errors.New("cart not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrColorNotOffered = errors.New("selected color is not offered for this product")
	ErrEmptyCart       = errors.New("cart is empty")

	// Storage errors
	ErrMoneyOverflow = errors.New("money value exceeds int64 storage bounds")
)
