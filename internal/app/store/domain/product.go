package domain

// Product is an immutable catalog entry. Products are owned by the catalog:
// they are validated once at load time and never modified afterwards.
type Product struct {
	id          string
	name        string
	description string
	basePrice   *Money
	images      []string
	category    string
	colors      []string
	materials   []string
	dimensions  string
	featured    bool
}

// NewProduct creates a Product with load-time validation.
func NewProduct(
	id, name, description string,
	basePrice *Money,
	images []string,
	category string,
	colors, materials []string,
	dimensions string,
	featured bool,
) (*Product, error) {
	if id == "" {
		return nil, ErrEmptyProductID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if basePrice == nil || basePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if len(colors) == 0 {
		return nil, ErrNoColors
	}

	return &Product{
		id:          id,
		name:        name,
		description: description,
		basePrice:   basePrice.Copy(),
		images:      copyStrings(images),
		category:    category,
		colors:      copyStrings(colors),
		materials:   copyStrings(materials),
		dimensions:  dimensions,
		featured:    featured,
	}, nil
}

// Getters
func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) BasePrice() *Money   { return p.basePrice.Copy() }
func (p *Product) Images() []string    { return copyStrings(p.images) }
func (p *Product) Category() string    { return p.category }
func (p *Product) Colors() []string    { return copyStrings(p.colors) }
func (p *Product) Materials() []string { return copyStrings(p.materials) }
func (p *Product) Dimensions() string  { return p.dimensions }
func (p *Product) Featured() bool      { return p.featured }

// HasColor reports whether the product is offered in the given color.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.colors {
		if c == color {
			return true
		}
	}
	return false
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
