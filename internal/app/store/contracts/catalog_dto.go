package contracts

// ProductDTO is a data transfer object for catalog queries. Prices are
// approximate float representations for display; exact arithmetic stays in
// the domain layer.
type ProductDTO struct {
	ProductID       string
	Name            string
	Description     string
	Category        string
	BasePrice       float64
	EffectivePrice  float64
	DiscountPercent *float64
	DiscountName    string
	Images          []string
	Colors          []string
	Materials       []string
	Dimensions      string
	Featured        bool
}

// ListFilter defines filtering options for listing catalog products.
type ListFilter struct {
	Category     string
	FeaturedOnly bool
}
