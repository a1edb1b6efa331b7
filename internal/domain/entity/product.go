// Package entity contains the core business objects of the project.
package entity

// Category represents the marketplace section a product belongs to.
type Category string

const (
	// CategorySeeds indicates seed products.
	CategorySeeds Category = "seeds"
	// CategoryFertilizers indicates fertilizer products.
	CategoryFertilizers Category = "fertilizers"
	// CategoryPesticides indicates pesticide and fungicide products.
	CategoryPesticides Category = "pesticides"
	// CategoryTools indicates hand tools.
	CategoryTools Category = "tools"
	// CategoryEquipment indicates larger farm equipment.
	CategoryEquipment Category = "equipment"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategorySeeds, CategoryFertilizers, CategoryPesticides, CategoryTools, CategoryEquipment:
		return true
	default:
		return false
	}
}

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategorySeeds,
		CategoryFertilizers,
		CategoryPesticides,
		CategoryTools,
		CategoryEquipment,
	}
}

// Product is a read-only catalog record sourced from the backend adapter.
type Product struct {
	ID          string
	Name        string
	Category    Category
	Description string
	Price       float64 // Unit price in the product's currency.
	Currency    string  // ISO currency code, e.g. "KES".
	ImageURL    string
	InStock     bool
	Rating      float64
	Reviews     int
}
