package entities

// Product is the product reference record served by the catalog.
//
// Price is the unit price charged for the product; caller-asserted prices are
// only checked against it, never charged.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}
