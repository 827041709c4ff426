package models

// CartItem is one line of the storefront cart. The whole cart is persisted
// as a single JSON record, so the struct mirrors the stored blob exactly.
type CartItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"` // minor currency units
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}
