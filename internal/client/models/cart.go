package models

// CartLine is one entry of the server-side cart, mirrored locally.
// Quantity never goes below 1; decrements past that are clamped.
type CartLine struct {
	ID       string  `json:"_id,omitempty"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// WishlistEntry is one mirrored wishlist product.
type WishlistEntry struct {
	Product Product `json:"product"`
}
