package models

// Review is a product review as returned by the reviews endpoint.
type Review struct {
	ID      string  `json:"_id,omitempty"`
	Name    string  `json:"name,omitempty"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// AccountSummary is the admin-facing view of a user account.
type AccountSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}
