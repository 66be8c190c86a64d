package models

// User roles as reported by the API.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the client-side snapshot of the authenticated user's profile.
// It is seeded from the login response and refreshed from the profile
// endpoint; it may go stale relative to server state.
type Identity struct {
	ID               string `json:"_id,omitempty"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Role             string `json:"role"`
	ProfileImage     string `json:"profileImage,omitempty"`
	CartQuantity     int    `json:"cartQuantity,omitempty"`
	WishlistQuantity int    `json:"watchlistQuantity,omitempty"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
