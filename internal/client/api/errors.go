package api

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means no credential is stored; the call was never sent.
	ErrAuthRequired = errors.New("authentication required")

	// ErrUnauthorized means the server rejected the stored credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the credential is valid but lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable covers transport failures and timeouts.
	ErrUnavailable = errors.New("server unavailable")

	// ErrAlreadyInWishlist is reported when adding a product the wishlist
	// already contains.
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
)

// APIError is a server-rejected request (non-2xx) carrying the message from
// the response envelope, or a generic fallback when the body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
