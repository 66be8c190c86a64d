// Package api implements the bearer-authenticated HTTP/JSON client for the
// remote storefront service. It is the single place where status codes are
// mapped to sentinel errors; callers match them with errors.Is.
package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// CredentialSource supplies the stored bearer credential. An empty string
// means no credential is present.
type CredentialSource interface {
	Credential(ctx context.Context) (string, error)
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Client is the remote storefront API surface used by the application
// services. All methods honor context cancellation and map failures to the
// sentinel errors of this package.
type Client interface {
	// Account.
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, identifier, password string) (string, models.Identity, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (models.Identity, error)
	UpdateProfileImage(ctx context.Context, filename string, r io.Reader) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword, confirmPassword string) error

	// Catalog.
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id string) (models.Product, error)
	Reviews(ctx context.Context, productID string) ([]models.Review, error)
	SubmitReview(ctx context.Context, productID string, rating int, comment string) error

	// Cart.
	Cart(ctx context.Context) ([]models.CartLine, error)
	AddCartItem(ctx context.Context, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, productID string) error

	// Wishlist.
	Wishlist(ctx context.Context) ([]models.Product, error)
	AddWishlistItem(ctx context.Context, productID string) error
	RemoveWishlistItem(ctx context.Context, productID string) error

	// Orders.
	CreateOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error)
	Order(ctx context.Context, id string) (models.Order, error)

	// Admin back office.
	AdminUsers(ctx context.Context) ([]models.AccountSummary, error)
	AdminUser(ctx context.Context, id string) (models.AccountSummary, error)
	AdminDeleteUser(ctx context.Context, id string) error
	AdminUserCart(ctx context.Context, id string) ([]models.CartLine, error)
	AdminUserWishlist(ctx context.Context, id string) ([]models.Product, error)
	AdminOrders(ctx context.Context) ([]models.Order, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, productID, reviewID string) error
}
