package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

func nopLogger() logging.Logger {
	return logging.NewZerologLogger(zerolog.Nop())
}

// fakeSession is a canned Snapshot result.
type fakeSession struct {
	present  bool
	identity *models.Identity
	err      error
}

func (f *fakeSession) Snapshot(ctx context.Context) (bool, *models.Identity, error) {
	return f.present, f.identity, f.err
}

func loggedInSession() *fakeSession {
	return &fakeSession{present: true, identity: &models.Identity{ID: "u1", Name: "Alice", Role: models.RoleUser}}
}

func adminSession() *fakeSession {
	return &fakeSession{present: true, identity: &models.Identity{ID: "a1", Name: "Root", Role: models.RoleAdmin}}
}

// fakeClient stubs the methods a test cares about and counts calls so
// tests can assert that gated denials never reach the network. Unstubbed
// methods panic through the embedded nil interface.
type fakeClient struct {
	api.Client

	calls int

	cartFn           func(ctx context.Context) ([]models.CartLine, error)
	addCartFn        func(ctx context.Context, productID string, quantity int) error
	updateCartFn     func(ctx context.Context, productID string, quantity int) error
	removeCartFn     func(ctx context.Context, productID string) error
	wishlistFn       func(ctx context.Context) ([]models.Product, error)
	addWishlistFn    func(ctx context.Context, productID string) error
	removeWishlistFn func(ctx context.Context, productID string) error
	createOrderFn    func(ctx context.Context, draft models.OrderDraft) (models.Order, error)
	productsFn       func(ctx context.Context) ([]models.Product, error)
	productFn        func(ctx context.Context, id string) (models.Product, error)
	reviewsFn        func(ctx context.Context, productID string) ([]models.Review, error)
	submitReviewFn   func(ctx context.Context, productID string, rating int, comment string) error
	adminUsersFn     func(ctx context.Context) ([]models.AccountSummary, error)
	adminDeleteFn    func(ctx context.Context, id string) error
	adminOrdersFn    func(ctx context.Context) ([]models.Order, error)
	createProductFn  func(ctx context.Context, input models.ProductInput) (models.Product, error)
	deleteProductFn  func(ctx context.Context, id string) error
	deleteReviewFn   func(ctx context.Context, productID, reviewID string) error
}

func (f *fakeClient) Cart(ctx context.Context) ([]models.CartLine, error) {
	f.calls++
	return f.cartFn(ctx)
}

func (f *fakeClient) AddCartItem(ctx context.Context, productID string, quantity int) error {
	f.calls++
	return f.addCartFn(ctx, productID, quantity)
}

func (f *fakeClient) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	f.calls++
	return f.updateCartFn(ctx, productID, quantity)
}

func (f *fakeClient) RemoveCartItem(ctx context.Context, productID string) error {
	f.calls++
	return f.removeCartFn(ctx, productID)
}

func (f *fakeClient) Wishlist(ctx context.Context) ([]models.Product, error) {
	f.calls++
	return f.wishlistFn(ctx)
}

func (f *fakeClient) AddWishlistItem(ctx context.Context, productID string) error {
	f.calls++
	return f.addWishlistFn(ctx, productID)
}

func (f *fakeClient) RemoveWishlistItem(ctx context.Context, productID string) error {
	f.calls++
	return f.removeWishlistFn(ctx, productID)
}

func (f *fakeClient) CreateOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	f.calls++
	return f.createOrderFn(ctx, draft)
}

func (f *fakeClient) Products(ctx context.Context) ([]models.Product, error) {
	f.calls++
	return f.productsFn(ctx)
}

func (f *fakeClient) Product(ctx context.Context, id string) (models.Product, error) {
	f.calls++
	return f.productFn(ctx, id)
}

func (f *fakeClient) Reviews(ctx context.Context, productID string) ([]models.Review, error) {
	f.calls++
	return f.reviewsFn(ctx, productID)
}

func (f *fakeClient) SubmitReview(ctx context.Context, productID string, rating int, comment string) error {
	f.calls++
	return f.submitReviewFn(ctx, productID, rating, comment)
}

func (f *fakeClient) AdminUsers(ctx context.Context) ([]models.AccountSummary, error) {
	f.calls++
	return f.adminUsersFn(ctx)
}

func (f *fakeClient) AdminDeleteUser(ctx context.Context, id string) error {
	f.calls++
	return f.adminDeleteFn(ctx, id)
}

func (f *fakeClient) AdminOrders(ctx context.Context) ([]models.Order, error) {
	f.calls++
	return f.adminOrdersFn(ctx)
}

func (f *fakeClient) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	f.calls++
	return f.createProductFn(ctx, input)
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id string) error {
	f.calls++
	return f.deleteProductFn(ctx, id)
}

func (f *fakeClient) DeleteReview(ctx context.Context, productID, reviewID string) error {
	f.calls++
	return f.deleteReviewFn(ctx, productID, reviewID)
}
