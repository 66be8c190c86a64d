package services

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/entitlement"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Admin is the back-office surface. Every operation is guarded by the
// view_admin entitlement; a non-admin never reaches the network.
type Admin struct {
	client  api.Client
	session sessionView
	log     logging.Logger
}

func NewAdmin(client api.Client, session sessionView, log logging.Logger) *Admin {
	return &Admin{client: client, session: session, log: log.With("component", "admin")}
}

func (a *Admin) guard(ctx context.Context) error {
	return checkGate(ctx, a.session, entitlement.ActionViewAdmin)
}

func (a *Admin) Users(ctx context.Context) ([]models.AccountSummary, error) {
	if err := a.guard(ctx); err != nil {
		return nil, err
	}
	return a.client.AdminUsers(ctx)
}

func (a *Admin) User(ctx context.Context, id string) (models.AccountSummary, error) {
	if err := a.guard(ctx); err != nil {
		return models.AccountSummary{}, err
	}
	return a.client.AdminUser(ctx, id)
}

func (a *Admin) DeleteUser(ctx context.Context, id string) error {
	if err := a.guard(ctx); err != nil {
		return err
	}
	if err := a.client.AdminDeleteUser(ctx, id); err != nil {
		return err
	}
	a.log.Info(ctx, "user deleted", "user_id", id)
	return nil
}

func (a *Admin) UserCart(ctx context.Context, id string) ([]models.CartLine, error) {
	if err := a.guard(ctx); err != nil {
		return nil, err
	}
	return a.client.AdminUserCart(ctx, id)
}

func (a *Admin) UserWishlist(ctx context.Context, id string) ([]models.Product, error) {
	if err := a.guard(ctx); err != nil {
		return nil, err
	}
	return a.client.AdminUserWishlist(ctx, id)
}

func (a *Admin) Orders(ctx context.Context) ([]models.Order, error) {
	if err := a.guard(ctx); err != nil {
		return nil, err
	}
	return a.client.AdminOrders(ctx)
}

func (a *Admin) Order(ctx context.Context, id string) (models.Order, error) {
	if err := a.guard(ctx); err != nil {
		return models.Order{}, err
	}
	return a.client.Order(ctx, id)
}

func (a *Admin) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	if err := a.guard(ctx); err != nil {
		return models.Product{}, err
	}
	product, err := a.client.CreateProduct(ctx, input)
	if err != nil {
		return models.Product{}, err
	}
	a.log.Info(ctx, "product created", "product_id", product.ID)
	return product, nil
}

func (a *Admin) DeleteProduct(ctx context.Context, id string) error {
	if err := a.guard(ctx); err != nil {
		return err
	}
	if err := a.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	a.log.Info(ctx, "product deleted", "product_id", id)
	return nil
}

func (a *Admin) DeleteReview(ctx context.Context, productID, reviewID string) error {
	if err := a.guard(ctx); err != nil {
		return err
	}
	return a.client.DeleteReview(ctx, productID, reviewID)
}
