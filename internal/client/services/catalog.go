package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/entitlement"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// ErrInvalidRating is returned before any network call for ratings
// outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Catalog is the browsing surface. Listings and detail pages are public;
// only review submission is gated.
type Catalog struct {
	client  api.Client
	session sessionView
	log     logging.Logger
}

func NewCatalog(client api.Client, session sessionView, log logging.Logger) *Catalog {
	return &Catalog{client: client, session: session, log: log.With("component", "catalog")}
}

func (c *Catalog) Products(ctx context.Context) ([]models.Product, error) {
	return c.client.Products(ctx)
}

func (c *Catalog) Product(ctx context.Context, id string) (models.Product, error) {
	return c.client.Product(ctx, id)
}

// Reviews degrades to an empty list when the reviews endpoint fails: a
// product page without reviews still renders.
func (c *Catalog) Reviews(ctx context.Context, productID string) []models.Review {
	reviews, err := c.client.Reviews(ctx, productID)
	if err != nil {
		c.log.Warn(ctx, "reviews unavailable", "product_id", productID, "error", err)
		return nil
	}
	return reviews
}

// SubmitReview posts a review for a product. Gated; rating must be 1..5.
func (c *Catalog) SubmitReview(ctx context.Context, productID string, rating int, comment string) error {
	if err := checkGate(ctx, c.session, entitlement.ActionSubmitReview); err != nil {
		return err
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if err := c.client.SubmitReview(ctx, productID, rating, comment); err != nil {
		return fmt.Errorf("submitting review: %w", err)
	}
	return nil
}
