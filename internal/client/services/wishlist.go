package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/entitlement"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Wishlist mirrors the server-side wishlist the same way Cart mirrors the
// cart. Removal operates on the wishlist collection itself.
type Wishlist struct {
	client  api.Client
	session sessionView
	log     logging.Logger

	opMu sync.Mutex

	mu      sync.Mutex
	entries []models.Product
	version uint64
}

func NewWishlist(client api.Client, session sessionView, log logging.Logger) *Wishlist {
	return &Wishlist{client: client, session: session, log: log.With("component", "wishlist")}
}

// Load replaces the mirror wholesale. Without a credential it
// short-circuits with api.ErrAuthRequired before any network I/O.
func (w *Wishlist) Load(ctx context.Context) error {
	present, _, err := w.session.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !present {
		return api.ErrAuthRequired
	}

	entries, err := w.client.Wishlist(ctx)
	if err != nil {
		return fmt.Errorf("loading wishlist: %w", err)
	}

	w.mu.Lock()
	w.entries = entries
	w.version++
	w.mu.Unlock()

	w.log.Info(ctx, "wishlist loaded", "entries", len(entries))
	return nil
}

// Entries returns a copy of the mirrored products.
func (w *Wishlist) Entries() []models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.Product, len(w.entries))
	copy(out, w.entries)
	return out
}

// Add puts product on the wishlist. The server reports duplicates;
// api.ErrAlreadyInWishlist is passed through and the mirror keeps at most
// one entry per product.
func (w *Wishlist) Add(ctx context.Context, product models.Product) error {
	if err := checkGate(ctx, w.session, entitlement.ActionAddToWishlist); err != nil {
		return err
	}

	w.opMu.Lock()
	defer w.opMu.Unlock()

	startVersion := w.currentVersion()

	if err := w.client.AddWishlistItem(ctx, product.ID); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.version != startVersion {
		return nil
	}
	for _, entry := range w.entries {
		if entry.ID == product.ID {
			return nil
		}
	}
	w.entries = append(w.entries, product)
	return nil
}

// Remove deletes a wishlist entry by product ID. An identifier the mirror
// does not contain is a no-op.
func (w *Wishlist) Remove(ctx context.Context, productID string) error {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	startVersion := w.currentVersion()

	if err := w.client.RemoveWishlistItem(ctx, productID); err != nil {
		return fmt.Errorf("removing from wishlist: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.version != startVersion {
		return nil
	}
	kept := w.entries[:0]
	for _, entry := range w.entries {
		if entry.ID != productID {
			kept = append(kept, entry)
		}
	}
	w.entries = kept
	return nil
}

// MoveToCart adds a wishlisted product to the cart at quantity 1. The
// wishlist entry stays; the user removes it separately if they want to.
func (w *Wishlist) MoveToCart(ctx context.Context, productID string, cart *Cart) error {
	w.mu.Lock()
	var product *models.Product
	for i := range w.entries {
		if w.entries[i].ID == productID {
			p := w.entries[i]
			product = &p
			break
		}
	}
	w.mu.Unlock()

	if product == nil {
		return fmt.Errorf("product %s is not on the wishlist", productID)
	}
	return cart.Add(ctx, *product)
}

func (w *Wishlist) currentVersion() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.version
}
