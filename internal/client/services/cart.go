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

// Cart keeps an in-memory mirror of the server-side cart, synced well
// enough for a responsive UI without claiming strong consistency. The
// mirror follows the optimistic-after-success pattern: the mutating call
// goes out first and the mirror changes only once the server confirms, so
// a failure leaves the mirror untouched.
//
// Mutations are serialized by opMu; each full reload bumps a version, and
// a mutation that started against an older version discards its local
// update instead of overwriting fresher data.
type Cart struct {
	client  api.Client
	session sessionView
	log     logging.Logger

	opMu sync.Mutex // serializes mutating operations end to end

	mu      sync.Mutex // guards lines and version
	lines   []models.CartLine
	version uint64
}

func NewCart(client api.Client, session sessionView, log logging.Logger) *Cart {
	return &Cart{client: client, session: session, log: log.With("component", "cart")}
}

// Load replaces the mirror wholesale with the server's collection. Without
// a credential it short-circuits with api.ErrAuthRequired before any
// network I/O.
func (c *Cart) Load(ctx context.Context) error {
	present, _, err := c.session.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !present {
		return api.ErrAuthRequired
	}

	lines, err := c.client.Cart(ctx)
	if err != nil {
		return fmt.Errorf("loading cart: %w", err)
	}

	c.mu.Lock()
	c.lines = lines
	c.version++
	c.mu.Unlock()

	c.log.Info(ctx, "cart loaded", "lines", len(lines))
	return nil
}

// Lines returns a copy of the mirrored cart lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals returns the mirrored item count and subtotal. Shipping is free,
// so the subtotal equals the order total.
func (c *Cart) Totals() (int, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := 0
	subtotal := 0.0
	for _, line := range c.lines {
		items += line.Quantity
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	return items, subtotal
}

// Add puts one unit of product in the cart. If the product is already
// mirrored, the existing line's quantity is incremented instead of adding
// a second line.
func (c *Cart) Add(ctx context.Context, product models.Product) error {
	if err := checkGate(ctx, c.session, entitlement.ActionAddToCart); err != nil {
		return err
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	startVersion := c.currentVersion()

	if err := c.client.AddCartItem(ctx, product.ID, 1); err != nil {
		return fmt.Errorf("adding to cart: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version != startVersion {
		// a reload finished while the call was in flight; its data wins
		return nil
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, models.CartLine{Product: product, Quantity: 1})
	return nil
}

// SetQuantity updates a line's quantity, clamping to a minimum of 1. On
// success the mirror stores the clamped value.
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	startVersion := c.currentVersion()

	if err := c.client.UpdateCartItem(ctx, productID, quantity); err != nil {
		return fmt.Errorf("updating quantity: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version != startVersion {
		return nil
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			break
		}
	}
	return nil
}

// Remove deletes a line by product ID. An identifier the mirror does not
// contain is a no-op.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	startVersion := c.currentVersion()

	if err := c.client.RemoveCartItem(ctx, productID); err != nil {
		return fmt.Errorf("removing from cart: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version != startVersion {
		return nil
	}
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	return nil
}

// ClearLocal wipes the mirror without touching the server. Used after a
// successful checkout, where the server empties the cart itself.
func (c *Cart) ClearLocal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.version++
}

func (c *Cart) currentVersion() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}
