package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/entitlement"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

var (
	// ErrEmptyCart means there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingAddressFields is returned before any network call when a
	// required shipping field is blank.
	ErrMissingAddressFields = errors.New("please fill in all the shipping fields")
)

// DefaultRedirectDelay is how long after a confirmed order the client
// waits before following a digital product's download link.
const DefaultRedirectDelay = 2 * time.Second

// Confirmation is what survives of an order draft after submission: just
// enough to render the summary, plus the download link if the first line
// carried one.
type Confirmation struct {
	Order       models.Order
	Subtotal    float64
	DownloadURL string
}

// Checkout is the single-shot purchase flow: validate the shipping form,
// assemble an order draft from the current cart mirror, submit it with the
// mock payment acknowledgment, and on success clear the mirror and
// schedule the download redirect.
type Checkout struct {
	client  api.Client
	session sessionView
	cart    *Cart
	log     logging.Logger

	redirectDelay time.Duration
	redirect      func(url string)
}

// NewCheckout wires the orchestrator. redirect is invoked (at most once,
// after redirectDelay) with the first cart line's download URL; pass the
// UI's navigation hook.
func NewCheckout(client api.Client, session sessionView, cart *Cart, log logging.Logger, redirect func(url string)) *Checkout {
	return &Checkout{
		client:        client,
		session:       session,
		cart:          cart,
		log:           log.With("component", "checkout"),
		redirectDelay: DefaultRedirectDelay,
		redirect:      redirect,
	}
}

// ValidateAddress checks that every shipping field is present. Presence
// only; formats are the server's concern.
func (c *Checkout) ValidateAddress(addr models.ShippingAddress) error {
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.PinCode == "" || addr.Phone == "" {
		return ErrMissingAddressFields
	}
	return nil
}

// Draft assembles an order request from the cart mirror as it stands right
// now. The draft is ephemeral; it exists only for this submission.
func (c *Checkout) Draft(addr models.ShippingAddress) (models.OrderDraft, error) {
	lines := c.cart.Lines()
	if len(lines) == 0 {
		return models.OrderDraft{}, ErrEmptyCart
	}

	items := make([]models.OrderLine, 0, len(lines))
	subtotal := 0.0
	for _, line := range lines {
		items = append(items, models.OrderLine{Product: line.Product.ID, Quantity: line.Quantity})
		subtotal += line.Product.Price * float64(line.Quantity)
	}

	return models.OrderDraft{
		Items:           items,
		ShippingAddress: addr,
		PaymentInfo:     models.MockPayment,
		Subtotal:        subtotal,
	}, nil
}

// Submit runs the whole flow. On success the cart mirror is cleared and,
// if the first line's product exposes a download link, the redirect is
// scheduled; cancelling ctx before the delay elapses cancels the pending
// redirect.
func (c *Checkout) Submit(ctx context.Context, addr models.ShippingAddress) (*Confirmation, error) {
	if err := checkGate(ctx, c.session, entitlement.ActionPlaceOrder); err != nil {
		return nil, err
	}
	if err := c.ValidateAddress(addr); err != nil {
		return nil, err
	}

	draft, err := c.Draft(addr)
	if err != nil {
		return nil, err
	}

	downloadURL := ""
	if lines := c.cart.Lines(); len(lines) > 0 {
		downloadURL = lines[0].Product.DownloadURL
	}

	order, err := c.client.CreateOrder(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("placing order: %w", err)
	}

	c.cart.ClearLocal()
	c.log.Info(ctx, "order placed", "order_id", order.ID, "total", order.TotalAmount)

	if downloadURL != "" && c.redirect != nil {
		c.scheduleRedirect(ctx, downloadURL)
	}

	return &Confirmation{Order: order, Subtotal: draft.Subtotal, DownloadURL: downloadURL}, nil
}

// Order looks up a previously placed order by ID.
func (c *Checkout) Order(ctx context.Context, id string) (models.Order, error) {
	order, err := c.client.Order(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("fetching order: %w", err)
	}
	return order, nil
}

// scheduleRedirect fires the redirect once after the configured delay,
// unless ctx is cancelled first.
func (c *Checkout) scheduleRedirect(ctx context.Context, url string) {
	timer := time.NewTimer(c.redirectDelay)
	go func() {
		defer timer.Stop()
		select {
		case <-timer.C:
			c.redirect(url)
		case <-ctx.Done():
			c.log.Info(ctx, "pending download redirect cancelled", "url", url)
		}
	}()
}
