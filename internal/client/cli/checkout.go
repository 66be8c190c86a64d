package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Checkout prompts for the shipping form and places the order. On success
// the server empties the cart; the local mirror is cleared to match.
func (a *App) Checkout(ctx context.Context) error {
	items, subtotal := a.cart.Totals()
	if items == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}
	printlnFn(fmt.Sprintf("Ordering %d item(s), total %.2f", items, subtotal))

	var addr models.ShippingAddress
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Street", &addr.Street},
		{"City", &addr.City},
		{"State", &addr.State},
		{"PIN code", &addr.PinCode},
		{"Phone", &addr.Phone},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	conf, err := a.checkout.Submit(ctx, addr)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Order %s confirmed, paid %.2f", conf.Order.ID, conf.Order.TotalAmount))
	if conf.DownloadURL != "" {
		printlnFn("Preparing your download...")
	}
	return nil
}

// ShowOrder prints a single order by ID.
func (a *App) ShowOrder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter order ID", os.Stdout)
	if err != nil {
		return err
	}

	order, err := a.checkout.Order(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Order %s  status: %s  total: %.2f", order.ID, order.Status, order.TotalAmount))
	for _, item := range order.Items {
		printlnFn(fmt.Sprintf("  %-30s x %d", item.Product.Name, item.Quantity))
	}
	return nil
}
