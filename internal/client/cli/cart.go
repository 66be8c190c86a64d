package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// ShowCart reloads the mirror from the server and prints it.
func (a *App) ShowCart(ctx context.Context) error {
	if err := a.cart.Load(ctx); err != nil {
		return err
	}

	lines := a.cart.Lines()
	if len(lines) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}
	for _, line := range lines {
		printlnFn(fmt.Sprintf("%s  %-30s  %8.2f x %d", line.Product.ID, line.Product.Name, line.Product.Price, line.Quantity))
	}
	items, subtotal := a.cart.Totals()
	printlnFn(fmt.Sprintf("Total: %d item(s), %.2f", items, subtotal))
	return nil
}

// AddToCart adds one unit of a product to the cart.
func (a *App) AddToCart(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	product, err := a.catalog.Product(ctx, id)
	if err != nil {
		return err
	}
	if err := a.cart.Add(ctx, product); err != nil {
		return err
	}
	printlnFn("Added to cart:", product.Name)
	return nil
}

// SetQuantity changes a cart line's quantity. Values below 1 are clamped.
func (a *App) SetQuantity(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	qtyText, err := getSimpleText(a.reader, "Enter quantity", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyText)
	if err != nil {
		return fmt.Errorf("quantity must be a number: %w", err)
	}

	if err := a.cart.SetQuantity(ctx, id, qty); err != nil {
		return err
	}
	printlnFn("Quantity updated.")
	return nil
}

// RemoveFromCart removes a product from the cart.
func (a *App) RemoveFromCart(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.cart.Remove(ctx, id); err != nil {
		return err
	}
	printlnFn("Removed from cart.")
	return nil
}
