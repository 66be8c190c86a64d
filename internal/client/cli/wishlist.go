package cli

import (
	"context"
	"fmt"
	"os"
)

// ShowWishlist reloads the mirror from the server and prints it.
func (a *App) ShowWishlist(ctx context.Context) error {
	if err := a.wishlist.Load(ctx); err != nil {
		return err
	}

	entries := a.wishlist.Entries()
	if len(entries) == 0 {
		printlnFn("Your wishlist is empty.")
		return nil
	}
	for _, p := range entries {
		printlnFn(fmt.Sprintf("%s  %-30s  %8.2f", p.ID, p.Name, p.Price))
	}
	return nil
}

// AddToWishlist puts a product on the wishlist.
func (a *App) AddToWishlist(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	product, err := a.catalog.Product(ctx, id)
	if err != nil {
		return err
	}
	if err := a.wishlist.Add(ctx, product); err != nil {
		return err
	}
	printlnFn("Added to wishlist:", product.Name)
	return nil
}

// RemoveFromWishlist removes a product from the wishlist.
func (a *App) RemoveFromWishlist(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.wishlist.Remove(ctx, id); err != nil {
		return err
	}
	printlnFn("Removed from wishlist.")
	return nil
}

// MoveToCart adds a wishlisted product to the cart.
func (a *App) MoveToCart(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.wishlist.MoveToCart(ctx, id, a.cart); err != nil {
		return err
	}
	printlnFn("Moved to cart.")
	return nil
}
