package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// AdminUsers lists every registered account.
func (a *App) AdminUsers(ctx context.Context) error {
	users, err := a.admin.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%s  %-20s  %-30s  %s", u.ID, u.Name, u.Email, u.Role))
	}
	return nil
}

// AdminShowUser prints one account together with its cart and wishlist.
func (a *App) AdminShowUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user ID", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.admin.User(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s phone=%s", user.Name, user.Email, user.Role, user.Phone))

	cart, err := a.admin.UserCart(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Cart: %d line(s)", len(cart)))
	for _, line := range cart {
		printlnFn(fmt.Sprintf("  %-30s x %d", line.Product.Name, line.Quantity))
	}

	wishlist, err := a.admin.UserWishlist(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Wishlist: %d product(s)", len(wishlist)))
	for _, p := range wishlist {
		printlnFn("  " + p.Name)
	}
	return nil
}

// AdminDeleteUser removes an account.
func (a *App) AdminDeleteUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.admin.DeleteUser(ctx, id); err != nil {
		return err
	}
	printlnFn("User deleted.")
	return nil
}

// AdminOrders lists every order in the system.
func (a *App) AdminOrders(ctx context.Context) error {
	orders, err := a.admin.Orders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("%s  %-12s  %8.2f  %s", o.ID, o.Status, o.TotalAmount, o.PaidAt.Format("2006-01-02")))
	}
	return nil
}

// AdminAddProduct prompts for product fields and creates the product.
func (a *App) AdminAddProduct(ctx context.Context) error {
	var input models.ProductInput
	var err error

	if input.Name, err = getSimpleText(a.reader, "Enter name", os.Stdout); err != nil {
		return err
	}
	if input.Description, err = getSimpleText(a.reader, "Enter description", os.Stdout); err != nil {
		return err
	}
	if input.Category, err = getSimpleText(a.reader, "Enter category", os.Stdout); err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return err
	}
	if input.Price, err = strconv.ParseFloat(priceText, 64); err != nil {
		return fmt.Errorf("price must be a number: %w", err)
	}
	stockText, err := getSimpleText(a.reader, "Enter stock", os.Stdout)
	if err != nil {
		return err
	}
	if input.Stock, err = strconv.Atoi(stockText); err != nil {
		return fmt.Errorf("stock must be a number: %w", err)
	}
	if input.DownloadURL, err = getSimpleText(a.reader, "Enter download URL (empty for physical goods)", os.Stdout); err != nil {
		return err
	}

	product, err := a.admin.CreateProduct(ctx, input)
	if err != nil {
		return err
	}
	printlnFn("Product created:", product.ID)
	return nil
}

// AdminDeleteProduct removes a product from the catalog.
func (a *App) AdminDeleteProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.admin.DeleteProduct(ctx, id); err != nil {
		return err
	}
	printlnFn("Product deleted.")
	return nil
}

// AdminDeleteReview removes a single review from a product.
func (a *App) AdminDeleteReview(ctx context.Context) error {
	productID, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	reviewID, err := getSimpleText(a.reader, "Enter review ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.admin.DeleteReview(ctx, productID, reviewID); err != nil {
		return err
	}
	printlnFn("Review deleted.")
	return nil
}
