package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// ListProducts prints the catalog. Available to everyone.
func (a *App) ListProducts(ctx context.Context) error {
	products, err := a.catalog.Products(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		printlnFn("No products available.")
		return nil
	}
	for _, p := range products {
		printlnFn(fmt.Sprintf("%s  %-30s  %8.2f  (stock %d, rating %.1f)", p.ID, p.Name, p.Price, p.Stock, p.Ratings))
	}
	return nil
}

// ShowProduct prints a single product with its reviews. A failing reviews
// endpoint does not hide the product.
func (a *App) ShowProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}

	product, err := a.catalog.Product(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%s (%s)", product.Name, product.Category))
	printlnFn(fmt.Sprintf("Price: %.2f  Stock: %d  Rating: %.1f", product.Price, product.Stock, product.Ratings))
	if product.Description != "" {
		printlnFn(product.Description)
	}

	reviews := a.catalog.Reviews(ctx, id)
	if len(reviews) == 0 {
		printlnFn("No reviews yet.")
		return nil
	}
	for _, r := range reviews {
		printlnFn(fmt.Sprintf("  [%.0f/5] %s: %s", r.Rating, r.Name, r.Comment))
	}
	return nil
}

// SubmitReview prompts for a rating and comment and posts the review.
func (a *App) SubmitReview(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product ID", os.Stdout)
	if err != nil {
		return err
	}
	ratingText, err := getSimpleText(a.reader, "Enter rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil {
		return fmt.Errorf("rating must be a number: %w", err)
	}
	comment, err := GetMultiline(a.reader, "Enter your review:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.catalog.SubmitReview(ctx, id, rating, comment); err != nil {
		return err
	}
	printlnFn("Review submitted.")
	return nil
}
