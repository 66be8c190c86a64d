package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Profile refreshes and prints the current user's profile, including the
// cart and wishlist counters the server maintains.
func (a *App) Profile(ctx context.Context) error {
	if err := a.session.FetchIdentity(ctx); err != nil {
		a.log.Warn(ctx, "profile refresh failed, showing cached snapshot", "error", err)
	}

	identity := a.session.Identity()
	if identity == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("Name:     %s", identity.Name))
	printlnFn(fmt.Sprintf("Email:    %s", identity.Email))
	printlnFn(fmt.Sprintf("Phone:    %s", identity.Phone))
	printlnFn(fmt.Sprintf("Role:     %s", identity.Role))
	printlnFn(fmt.Sprintf("Cart:     %d item(s)", identity.CartQuantity))
	printlnFn(fmt.Sprintf("Wishlist: %d item(s)", identity.WishlistQuantity))
	if identity.ProfileImage != "" {
		printlnFn(fmt.Sprintf("Image:    %s", identity.ProfileImage))
	}
	return nil
}

// UpdateProfileImage uploads a local image file as the new profile picture.
func (a *App) UpdateProfileImage(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := a.session.UpdateProfileImage(ctx, filepath.Base(path), f); err != nil {
		return err
	}
	printlnFn("Profile image updated.")
	return nil
}
