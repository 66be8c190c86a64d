package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup form and creates a new account. Signup
// does not log the user in; a separate login follows.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (10 digits)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if err := a.session.Signup(ctx, name, email, string(password), phone); err != nil {
		return err
	}

	printlnFn("Account created. Please log in.")
	return nil
}

// Login prompts for credentials and authenticates. The identifier can be
// the account's email or phone number.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or phone", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, identifier, string(password)); err != nil {
		return err
	}

	printlnFn("Logged in.")

	if err := a.cart.Load(ctx); err != nil {
		a.log.Warn(ctx, "cart load after login failed", "error", err)
	}
	if err := a.wishlist.Load(ctx); err != nil {
		a.log.Warn(ctx, "wishlist load after login failed", "error", err)
	}
	return nil
}

// Logout ends the session. The local session is cleared even when the
// remote call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.cart.ClearLocal()
	printlnFn("Logged out.")
	return nil
}

// ForgotPassword requests a password reset link for an email address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.session.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	printlnFn("If the account exists, a reset link has been sent.")
	return nil
}

// ResetPassword completes the recovery flow with the token delivered out
// of band.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	newPassword, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Confirm new password")
	if err != nil {
		return err
	}

	if err := a.session.ConfirmPasswordReset(ctx, token, string(newPassword), string(confirm)); err != nil {
		return err
	}
	printlnFn("Password updated. Please log in.")
	return nil
}
