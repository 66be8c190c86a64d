package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfileImage(ctx context.Context) error

	ListProducts(ctx context.Context) error
	ShowProduct(ctx context.Context) error
	SubmitReview(ctx context.Context) error

	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context) error
	SetQuantity(ctx context.Context) error
	RemoveFromCart(ctx context.Context) error

	ShowWishlist(ctx context.Context) error
	AddToWishlist(ctx context.Context) error
	RemoveFromWishlist(ctx context.Context) error
	MoveToCart(ctx context.Context) error

	Checkout(ctx context.Context) error
	ShowOrder(ctx context.Context) error

	AdminUsers(ctx context.Context) error
	AdminShowUser(ctx context.Context) error
	AdminDeleteUser(ctx context.Context) error
	AdminOrders(ctx context.Context) error
	AdminAddProduct(ctx context.Context) error
	AdminDeleteProduct(ctx context.Context) error
	AdminDeleteReview(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help            — show available commands
//	  - products | p    — list the catalog
//	  - product         — show a single product with reviews
//	  - exit | quit     — leave the program
//
//	Not logged in:
//	  - register        — create an account
//	  - login           — authenticate
//	  - forgot          — request a password reset link
//	  - reset           — complete a password reset with a token
//
//	Logged in:
//	  - cart | c        — show the cart
//	  - add             — add a product to the cart
//	  - qty             — change a cart line's quantity
//	  - remove          — remove a product from the cart
//	  - wishlist | w    — show the wishlist
//	  - wish            — add a product to the wishlist
//	  - unwish          — remove a product from the wishlist
//	  - move            — put a wishlisted product in the cart
//	  - review          — submit a product review
//	  - checkout        — place the order
//	  - order           — show an order by ID
//	  - profile         — show the current profile
//	  - image           — upload a new profile image
//	  - logout          — log out
//
//	Admins additionally:
//	  - users, user, deluser, orders, addproduct, delproduct, delreview
//
// Any errors returned by command handlers are printed here; this keeps the
// REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("store> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (p)roducts, product, review, (c)art, add, qty, remove, (w)ishlist, wish, unwish, move, checkout, order, profile, image, logout, exit")
				if a.isAdmin() {
					printlnFn("Admin commands: users, user, deluser, orders, addproduct, delproduct, delreview")
				}
			} else {
				printlnFn("Available commands: (p)roducts, product, register, login, forgot, reset, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "forgot":
			report(a.ForgotPassword(ctx))

		case "reset":
			report(a.ResetPassword(ctx))

		case "profile":
			report(a.Profile(ctx))

		case "image":
			report(a.UpdateProfileImage(ctx))

		case "p", "products":
			report(a.ListProducts(ctx))

		case "product":
			report(a.ShowProduct(ctx))

		case "review":
			report(a.SubmitReview(ctx))

		case "c", "cart":
			report(a.ShowCart(ctx))

		case "add":
			report(a.AddToCart(ctx))

		case "qty":
			report(a.SetQuantity(ctx))

		case "remove":
			report(a.RemoveFromCart(ctx))

		case "w", "wishlist":
			report(a.ShowWishlist(ctx))

		case "wish":
			report(a.AddToWishlist(ctx))

		case "unwish":
			report(a.RemoveFromWishlist(ctx))

		case "move":
			report(a.MoveToCart(ctx))

		case "checkout":
			report(a.Checkout(ctx))

		case "order":
			report(a.ShowOrder(ctx))

		case "users":
			report(a.AdminUsers(ctx))

		case "user":
			report(a.AdminShowUser(ctx))

		case "deluser":
			report(a.AdminDeleteUser(ctx))

		case "orders":
			report(a.AdminOrders(ctx))

		case "addproduct":
			report(a.AdminAddProduct(ctx))

		case "delproduct":
			report(a.AdminDeleteProduct(ctx))

		case "delreview":
			report(a.AdminDeleteReview(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
