// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local session store, the HTTP API client, and
// an interactive REPL. Typical flow: hydrate the persisted session, then
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout, password recovery
//   - Browse the catalog, read and submit reviews
//   - Cart and wishlist management with a responsive local mirror
//   - Checkout with a shipping form and download redirect
//   - Admin back office for users, orders, and products
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
