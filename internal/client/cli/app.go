package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session store, the API client, and the application services
// behind the interactive REPL.
type App struct {
	config   *config.Config
	store    *session.Store
	session  *session.Manager
	cart     *services.Cart
	wishlist *services.Wishlist
	checkout *services.Checkout
	catalog  *services.Catalog
	admin    *services.Admin
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := session.Open(ctx, c.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	client := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)
	manager := session.NewManager(client, store, log)
	cart := services.NewCart(client, manager, log)

	app := &App{
		config:   c,
		store:    store,
		session:  manager,
		cart:     cart,
		wishlist: services.NewWishlist(client, manager, log),
		catalog:  services.NewCatalog(client, manager, log),
		admin:    services.NewAdmin(client, manager, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
	app.checkout = services.NewCheckout(client, manager, cart, log, app.openDownload)
	return app, nil
}

// openDownload is the navigation hook invoked when a confirmed order's
// product carries a download link.
func (a *App) openDownload(url string) {
	printlnFn("Your download is ready:", url)
}

// Run hydrates the persisted session and enters the REPL, blocking until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if err := a.session.Hydrate(ctx); err != nil {
		printlnFn("Could not refresh your profile:", err.Error())
	}
	if a.isLoggedIn() {
		if err := a.cart.Load(ctx); err != nil {
			a.log.Warn(ctx, "initial cart load failed", "error", err)
		}
		if err := a.wishlist.Load(ctx); err != nil {
			a.log.Warn(ctx, "initial wishlist load failed", "error", err)
		}
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

func (a *App) isAdmin() bool {
	return a.session.Identity().IsAdmin()
}
