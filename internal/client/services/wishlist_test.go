package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func TestWishlist_LoadRequiresCredential(t *testing.T) {
	client := &fakeClient{}
	wl := NewWishlist(client, &fakeSession{present: false}, nopLogger())

	err := wl.Load(context.Background())
	require.ErrorIs(t, err, api.ErrAuthRequired)
	assert.Equal(t, 0, client.calls)
}

func TestWishlist_AddDeniedWithoutLogin(t *testing.T) {
	client := &fakeClient{}
	wl := NewWishlist(client, &fakeSession{present: false}, nopLogger())

	err := wl.Add(context.Background(), testProduct("p1", 100))

	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "You have to log in to add products to the wishlist!", denied.Reason)
	assert.Equal(t, 0, client.calls)
}

func TestWishlist_AddKeepsSingleEntry(t *testing.T) {
	client := &fakeClient{
		addWishlistFn: func(ctx context.Context, productID string) error { return nil },
	}
	wl := NewWishlist(client, loggedInSession(), nopLogger())

	require.NoError(t, wl.Add(context.Background(), testProduct("p1", 100)))
	require.NoError(t, wl.Add(context.Background(), testProduct("p1", 100)))

	assert.Len(t, wl.Entries(), 1)
}

func TestWishlist_AddDuplicatePassesThrough(t *testing.T) {
	client := &fakeClient{
		addWishlistFn: func(ctx context.Context, productID string) error {
			return api.ErrAlreadyInWishlist
		},
	}
	wl := NewWishlist(client, loggedInSession(), nopLogger())

	err := wl.Add(context.Background(), testProduct("p1", 100))
	require.ErrorIs(t, err, api.ErrAlreadyInWishlist)
	assert.Empty(t, wl.Entries())
}

func TestWishlist_RemoveUnknownIsNoop(t *testing.T) {
	client := &fakeClient{
		addWishlistFn:    func(ctx context.Context, productID string) error { return nil },
		removeWishlistFn: func(ctx context.Context, productID string) error { return nil },
	}
	wl := NewWishlist(client, loggedInSession(), nopLogger())
	require.NoError(t, wl.Add(context.Background(), testProduct("p1", 100)))

	require.NoError(t, wl.Remove(context.Background(), "missing"))
	assert.Len(t, wl.Entries(), 1)

	require.NoError(t, wl.Remove(context.Background(), "p1"))
	assert.Empty(t, wl.Entries())
}

func TestWishlist_MoveToCart(t *testing.T) {
	var addedID string
	var addedQty int
	client := &fakeClient{
		addWishlistFn: func(ctx context.Context, productID string) error { return nil },
		addCartFn: func(ctx context.Context, productID string, quantity int) error {
			addedID, addedQty = productID, quantity
			return nil
		},
	}
	session := loggedInSession()
	wl := NewWishlist(client, session, nopLogger())
	cart := NewCart(client, session, nopLogger())
	require.NoError(t, wl.Add(context.Background(), testProduct("p1", 100)))

	require.NoError(t, wl.MoveToCart(context.Background(), "p1", cart))

	assert.Equal(t, "p1", addedID)
	assert.Equal(t, 1, addedQty)
	assert.Len(t, cart.Lines(), 1)
	assert.Len(t, wl.Entries(), 1, "wishlist entry stays until removed explicitly")
}

func TestWishlist_MoveToCartUnknownProduct(t *testing.T) {
	wl := NewWishlist(&fakeClient{}, loggedInSession(), nopLogger())
	cart := NewCart(&fakeClient{}, loggedInSession(), nopLogger())

	err := wl.MoveToCart(context.Background(), "missing", cart)
	require.Error(t, err)
}

func TestWishlist_LoadReplacesMirror(t *testing.T) {
	client := &fakeClient{
		wishlistFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{testProduct("p1", 100), testProduct("p2", 50)}, nil
		},
	}
	wl := NewWishlist(client, loggedInSession(), nopLogger())

	require.NoError(t, wl.Load(context.Background()))
	assert.Len(t, wl.Entries(), 2)
}
