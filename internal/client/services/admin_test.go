package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func TestAdmin_DeniedForRegularUser(t *testing.T) {
	client := &fakeClient{}
	admin := NewAdmin(client, loggedInSession(), nopLogger())

	_, err := admin.Users(context.Background())

	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "You need administrator access for this page.", denied.Reason)
	assert.Equal(t, 0, client.calls)
}

func TestAdmin_DeniedWithoutLogin(t *testing.T) {
	client := &fakeClient{}
	admin := NewAdmin(client, &fakeSession{present: false}, nopLogger())

	err := admin.DeleteProduct(context.Background(), "p1")

	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, 0, client.calls)
}

func TestAdmin_UsersForAdmin(t *testing.T) {
	client := &fakeClient{
		adminUsersFn: func(ctx context.Context) ([]models.AccountSummary, error) {
			return []models.AccountSummary{{ID: "u1", Name: "Alice", Role: models.RoleUser}}, nil
		},
	}
	admin := NewAdmin(client, adminSession(), nopLogger())

	users, err := admin.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestAdmin_DeleteUser(t *testing.T) {
	var deleted string
	client := &fakeClient{
		adminDeleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	admin := NewAdmin(client, adminSession(), nopLogger())

	require.NoError(t, admin.DeleteUser(context.Background(), "u2"))
	assert.Equal(t, "u2", deleted)
}

func TestAdmin_CreateProduct(t *testing.T) {
	client := &fakeClient{
		createProductFn: func(ctx context.Context, input models.ProductInput) (models.Product, error) {
			return models.Product{ID: "p1", Name: input.Name, Price: input.Price}, nil
		},
	}
	admin := NewAdmin(client, adminSession(), nopLogger())

	product, err := admin.CreateProduct(context.Background(), models.ProductInput{Name: "Gizmo", Price: 19.99})
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "Gizmo", product.Name)
}

func TestAdmin_Orders(t *testing.T) {
	client := &fakeClient{
		adminOrdersFn: func(ctx context.Context) ([]models.Order, error) {
			return []models.Order{{ID: "o1", TotalAmount: 300}}, nil
		},
	}
	admin := NewAdmin(client, adminSession(), nopLogger())

	orders, err := admin.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestAdmin_DeleteReview(t *testing.T) {
	var gotProduct, gotReview string
	client := &fakeClient{
		deleteReviewFn: func(ctx context.Context, productID, reviewID string) error {
			gotProduct, gotReview = productID, reviewID
			return nil
		},
	}
	admin := NewAdmin(client, adminSession(), nopLogger())

	require.NoError(t, admin.DeleteReview(context.Background(), "p1", "r1"))
	assert.Equal(t, "p1", gotProduct)
	assert.Equal(t, "r1", gotReview)
}
