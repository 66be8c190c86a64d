package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func TestCheckDeniesWithoutCredential(t *testing.T) {
	actions := []Action{
		ActionAddToCart,
		ActionAddToWishlist,
		ActionSubmitReview,
		ActionPlaceOrder,
		ActionViewAdmin,
	}

	for _, action := range actions {
		t.Run(string(action), func(t *testing.T) {
			d := Check(action, false, nil)
			assert.False(t, d.Allowed)
			assert.NotEmpty(t, d.Reason, "deny must carry a human-readable prompt")
		})
	}
}

func TestCheckAllowsCommerceActionsWithCredential(t *testing.T) {
	identity := &models.Identity{Role: models.RoleUser}

	for _, action := range []Action{ActionAddToCart, ActionAddToWishlist, ActionSubmitReview, ActionPlaceOrder} {
		t.Run(string(action), func(t *testing.T) {
			d := Check(action, true, identity)
			assert.True(t, d.Allowed)
			assert.Empty(t, d.Reason)
		})
	}
}

func TestCheckViewAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity *models.Identity
		want     bool
	}{
		{name: "admin role", identity: &models.Identity{Role: models.RoleAdmin}, want: true},
		{name: "user role", identity: &models.Identity{Role: models.RoleUser}, want: false},
		{name: "nil identity", identity: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Check(ActionViewAdmin, true, tt.identity)
			assert.Equal(t, tt.want, d.Allowed)
		})
	}
}
