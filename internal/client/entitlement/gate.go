// Package entitlement is the single decision point consulted before any
// state-mutating commerce action. It is pure: no I/O, no internal state.
package entitlement

import "github.com/dmitrijs2005/storefront/internal/client/models"

// Action tags a gated operation.
type Action string

const (
	ActionAddToCart     Action = "add_to_cart"
	ActionAddToWishlist Action = "add_to_wishlist"
	ActionSubmitReview  Action = "submit_review"
	ActionPlaceOrder    Action = "place_order"
	ActionViewAdmin     Action = "view_admin"
)

// Decision is the gate's verdict. Reason is human-readable and only set on
// deny; callers must surface it and must not issue the underlying network
// call.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Check decides whether action may proceed. Every commerce action requires
// a present credential; ActionViewAdmin additionally requires the admin
// role on the identity snapshot.
func Check(action Action, credentialPresent bool, identity *models.Identity) Decision {
	if !credentialPresent {
		return deny(loginPrompt(action))
	}
	if action == ActionViewAdmin && !identity.IsAdmin() {
		return deny("You need administrator access for this page.")
	}
	return allow()
}

func loginPrompt(action Action) string {
	switch action {
	case ActionAddToCart:
		return "You have to log in to add products to the cart!"
	case ActionAddToWishlist:
		return "You have to log in to add products to the wishlist!"
	case ActionSubmitReview:
		return "You need to log in to submit a review."
	case ActionPlaceOrder:
		return "You need to log in to place an order."
	default:
		return "You need to log in first."
	}
}
