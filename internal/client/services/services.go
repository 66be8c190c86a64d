// Package services contains the application services of the storefront
// client: the cart and wishlist local mirrors, the checkout orchestrator,
// catalog browsing, and the admin back office. Every state-mutating
// commerce action passes through the entitlement gate before any network
// call is issued.
package services

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/entitlement"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// sessionView supplies the entitlement inputs: credential presence and the
// current identity snapshot. Satisfied by *session.Manager.
type sessionView interface {
	Snapshot(ctx context.Context) (bool, *models.Identity, error)
}

// DeniedError carries the gate's human-readable reason. The underlying
// network call was never made.
type DeniedError struct {
	Action entitlement.Action
	Reason string
}

func (e *DeniedError) Error() string {
	return e.Reason
}

// checkGate consults the entitlement gate and converts a deny into a
// *DeniedError.
func checkGate(ctx context.Context, session sessionView, action entitlement.Action) error {
	present, identity, err := session.Snapshot(ctx)
	if err != nil {
		return err
	}
	if d := entitlement.Check(action, present, identity); !d.Allowed {
		return &DeniedError{Action: action, Reason: d.Reason}
	}
	return nil
}
