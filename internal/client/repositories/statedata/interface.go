// Package statedata persists the client's durable key/value state: the
// bearer credential, the stored role, and the cached identity snapshot.
package statedata

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/dbx"
)

// Repository is the key/value store behind the session layer.
// A missing key reads as a nil value, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// WithTx returns a repository view running on the given transaction.
	WithTx(tx dbx.DBTX) Repository
}
