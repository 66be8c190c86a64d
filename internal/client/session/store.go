// Package session owns the authentication state of the client: the durable
// Session Store (bearer credential, role, cached identity snapshot) and the
// Manager driving the Anonymous/Authenticating/Authenticated transitions.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/storefront/internal/client/migrations"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/statedata"
	"github.com/dmitrijs2005/storefront/internal/dbx"
)

// Statedata keys owned by the store. Nothing else writes these.
const (
	keyCredential = "credential"
	keyRole       = "role"
	keyIdentity   = "identity"
)

// Store is the Session Store: it holds the opaque bearer credential and the
// cached identity snapshot in the local state database, surviving process
// restarts. All mutations go through this type.
type Store struct {
	db   *sql.DB
	repo statedata.Repository
}

// Open opens (creating if needed) the state database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migrating state db: %w", err)
	}

	return NewStore(db), nil
}

// NewStore wraps an already-migrated database handle. Used by tests.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repo: statedata.NewSQLiteRepository(db)}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Credential returns the stored bearer token, or "" when absent.
// Satisfies api.CredentialSource.
func (s *Store) Credential(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keyCredential)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetCredential stores the bearer token and the role it was issued with,
// atomically.
func (s *Store) SetCredential(ctx context.Context, token, role string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Set(ctx, keyCredential, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRole, []byte(role))
	})
}

// Role returns the role stored alongside the credential.
func (s *Store) Role(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, keyRole)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Identity returns the cached identity snapshot, or nil when none is cached.
func (s *Store) Identity(ctx context.Context) (*models.Identity, error) {
	v, err := s.repo.Get(ctx, keyIdentity)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var identity models.Identity
	if err := json.Unmarshal(v, &identity); err != nil {
		return nil, fmt.Errorf("decoding cached identity: %w", err)
	}
	return &identity, nil
}

// SetIdentity caches the identity snapshot.
func (s *Store) SetIdentity(ctx context.Context, identity models.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encoding identity: %w", err)
	}
	return s.repo.Set(ctx, keyIdentity, data)
}

// Clear wipes credential, role, and identity in one transaction. Used on
// logout; local state is authoritative, so this must not depend on any
// remote call having succeeded.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)
		for _, key := range []string{keyCredential, keyRole, keyIdentity} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
