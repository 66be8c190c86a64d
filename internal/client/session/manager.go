package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"unicode"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// State is the authentication state of the client.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

var (
	// ErrInvalidPhone is returned by Signup before any network call.
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")

	// ErrPasswordMismatch is returned by ConfirmPasswordReset before any
	// network call.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Manager drives the session state machine:
//
//	Anonymous -> Authenticating -> Authenticated, and back to Anonymous
//	on logout.
//
// Signup does not authenticate; login and signup are distinct steps.
type Manager struct {
	client api.Client
	store  *Store
	log    logging.Logger

	mu       sync.Mutex
	state    State
	identity *models.Identity
}

func NewManager(client api.Client, store *Store, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		log:    log.With("component", "session"),
		state:  StateAnonymous,
	}
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Identity returns a copy of the current identity snapshot, or nil when
// anonymous.
func (m *Manager) Identity() *models.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return nil
	}
	cp := *m.identity
	return &cp
}

// Snapshot returns the entitlement inputs: whether a credential is present
// and the current identity.
func (m *Manager) Snapshot(ctx context.Context) (bool, *models.Identity, error) {
	token, err := m.store.Credential(ctx)
	if err != nil {
		return false, nil, err
	}
	return token != "", m.Identity(), nil
}

// Hydrate restores the session after startup: if a credential survives in
// the store, the manager becomes Authenticated with the cached identity and
// refreshes it from the profile endpoint. A failed refresh leaves the stale
// snapshot in place and is returned so the UI can offer a retry.
func (m *Manager) Hydrate(ctx context.Context) error {
	token, err := m.store.Credential(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	cached, err := m.store.Identity(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.identity = cached
	m.mu.Unlock()

	if err := m.FetchIdentity(ctx); err != nil {
		m.log.Warn(ctx, "identity refresh failed, using cached snapshot", "error", err)
		return err
	}
	return nil
}

// Signup registers a new account. The phone number must be exactly 10
// digits; validation runs client-side before the call. On success the user
// still has to log in.
func (m *Manager) Signup(ctx context.Context, name, email, password, phone string) error {
	if !validPhone(phone) {
		return ErrInvalidPhone
	}
	input := api.RegisterInput{Name: name, Email: email, Password: password, Phone: phone}
	if err := m.client.Register(ctx, input); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	m.log.Info(ctx, "account registered", "email", email)
	return nil
}

// Login authenticates with an email or phone identifier. On success the
// credential and role are persisted, the identity is seeded from the login
// response, and the full profile is fetched immediately. A failed profile
// fetch keeps the seeded snapshot and does not fail the login.
func (m *Manager) Login(ctx context.Context, identifier, password string) error {
	m.mu.Lock()
	m.state = StateAuthenticating
	m.mu.Unlock()

	token, identity, err := m.client.Login(ctx, identifier, password)
	if err != nil {
		m.mu.Lock()
		m.state = StateAnonymous
		m.mu.Unlock()
		return fmt.Errorf("login: %w", err)
	}

	if err := m.store.SetCredential(ctx, token, identity.Role); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	if err := m.store.SetIdentity(ctx, identity); err != nil {
		return fmt.Errorf("caching identity: %w", err)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.identity = &identity
	m.mu.Unlock()

	m.log.Info(ctx, "logged in", "role", identity.Role)

	if err := m.FetchIdentity(ctx); err != nil {
		m.log.Warn(ctx, "profile fetch after login failed", "error", err)
	}
	return nil
}

// Logout is locally authoritative: the remote invalidation call is made
// best-effort, but credential and identity are cleared regardless of its
// outcome.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.client.Logout(ctx); err != nil {
		m.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	m.mu.Lock()
	m.state = StateAnonymous
	m.identity = nil
	m.mu.Unlock()

	m.log.Info(ctx, "logged out")
	return nil
}

// FetchIdentity refreshes the identity snapshot from the profile endpoint
// and caches it. Failures are returned, not swallowed.
func (m *Manager) FetchIdentity(ctx context.Context) error {
	identity, err := m.client.Profile(ctx)
	if err != nil {
		return fmt.Errorf("fetching profile: %w", err)
	}
	if err := m.store.SetIdentity(ctx, identity); err != nil {
		return fmt.Errorf("caching identity: %w", err)
	}

	m.mu.Lock()
	m.identity = &identity
	m.mu.Unlock()
	return nil
}

// RefreshCounts re-reads the profile's cart and wishlist counters.
func (m *Manager) RefreshCounts(ctx context.Context) (int, int, error) {
	if err := m.FetchIdentity(ctx); err != nil {
		return 0, 0, err
	}
	identity := m.Identity()
	return identity.CartQuantity, identity.WishlistQuantity, nil
}

// RequestPasswordReset starts the out-of-band recovery flow.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) error {
	if err := m.client.RequestPasswordReset(ctx, email); err != nil {
		return fmt.Errorf("password reset request: %w", err)
	}
	return nil
}

// ConfirmPasswordReset completes the recovery flow using the token
// delivered out of band. The two password fields must match; checked
// client-side before the call.
func (m *Manager) ConfirmPasswordReset(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if err := m.client.ConfirmPasswordReset(ctx, token, newPassword, confirmPassword); err != nil {
		return fmt.Errorf("password reset: %w", err)
	}
	return nil
}

// UpdateProfileImage uploads a new profile image and updates the cached
// identity's image reference on success.
func (m *Manager) UpdateProfileImage(ctx context.Context, filename string, r io.Reader) error {
	imageRef, err := m.client.UpdateProfileImage(ctx, filename, r)
	if err != nil {
		return fmt.Errorf("updating profile image: %w", err)
	}

	m.mu.Lock()
	if m.identity != nil {
		m.identity.ProfileImage = imageRef
	}
	identity := m.identity
	m.mu.Unlock()

	if identity != nil {
		if err := m.store.SetIdentity(ctx, *identity); err != nil {
			return fmt.Errorf("caching identity: %w", err)
		}
	}
	return nil
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
