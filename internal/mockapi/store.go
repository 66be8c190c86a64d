package mockapi

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type account struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         string
	PasswordHash []byte
	ProfileImage string
	ResetToken   string

	Cart     []cartItem
	Wishlist []string // product IDs
}

type cartItem struct {
	ID        string
	ProductID string
	Quantity  int
}

type order struct {
	models.Order
	UserID string
}

// store is the in-memory dataset behind the API. A single mutex guards
// everything; contention is irrelevant at mock scale.
type store struct {
	mu       sync.Mutex
	accounts map[string]*account
	products map[string]*models.Product
	reviews  map[string][]models.Review // by product ID
	orders   map[string]*order
}

func newStore() *store {
	return &store{
		accounts: make(map[string]*account),
		products: make(map[string]*models.Product),
		reviews:  make(map[string][]models.Review),
		orders:   make(map[string]*order),
	}
}

func (s *store) accountByLogin(login string) *account {
	for _, a := range s.accounts {
		if a.Email == login || a.Phone == login {
			return a
		}
	}
	return nil
}

func (s *store) accountByResetToken(token string) *account {
	for _, a := range s.accounts {
		if a.ResetToken != "" && a.ResetToken == token {
			return a
		}
	}
	return nil
}

// SeedUser creates an account with a bcrypt-hashed password and returns
// its ID.
func (s *Server) SeedUser(name, email, phone, password, role string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	a := &account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: hash,
	}
	s.store.accounts[a.ID] = a
	return a.ID, nil
}

// SeedProduct adds a product to the catalog, assigning an ID when the
// given one is empty.
func (s *Server) SeedProduct(p models.Product) string {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.store.products[p.ID] = &p
	return p.ID
}

// ResetTokenFor exposes the pending password-reset token for an email.
// In the real service the token travels by email; here the caller reads
// it directly.
func (s *Server) ResetTokenFor(email string) string {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if a := s.store.accountByLogin(email); a != nil {
		return a.ResetToken
	}
	return ""
}
