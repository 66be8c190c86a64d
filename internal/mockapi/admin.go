package mockapi

import (
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func summaryOf(a *account) models.AccountSummary {
	return models.AccountSummary{ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone, Role: a.Role}
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	users := make([]models.AccountSummary, 0, len(s.store.accounts))
	for _, a := range s.store.accounts {
		users = append(users, summaryOf(a))
	}
	s.store.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{"data": users})
}

func (s *Server) handleAdminUser(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	s.store.mu.Lock()
	a := s.store.accounts[id]
	s.store.mu.Unlock()

	if a == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"data": summaryOf(a)})
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.store.accounts[id] == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	delete(s.store.accounts, id)

	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

func (s *Server) handleAdminUserCart(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	a := s.store.accounts[id]
	if a == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, s.cartEnvelope(a))
}

func (s *Server) handleAdminUserWishlist(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	a := s.store.accounts[id]
	if a == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, s.wishlistEnvelope(a))
}

func (s *Server) handleAdminOrders(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	orders := make([]models.Order, 0, len(s.store.orders))
	for _, o := range s.store.orders {
		orders = append(orders, o.Order)
	}
	s.store.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
