package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	products := make([]models.Product, 0, len(s.store.products))
	for _, p := range s.store.products {
		products = append(products, *p)
	}
	s.store.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	s.store.mu.Lock()
	p := s.store.products[id]
	s.store.mu.Unlock()

	if p == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"product": p})
}

func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	s.store.mu.Lock()
	reviews := append([]models.Review(nil), s.store.reviews[id]...)
	s.store.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	var req struct {
		Rating  float64 `json:"rating"`
		Comment string  `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	a := accountFrom(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.store.products[id] == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	s.store.reviews[id] = append(s.store.reviews[id], models.Review{
		ID:      uuid.NewString(),
		Name:    a.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "review recorded"})
}

func (s *Server) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if input.Name == "" || input.Price <= 0 {
		respondError(w, http.StatusBadRequest, "name and a positive price are required")
		return
	}

	p := models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		DownloadURL: input.DownloadURL,
	}

	s.store.mu.Lock()
	s.store.products[p.ID] = &p
	s.store.mu.Unlock()

	respondJSON(w, http.StatusCreated, map[string]any{"product": p})
}

func (s *Server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.store.products[id] == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	delete(s.store.products, id)
	delete(s.store.reviews, id)

	respondJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	productID := pathParam(r, "id")
	reviewID := pathParam(r, "reviewId")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	reviews := s.store.reviews[productID]
	kept := reviews[:0]
	found := false
	for _, rv := range reviews {
		if rv.ID == reviewID {
			found = true
			continue
		}
		kept = append(kept, rv)
	}
	if !found {
		respondError(w, http.StatusNotFound, "review not found")
		return
	}
	s.store.reviews[productID] = kept

	respondJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
