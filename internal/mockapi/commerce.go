package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func (s *Server) cartEnvelope(a *account) map[string]any {
	items := make([]map[string]any, 0, len(a.Cart))
	for _, item := range a.Cart {
		p := s.store.products[item.ProductID]
		if p == nil {
			continue
		}
		items = append(items, map[string]any{
			"_id":      item.ID,
			"product":  p,
			"quantity": item.Quantity,
		})
	}
	return map[string]any{"cart": map[string]any{"items": items}}
}

func (s *Server) wishlistEnvelope(a *account) map[string]any {
	products := make([]models.Product, 0, len(a.Wishlist))
	for _, id := range a.Wishlist {
		if p := s.store.products[id]; p != nil {
			products = append(products, *p)
		}
	}
	return map[string]any{"data": map[string]any{"products": products}}
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	env := s.cartEnvelope(accountFrom(r))
	s.store.mu.Unlock()
	respondJSON(w, http.StatusOK, env)
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	productID := pathParam(r, "productId")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	a := accountFrom(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.store.products[productID] == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	// adding an already-carted product increments its quantity
	for i := range a.Cart {
		if a.Cart[i].ProductID == productID {
			a.Cart[i].Quantity += req.Quantity
			respondJSON(w, http.StatusOK, s.cartEnvelope(a))
			return
		}
	}
	a.Cart = append(a.Cart, cartItem{ID: uuid.NewString(), ProductID: productID, Quantity: req.Quantity})

	respondJSON(w, http.StatusOK, s.cartEnvelope(a))
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	a := accountFrom(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range a.Cart {
		if a.Cart[i].ProductID == req.ProductID {
			a.Cart[i].Quantity = req.Quantity
			respondJSON(w, http.StatusOK, s.cartEnvelope(a))
			return
		}
	}
	respondError(w, http.StatusNotFound, "product not in cart")
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	productID := pathParam(r, "productId")
	a := accountFrom(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	kept := a.Cart[:0]
	for _, item := range a.Cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	a.Cart = kept

	respondJSON(w, http.StatusOK, s.cartEnvelope(a))
}

func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	env := s.wishlistEnvelope(accountFrom(r))
	s.store.mu.Unlock()
	respondJSON(w, http.StatusOK, env)
}

func (s *Server) handleWishlistAdd(w http.ResponseWriter, r *http.Request) {
	productID := pathParam(r, "productId")
	a := accountFrom(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.store.products[productID] == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	for _, id := range a.Wishlist {
		if id == productID {
			respondError(w, http.StatusBadRequest, "product already in watchlist")
			return
		}
	}
	a.Wishlist = append(a.Wishlist, productID)

	respondJSON(w, http.StatusOK, s.wishlistEnvelope(a))
}

func (s *Server) handleWishlistRemove(w http.ResponseWriter, r *http.Request) {
	productID := pathParam(r, "productId")
	a := accountFrom(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	kept := a.Wishlist[:0]
	for _, id := range a.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	a.Wishlist = kept

	respondJSON(w, http.StatusOK, s.wishlistEnvelope(a))
}

func (s *Server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []struct {
			Product  string `json:"product"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentInfo     models.PaymentInfo     `json:"paymentInfo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "order has no items")
		return
	}
	addr := req.ShippingAddress
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.PinCode == "" || addr.Phone == "" {
		respondError(w, http.StatusBadRequest, "incomplete shipping address")
		return
	}
	if req.PaymentInfo.Status != "success" {
		respondError(w, http.StatusBadRequest, "payment was not acknowledged")
		return
	}

	a := accountFrom(r)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	o := &order{UserID: a.ID}
	o.Order.ID = uuid.NewString()
	o.Order.Status = "processing"
	o.Order.PaidAt = time.Now().UTC()

	total := 0.0
	for _, item := range req.Items {
		p := s.store.products[item.Product]
		if p == nil {
			respondError(w, http.StatusBadRequest, "unknown product in order")
			return
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += p.Price * float64(qty)
		o.Order.Items = append(o.Order.Items, models.OrderItem{Product: *p, Quantity: qty})
	}
	o.Order.TotalAmount = total

	s.store.orders[o.Order.ID] = o

	// a successful order empties the server-side cart
	a.Cart = nil

	respondJSON(w, http.StatusCreated, map[string]any{"order": o.Order})
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	a := accountFrom(r)

	s.store.mu.Lock()
	o := s.store.orders[id]
	s.store.mu.Unlock()

	if o == nil || (o.UserID != a.ID && a.Role != "admin") {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"order": o.Order})
}
