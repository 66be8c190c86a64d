package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/storefront/internal/logging"
)

type ctxKey string

const ctxKeyAccount ctxKey = "account"

// Server implements the storefront API over in-memory state. It is an
// http.Handler; mount it directly or behind httptest.NewServer.
type Server struct {
	router    chi.Router
	store     *store
	jwtSecret []byte
	tokenTTL  time.Duration
	log       logging.Logger
}

func NewServer(jwtSecret string, log logging.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		store:     newStore(),
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
		log:       log.With("component", "mockapi"),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// public
		r.Post("/auth/user/register", s.handleRegister)
		r.Post("/auth/user/login", s.handleLogin)
		r.Post("/auth/user/password-forgot", s.handlePasswordForgot)
		r.Put("/auth/user/password-reset/{token}", s.handlePasswordReset)
		r.Get("/product", s.handleProducts)
		r.Get("/product/reviews/{id}", s.handleReviews)
		r.Get("/product/{id}", s.handleProduct)

		// authenticated
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/user/logout", s.handleLogout)
			r.Get("/auth/user/profile", s.handleProfile)
			r.Patch("/auth/user/profile-image", s.handleProfileImage)

			r.Put("/product/reviews/{id}", s.handleSubmitReview)

			r.Get("/cart", s.handleCart)
			r.Post("/cart/{productId}", s.handleCartAdd)
			r.Put("/cart/update", s.handleCartUpdate)
			r.Delete("/cart/remove/{productId}", s.handleCartRemove)

			r.Get("/auth/user/watchlist", s.handleWishlist)
			r.Post("/auth/user/watchlist/{productId}", s.handleWishlistAdd)
			r.Delete("/auth/user/watchlist/{productId}", s.handleWishlistRemove)

			r.Post("/order/create", s.handleOrderCreate)

			// admin
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)

				r.Get("/order/admin/orders", s.handleAdminOrders)
				r.Get("/auth/admin/users", s.handleAdminUsers)
				r.Get("/auth/admin/user/{id}", s.handleAdminUser)
				r.Delete("/auth/admin/user/{id}", s.handleAdminDeleteUser)
				r.Get("/auth/admin/user/{id}/cart", s.handleAdminUserCart)
				r.Get("/auth/admin/user/{id}/watchlist", s.handleAdminUserWishlist)
				r.Post("/product/create", s.handleProductCreate)
				r.Delete("/product/{id}/review/{reviewId}", s.handleDeleteReview)
				r.Delete("/product/{id}", s.handleProductDelete)
			})

			r.Get("/order/{id}", s.handleOrder)
		})
	})
}

// mintToken issues an HS256 bearer token for the account.
func (s *Server) mintToken(a *account) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   a.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// requireAuth resolves the bearer token to an account and stores it in the
// request context. Missing or invalid credentials are a 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		claims := token.Claims.(*jwt.RegisteredClaims)

		s.store.mu.Lock()
		a := s.store.accounts[claims.Subject]
		s.store.mu.Unlock()
		if a == nil {
			respondError(w, http.StatusUnauthorized, "unknown account")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyAccount, a)))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accountFrom(r) == nil || accountFrom(r).Role != "admin" {
			respondError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accountFrom(r *http.Request) *account {
	a, _ := r.Context().Value(ctxKeyAccount).(*account)
	return a
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
