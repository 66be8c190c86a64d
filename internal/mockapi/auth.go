package mockapi

import (
	"encoding/json"
	"net/http"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func identityOf(a *account) models.Identity {
	cartQty := 0
	for _, item := range a.Cart {
		cartQty += item.Quantity
	}
	return models.Identity{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		Phone:            a.Phone,
		Role:             a.Role,
		ProfileImage:     a.ProfileImage,
		CartQuantity:     cartQty,
		WishlistQuantity: len(a.Wishlist),
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if !tenDigits(req.Phone) {
		respondError(w, http.StatusBadRequest, "phone number must be 10 digits")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.store.accountByLogin(req.Email) != nil {
		respondError(w, http.StatusBadRequest, "account already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "hashing password")
		return
	}
	a := &account{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         "user",
		PasswordHash: hash,
	}
	s.store.accounts[a.ID] = a

	respondJSON(w, http.StatusCreated, map[string]string{"message": "registered"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.store.mu.Lock()
	a := s.store.accountByLogin(req.Login)
	s.store.mu.Unlock()

	if a == nil || bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.mintToken(a)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "minting token")
		return
	}

	s.store.mu.Lock()
	identity := identityOf(a)
	s.store.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{"token": token, "user": identity})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// tokens are stateless; there is nothing to invalidate server-side
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	identity := identityOf(accountFrom(r))
	s.store.mu.Unlock()
	respondJSON(w, http.StatusOK, map[string]any{"user": identity})
}

func (s *Server) handleProfileImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	_, header, err := r.FormFile("profileImage")
	if err != nil {
		respondError(w, http.StatusBadRequest, "profileImage file is required")
		return
	}

	a := accountFrom(r)
	ref := "/uploads/" + a.ID + "/" + header.Filename

	s.store.mu.Lock()
	a.ProfileImage = ref
	s.store.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]string{"profileImage": ref})
}

func (s *Server) handlePasswordForgot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.store.mu.Lock()
	if a := s.store.accountByLogin(req.Email); a != nil {
		a.ResetToken = uuid.NewString()
	}
	s.store.mu.Unlock()

	// same response whether or not the account exists
	respondJSON(w, http.StatusOK, map[string]string{"message": "reset link sent"})
}

func (s *Server) handlePasswordReset(w http.ResponseWriter, r *http.Request) {
	token := pathParam(r, "token")

	var req struct {
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.NewPassword == "" || req.NewPassword != req.ConfirmPassword {
		respondError(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	a := s.store.accountByResetToken(token)
	if a == nil {
		respondError(w, http.StatusBadRequest, "invalid or expired reset token")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.MinCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "hashing password")
		return
	}
	a.PasswordHash = hash
	a.ResetToken = ""

	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func tenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
