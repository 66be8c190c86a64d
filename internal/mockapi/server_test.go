package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer("test-secret", logging.NewZerologLogger(zerolog.Nop()))
}

func doReq(t *testing.T, s *Server, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var r *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	} else {
		r = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	env := map[string]json.RawMessage{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func login(t *testing.T, s *Server, loginID, password string) string {
	t.Helper()
	rec, env := doReq(t, s, http.MethodPost, "/api/auth/user/login", "", map[string]string{
		"login": loginID, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var token string
	require.NoError(t, json.Unmarshal(env["token"], &token))
	return token
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	rec, _ := doReq(t, s, http.MethodPost, "/api/auth/user/register", "", map[string]string{
		"name": "Alice", "email": "a@b.c", "password": "pw", "phone": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doReq(t, s, http.MethodPost, "/api/auth/user/register", "", map[string]string{
		"name": "Alice", "email": "a@b.c", "password": "pw", "phone": "1234567890",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// duplicate email
	rec, env := doReq(t, s, http.MethodPost, "/api/auth/user/register", "", map[string]string{
		"name": "Alice2", "email": "a@b.c", "password": "pw", "phone": "1234567890",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(env["message"]), "already exists")
}

func TestLoginByEmailAndPhone(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "pw", "user")
	require.NoError(t, err)

	assert.NotEmpty(t, login(t, s, "a@b.c", "pw"))
	assert.NotEmpty(t, login(t, s, "1234567890", "pw"))

	rec, _ := doReq(t, s, http.MethodPost, "/api/auth/user/login", "", map[string]string{
		"login": "a@b.c", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	rec, _ := doReq(t, s, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doReq(t, s, http.MethodGet, "/api/cart", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminForbiddenForUser(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "pw", "user")
	require.NoError(t, err)
	token := login(t, s, "a@b.c", "pw")

	rec, _ := doReq(t, s, http.MethodGet, "/api/auth/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCartAddIncrementsDuplicate(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "pw", "user")
	require.NoError(t, err)
	pid := s.SeedProduct(models.Product{Name: "Widget", Price: 100})
	token := login(t, s, "a@b.c", "pw")

	for i := 0; i < 2; i++ {
		rec, _ := doReq(t, s, http.MethodPost, "/api/cart/"+pid, token, map[string]any{
			"productId": pid, "quantity": 1,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, env := doReq(t, s, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart struct {
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env["cart"], &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestWishlistDuplicateIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "pw", "user")
	require.NoError(t, err)
	pid := s.SeedProduct(models.Product{Name: "Widget", Price: 100})
	token := login(t, s, "a@b.c", "pw")

	rec, _ := doReq(t, s, http.MethodPost, "/api/auth/user/watchlist/"+pid, token, map[string]string{"productId": pid})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doReq(t, s, http.MethodPost, "/api/auth/user/watchlist/"+pid, token, map[string]string{"productId": pid})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderCreateComputesTotalAndClearsCart(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "pw", "user")
	require.NoError(t, err)
	pid := s.SeedProduct(models.Product{Name: "Widget", Price: 100})
	token := login(t, s, "a@b.c", "pw")

	rec, _ := doReq(t, s, http.MethodPost, "/api/cart/"+pid, token, map[string]any{"productId": pid, "quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doReq(t, s, http.MethodPost, "/api/order/create", token, map[string]any{
		"items":           []map[string]any{{"product": pid, "quantity": 3}},
		"shippingAddress": map[string]string{"street": "1 Main", "city": "X", "state": "Y", "pinCode": "12345", "phone": "5550001111"},
		"paymentInfo":     map[string]string{"id": "mock-payment-id", "status": "success", "type": "card"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var o models.Order
	require.NoError(t, json.Unmarshal(env["order"], &o))
	assert.InDelta(t, 300.0, o.TotalAmount, 0.001)
	assert.Equal(t, "processing", o.Status)
	assert.False(t, o.PaidAt.IsZero())

	rec, env = doReq(t, s, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env["cart"], &cart))
	assert.Empty(t, cart.Items)
}

func TestOrderCreateRejectsIncompleteAddress(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "pw", "user")
	require.NoError(t, err)
	pid := s.SeedProduct(models.Product{Name: "Widget", Price: 100})
	token := login(t, s, "a@b.c", "pw")

	rec, _ := doReq(t, s, http.MethodPost, "/api/order/create", token, map[string]any{
		"items":           []map[string]any{{"product": pid, "quantity": 1}},
		"shippingAddress": map[string]string{"street": "1 Main"},
		"paymentInfo":     map[string]string{"id": "mock-payment-id", "status": "success", "type": "card"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "old", "user")
	require.NoError(t, err)

	rec, _ := doReq(t, s, http.MethodPost, "/api/auth/user/password-forgot", "", map[string]string{"email": "a@b.c"})
	require.Equal(t, http.StatusOK, rec.Code)

	token := s.ResetTokenFor("a@b.c")
	require.NotEmpty(t, token)

	rec, _ = doReq(t, s, http.MethodPut, "/api/auth/user/password-reset/"+token, "", map[string]string{
		"newPassword": "new", "confirmPassword": "new",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// old password is gone, new one works
	rec, _ = doReq(t, s, http.MethodPost, "/api/auth/user/login", "", map[string]string{"login": "a@b.c", "password": "old"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, login(t, s, "a@b.c", "new"))
}

func TestOrderVisibility(t *testing.T) {
	s := newTestServer(t)
	_, err := s.SeedUser("Alice", "a@b.c", "1234567890", "pw", "user")
	require.NoError(t, err)
	_, err = s.SeedUser("Bob", "b@b.c", "1234567891", "pw", "user")
	require.NoError(t, err)
	pid := s.SeedProduct(models.Product{Name: "Widget", Price: 100})

	aliceToken := login(t, s, "a@b.c", "pw")
	rec, env := doReq(t, s, http.MethodPost, "/api/order/create", aliceToken, map[string]any{
		"items":           []map[string]any{{"product": pid, "quantity": 1}},
		"shippingAddress": map[string]string{"street": "1 Main", "city": "X", "state": "Y", "pinCode": "12345", "phone": "5550001111"},
		"paymentInfo":     map[string]string{"id": "mock-payment-id", "status": "success", "type": "card"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var o models.Order
	require.NoError(t, json.Unmarshal(env["order"], &o))

	// owner sees it
	rec, _ = doReq(t, s, http.MethodGet, "/api/order/"+o.ID, aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// another user does not
	bobToken := login(t, s, "b@b.c", "pw")
	rec, _ = doReq(t, s, http.MethodGet, "/api/order/"+o.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
