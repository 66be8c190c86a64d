package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// HTTPClient is the concrete Client over net/http. It injects the bearer
// credential from the CredentialSource, stamps every request with an
// X-Request-Id, and enforces a per-request timeout. Nothing is retried.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	timeout time.Duration
	log     logging.Logger
}

// NewHTTPClient constructs a client for the API at baseURL (no trailing
// slash). The timeout applies to each individual request.
func NewHTTPClient(baseURL string, timeout time.Duration, creds CredentialSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		creds:   creds,
		timeout: timeout,
		log:     log.With("component", "api"),
	}
}

// authed marks calls that must carry the bearer credential.
const (
	public = false
	authed = true
)

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, withAuth bool) (*envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if withAuth {
		token, err := c.creds.Credential(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading credential: %w", err)
		}
		if token == "" {
			return nil, ErrAuthRequired
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "request_id", requestID, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	env := &envelope{}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}
	if len(data) > 0 {
		// badly-formed bodies on error statuses are tolerated; the status
		// mapping below still applies
		_ = json.Unmarshal(data, env)
	}

	c.log.Info(ctx, "api request", "request_id", requestID, "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return env, nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload any, withAuth bool) (*envelope, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, withAuth)
}

func decodeInto[T any](raw json.RawMessage) (T, error) {
	var v T
	if raw == nil {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decoding response: %w", err)
	}
	return v, nil
}

// --- account ---

func (c *HTTPClient) Register(ctx context.Context, input RegisterInput) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/auth/user/register", input, public)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (string, models.Identity, error) {
	payload := map[string]string{"login": identifier, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/api/auth/user/login", payload, public)
	if err != nil {
		return "", models.Identity{}, err
	}
	identity, err := decodeInto[models.Identity](env.User)
	if err != nil {
		return "", models.Identity{}, err
	}
	return env.Token, identity, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/auth/user/logout", nil, "", authed)
	return err
}

func (c *HTTPClient) Profile(ctx context.Context) (models.Identity, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/user/profile", nil, "", authed)
	if err != nil {
		return models.Identity{}, err
	}
	return decodeInto[models.Identity](env.User)
}

func (c *HTTPClient) UpdateProfileImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("profileImage", filename)
	if err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}

	env, err := c.do(ctx, http.MethodPatch, "/api/auth/user/profile-image", &buf, w.FormDataContentType(), authed)
	if err != nil {
		return "", err
	}
	return env.ProfileImage, nil
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	_, err := c.doJSON(ctx, http.MethodPost, "/api/auth/user/password-forgot", payload, public)
	return err
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, token, newPassword, confirmPassword string) error {
	payload := map[string]string{"newPassword": newPassword, "confirmPassword": confirmPassword}
	_, err := c.doJSON(ctx, http.MethodPut, "/api/auth/user/password-reset/"+url.PathEscape(token), payload, public)
	return err
}

// --- catalog ---

func (c *HTTPClient) Products(ctx context.Context) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/product", nil, "", public)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]models.Product](env.Products)
}

func (c *HTTPClient) Product(ctx context.Context, id string) (models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/product/"+url.PathEscape(id), nil, "", public)
	if err != nil {
		return models.Product{}, err
	}
	return decodeInto[models.Product](env.Product)
}

func (c *HTTPClient) Reviews(ctx context.Context, productID string) ([]models.Review, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/product/reviews/"+url.PathEscape(productID), nil, "", public)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]models.Review](env.Reviews)
}

func (c *HTTPClient) SubmitReview(ctx context.Context, productID string, rating int, comment string) error {
	payload := map[string]any{"rating": rating, "comment": comment}
	_, err := c.doJSON(ctx, http.MethodPut, "/api/product/reviews/"+url.PathEscape(productID), payload, authed)
	return err
}

// --- cart ---

func decodeCart(raw json.RawMessage) ([]models.CartLine, error) {
	payload, err := decodeInto[cartPayload](raw)
	if err != nil {
		return nil, err
	}
	lines := make([]models.CartLine, 0, len(payload.Items))
	for _, item := range payload.Items {
		line, err := decodeInto[models.CartLine](item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (c *HTTPClient) Cart(ctx context.Context) ([]models.CartLine, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/cart", nil, "", authed)
	if err != nil {
		return nil, err
	}
	return decodeCart(env.Cart)
}

func (c *HTTPClient) AddCartItem(ctx context.Context, productID string, quantity int) error {
	payload := map[string]any{"productId": productID, "quantity": quantity}
	_, err := c.doJSON(ctx, http.MethodPost, "/api/cart/"+url.PathEscape(productID), payload, authed)
	return err
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	payload := map[string]any{"productId": productID, "quantity": quantity}
	_, err := c.doJSON(ctx, http.MethodPut, "/api/cart/update", payload, authed)
	return err
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/cart/remove/"+url.PathEscape(productID), nil, "", authed)
	return err
}

// --- wishlist ---

func decodeWishlist(raw json.RawMessage) ([]models.Product, error) {
	payload, err := decodeInto[productsPayload](raw)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]models.Product](payload.Products)
}

func (c *HTTPClient) Wishlist(ctx context.Context) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/user/watchlist", nil, "", authed)
	if err != nil {
		return nil, err
	}
	return decodeWishlist(env.Data)
}

func (c *HTTPClient) AddWishlistItem(ctx context.Context, productID string) error {
	payload := map[string]string{"productId": productID}
	_, err := c.doJSON(ctx, http.MethodPost, "/api/auth/user/watchlist/"+url.PathEscape(productID), payload, authed)

	// the API reports duplicates as a 400
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		return ErrAlreadyInWishlist
	}
	return err
}

func (c *HTTPClient) RemoveWishlistItem(ctx context.Context, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/auth/user/watchlist/"+url.PathEscape(productID), nil, "", authed)
	return err
}

// --- orders ---

func (c *HTTPClient) CreateOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/order/create", draft, authed)
	if err != nil {
		return models.Order{}, err
	}
	return decodeInto[models.Order](env.Order)
}

func (c *HTTPClient) Order(ctx context.Context, id string) (models.Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/order/"+url.PathEscape(id), nil, "", authed)
	if err != nil {
		return models.Order{}, err
	}
	return decodeInto[models.Order](env.Order)
}

// --- admin ---

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.AccountSummary, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/admin/users", nil, "", authed)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]models.AccountSummary](env.Data)
}

func (c *HTTPClient) AdminUser(ctx context.Context, id string) (models.AccountSummary, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/admin/user/"+url.PathEscape(id), nil, "", authed)
	if err != nil {
		return models.AccountSummary{}, err
	}
	return decodeInto[models.AccountSummary](env.Data)
}

func (c *HTTPClient) AdminDeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/auth/admin/user/"+url.PathEscape(id), nil, "", authed)
	return err
}

func (c *HTTPClient) AdminUserCart(ctx context.Context, id string) ([]models.CartLine, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/admin/user/"+url.PathEscape(id)+"/cart", nil, "", authed)
	if err != nil {
		return nil, err
	}
	return decodeCart(env.Cart)
}

func (c *HTTPClient) AdminUserWishlist(ctx context.Context, id string) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/admin/user/"+url.PathEscape(id)+"/watchlist", nil, "", authed)
	if err != nil {
		return nil, err
	}
	return decodeWishlist(env.Data)
}

func (c *HTTPClient) AdminOrders(ctx context.Context) ([]models.Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/order/admin/orders", nil, "", authed)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]models.Order](env.Orders)
}

func (c *HTTPClient) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/product/create", input, authed)
	if err != nil {
		return models.Product{}, err
	}
	return decodeInto[models.Product](env.Product)
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/product/"+url.PathEscape(id), nil, "", authed)
	return err
}

func (c *HTTPClient) DeleteReview(ctx context.Context, productID, reviewID string) error {
	path := "/api/product/" + url.PathEscape(productID) + "/review/" + url.PathEscape(reviewID)
	_, err := c.do(ctx, http.MethodDelete, path, nil, "", authed)
	return err
}
