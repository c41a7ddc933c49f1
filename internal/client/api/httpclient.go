package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wastewise/pickup/internal/client/models"
)

// DefaultRequestTimeout bounds every round trip so a hanging call
// surfaces as ErrUnavailable instead of a stuck loading state.
const DefaultRequestTimeout = 15 * time.Second

// HTTPClient implements Client against the pickup REST backend.
//
// The ambient credential is the server's session cookie, held in an
// in-process cookie jar and attached to every request transparently.
// Callers never pass credentials explicitly.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client rooted at baseURL (e.g.
// "http://localhost:8000/api"). A non-positive timeout falls back to
// DefaultRequestTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// statusError carries the server's human-readable error message while
// staying matchable against ErrUnauthorized for 401/403 responses.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string { return e.message }

func (e *statusError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.status == http.StatusUnauthorized || e.status == http.StatusForbidden)
}

// do is the single shared request path: it serializes the body, tags the
// request with an id, performs the round trip, and decodes either the
// success payload into out or the error body into a statusError. Every
// failure mode comes back as an error value; nothing escapes as a panic.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{status: resp.StatusCode, message: errorMessage(data, resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return nil
}

// errorMessage extracts the server's error field, falling back to a
// status-derived message when the body has none or is not JSON.
func errorMessage(data []byte, resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

func (c *HTTPClient) RequestCode(ctx context.Context, email string) (string, error) {
	req := struct {
		Email string `json:"email"`
	}{Email: email}

	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/send-otp", req, &resp); err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

func (c *HTTPClient) VerifyCode(ctx context.Context, email, code string) (*models.VerifyResult, error) {
	req := struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}{Email: email, OTP: code}

	var resp struct {
		User      models.Identity `json:"user"`
		IsNewUser bool            `json:"is_new_user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/verify-otp", req, &resp); err != nil {
		return nil, err
	}
	return &models.VerifyResult{Identity: resp.User, NewUser: resp.IsNewUser}, nil
}

func (c *HTTPClient) CurrentIdentity(ctx context.Context) (*models.Identity, error) {
	// /auth/me returns the identity fields at the top level, not wrapped.
	var id models.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *HTTPClient) EndSession(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.IdentityPatch) (*models.Identity, error) {
	var resp struct {
		User models.Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/users/profile", patch, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) AddAddress(ctx context.Context, in models.AddressInput) (*models.Address, error) {
	var resp struct {
		Address models.Address `json:"address"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/addresses", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Address, nil
}

func (c *HTTPClient) ListAddresses(ctx context.Context) ([]models.Address, error) {
	var resp struct {
		Addresses []models.Address `json:"addresses"`
		Total     int              `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/addresses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

func (c *HTTPClient) SetCurrentAddress(ctx context.Context, addressID int64) (*models.Address, error) {
	path := "/users/addresses/" + strconv.FormatInt(addressID, 10) + "/set-current"
	var resp struct {
		Address models.Address `json:"address"`
	}
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Address, nil
}

func (c *HTTPClient) CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/bookings/", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

func (c *HTTPClient) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.WasteCategory != "" {
		q.Set("waste_category", string(filter.WasteCategory))
	}
	path := "/bookings/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Bookings []models.Booking `json:"bookings"`
		Total    int              `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Bookings, resp.Total, nil
}

func (c *HTTPClient) CancelBooking(ctx context.Context, bookingID int64) (*models.Booking, error) {
	path := "/bookings/" + strconv.FormatInt(bookingID, 10)
	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

func (c *HTTPClient) BookingStats(ctx context.Context) (*models.BookingStats, error) {
	var stats models.BookingStats
	if err := c.do(ctx, http.MethodGet, "/bookings/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
