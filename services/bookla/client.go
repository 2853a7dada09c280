package bookla

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"edgeapi/config"
	"edgeapi/models"

	"go.uber.org/zap"
)

// Client talks to the Bookla API for a single company. APIKey is the
// client-scope key used for login and cancel; AdminAPIKey is the optional
// higher-privileged key used only for label enrichment.
type Client struct {
	BaseURL     string
	CompanyID   string
	APIKey      string
	AdminAPIKey string
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:     cfg.BooklaBaseURL,
		CompanyID:   cfg.BooklaCompanyID,
		APIKey:      cfg.BooklaAPIKey,
		AdminAPIKey: cfg.BooklaAdminAPIKey,
		// An unresponsive upstream must not hang the request indefinitely.
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
	}
}

// Login exchanges an email and external user ID for a Bookla client
// session. The call is synchronous and never retried.
func (c *Client) Login(ctx context.Context, email, externalUserID string) (*models.Session, error) {
	if c.BaseURL == "" || c.CompanyID == "" || c.APIKey == "" {
		return nil, &ConfigError{Missing: "BOOKLA_BASE_URL/BOOKLA_COMPANY_ID/BOOKLA_API_KEY"}
	}
	if email == "" || externalUserID == "" {
		return nil, fmt.Errorf("bookla login: email and externalUserID are required")
	}

	payload, err := json.Marshal(map[string]string{
		"companyID":      c.CompanyID,
		"email":          email,
		"externalUserID": externalUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("bookla login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/client/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("bookla login: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bookla login: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError("login", resp.StatusCode, raw)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A malformed 2xx body is treated as an empty session.
		return &models.Session{}, nil
	}
	return &session, nil
}

// ListScheduledBookings fetches the caller's bookings, filtered upstream to
// status=scheduled.
func (c *Client) ListScheduledBookings(ctx context.Context, accessToken string) ([]models.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/client/bookings?status=scheduled", nil)
	if err != nil {
		return nil, fmt.Errorf("bookla bookings: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bookla bookings: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError("bookings", resp.StatusCode, raw)
	}

	var payload struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Bookings == nil {
		return []models.Booking{}, nil
	}
	return payload.Bookings, nil
}

// CancelBooking cancels one booking on behalf of the session holder and
// returns the upstream response body as-is.
func (c *Client) CancelBooking(ctx context.Context, accessToken, bookingID string) (any, error) {
	url := fmt.Sprintf("%s/client/bookings/%s/cancel", c.BaseURL, bookingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bookla cancel: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("x-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bookla cancel: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError("cancel", resp.StatusCode, raw)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		data = nil
	}
	return data, nil
}

// upstreamError shapes a non-2xx Bookla response. The body is decoded when
// possible; otherwise it is kept as raw text so nothing is lost.
func upstreamError(op string, status int, raw []byte) *UpstreamError {
	var detail any
	if err := json.Unmarshal(raw, &detail); err != nil {
		detail = map[string]any{"raw": string(raw)}
	}

	message := http.StatusText(status)
	if body, ok := detail.(map[string]any); ok {
		if msg, ok := body["message"].(string); ok && msg != "" {
			message = msg
		}
	}
	if message == "" {
		message = fmt.Sprintf("Bookla %s failed", op)
	}

	return &UpstreamError{Op: op, Status: status, Message: message, Detail: detail}
}
