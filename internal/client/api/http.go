package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/goldtrack/internal/client/models"
)

// HTTPClient talks to one backend instance. The base URL is injected
// configuration; no endpoint is hardcoded anywhere else.
//
// No request timeout is set: worst-case latency is governed by the
// transport's defaults, and no call is retried.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
	}
}

// do performs one JSON round trip. A 401 aborts immediately with
// ErrUnauthorized and no body parse. Other non-2xx statuses decode the
// {message|error} envelope into an *Error. On 2xx the body is decoded into
// out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var msg serverMessage
		_ = json.Unmarshal(data, &msg)
		text := msg.Text()
		if text == "" {
			text = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: text}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var msg serverMessage
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &msg); err != nil {
		return "", err
	}
	return msg.Text(), nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, userID, otp string) (string, error) {
	body := struct {
		UserID string `json:"userid"`
		OTP    string `json:"otp"`
	}{UserID: userID, OTP: otp}

	var msg serverMessage
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp", "", body, &msg); err != nil {
		return "", err
	}
	return msg.Text(), nil
}

func (c *HTTPClient) Login(ctx context.Context, userID, password string) (LoginResult, error) {
	body := struct {
		UserID   string `json:"userid"`
		Password string `json:"password"`
	}{UserID: userID, Password: password}

	var resp struct {
		Token string `json:"token"`
		serverMessage
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: resp.Token, Message: resp.Text()}, nil
}

func (c *HTTPClient) ListAssets(ctx context.Context, token string) ([]models.Asset, error) {
	var assets []models.Asset
	if err := c.do(ctx, http.MethodGet, "/api/gold/list", token, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *HTTPClient) GetDashboard(ctx context.Context, token string) (*models.DashboardSummary, error) {
	var d models.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", token, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) PriceHistory(ctx context.Context, days int) ([]models.PriceHistoryEntry, error) {
	var entries []models.PriceHistoryEntry
	path := "/api/gold/history?days=" + strconv.Itoa(days)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) AddAsset(ctx context.Context, token string, in models.AddAssetInput) (string, error) {
	body := struct {
		Type         models.AssetType  `json:"type"`
		Weight       models.FormNumber `json:"weight"`
		TotalPrice   models.FormNumber `json:"total_price"`
		PurchaseDate string            `json:"purchase_date"`
		Karat        models.Karat      `json:"karat,omitempty"`
	}{
		Type:         in.Type,
		Weight:       models.FormNumber(in.Weight),
		TotalPrice:   models.FormNumber(in.Price),
		PurchaseDate: in.PurchaseDate,
		Karat:        in.Karat,
	}

	var msg serverMessage
	if err := c.do(ctx, http.MethodPost, "/api/gold/add", token, body, &msg); err != nil {
		return "", err
	}
	return msg.Text(), nil
}

// RemoveAsset deletes one holding. The backend may answer with no body at
// all; a 2xx with or without a body counts as done.
func (c *HTTPClient) RemoveAsset(ctx context.Context, token string, id int64) error {
	path := "/api/gold/remove/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
