// Package api implements the HTTP client for the Gold Tracker backend.
//
// The backend speaks plain JSON over HTTP. Responses to auth and mutation
// calls carry their user-facing text in either a "message" or an "error"
// field; Text() resolves that fallback in one place.
package api

import (
	"context"

	"github.com/dmitrijs2005/goldtrack/internal/client/models"
)

// Client defines the backend operations the tracker needs. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	VerifyOTP(ctx context.Context, userID, otp string) (string, error)
	Login(ctx context.Context, userID, password string) (LoginResult, error)

	ListAssets(ctx context.Context, token string) ([]models.Asset, error)
	GetDashboard(ctx context.Context, token string) (*models.DashboardSummary, error)
	PriceHistory(ctx context.Context, days int) ([]models.PriceHistoryEntry, error)
	AddAsset(ctx context.Context, token string, in models.AddAssetInput) (string, error)
	RemoveAsset(ctx context.Context, token string, id int64) error
}

// RegisterRequest carries the registration form. Credentials are transient:
// they live in form state only and are discarded after submission.
type RegisterRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Region   string `json:"region"`
}

// LoginResult is the outcome of a successful login call. Token may be empty
// even on a 2xx response; the caller must not treat such a response as
// authenticated.
type LoginResult struct {
	Token   string
	Message string
}

// serverMessage is the {message|error} envelope the backend wraps
// user-facing text in.
type serverMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text returns the message, falling back to the error field. Both may be
// empty, in which case there is nothing to display.
func (m serverMessage) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
