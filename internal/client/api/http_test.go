package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/goldtrack/internal/client/models"
)

func TestLogin_TokenAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["userid"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1", "message": "welcome"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	res, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-1", res.Token)
	require.Equal(t, "welcome", res.Message)
}

func TestLogin_RejectionUsesErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad credentials"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Login(context.Background(), "alice", "wrong")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "bad credentials", apiErr.Message)
}

func TestUnauthorized_NoBodyParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		// Deliberately not JSON: a 401 must short-circuit before any parse.
		_, _ = w.Write([]byte("<html>expired</html>"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)

	_, err := c.ListAssets(context.Background(), "stale")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.GetDashboard(context.Background(), "stale")
	require.ErrorIs(t, err, ErrUnauthorized)

	err = c.RemoveAsset(context.Background(), "stale", 7)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestListAssets_BearerHeaderAndEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	assets, err := c.ListAssets(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Empty(t, assets)
}

func TestPriceHistory_DaysParamNoAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/gold/history", r.URL.Path)
		require.Equal(t, "14", r.URL.Query().Get("days"))
		require.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"date":"2024-02-01","price_per_gram":{"24k":7300,"22k":6700,"18k":5500}}]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	entries, err := c.PriceHistory(context.Background(), 14)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "2024-02-01", entries[0].Date)
}

func TestAddAsset_CoercesNumericFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "added"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	msg, err := c.AddAsset(context.Background(), "tok-1", models.AddAssetInput{
		Type:         models.AssetTypeCoin,
		Weight:       "10",
		Price:        "65000",
		PurchaseDate: "2024-01-01",
		Karat:        models.Karat24,
	})
	require.NoError(t, err)
	require.Equal(t, "added", msg)

	// Parsable text crosses the wire as numbers, not strings.
	require.Equal(t, float64(10), got["weight"])
	require.Equal(t, float64(65000), got["total_price"])
	require.Equal(t, "Coin", got["type"])
}

func TestAddAsset_UnparsableInputReachesServer(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "weight must be a number"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.AddAsset(context.Background(), "tok-1", models.AddAssetInput{
		Type: models.AssetTypeBar, Weight: "heavy", Price: "1", PurchaseDate: "2024-01-01",
	})

	// The rejection comes from the server, not from client-side validation.
	require.Equal(t, "heavy", got["weight"])
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "weight must be a number", apiErr.Message)
}

func TestRemoveAsset_TargetsIDPath(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		// No body at all: removal tolerates an empty response.
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	require.NoError(t, c.RemoveAsset(context.Background(), "tok-1", 7))
	require.Equal(t, "/api/gold/remove/7", path)
}

func TestNonJSONErrorBody_FallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.GetDashboard(context.Background(), "tok-1")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "Bad Gateway", apiErr.Message)
	require.False(t, errors.Is(err, ErrUnauthorized))
}
