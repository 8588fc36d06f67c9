package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   FormNumber
		want string
	}{
		{"integer", "10", "10"},
		{"fraction", "65000.50", "65000.5"},
		{"padded", " 12.5 ", "12.5"},
		{"non-numeric stays raw", "ten grams", `"ten grams"`},
		{"empty stays raw", "", `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(b))
		})
	}
}

func TestAsset_DecodeFromServer(t *testing.T) {
	body := `{"id":7,"type":"Coin","weight":10,"purchase_price":65000,
		"purchase_date":"2024-01-01T00:00:00Z","karat":"24K"}`

	var a Asset
	require.NoError(t, json.Unmarshal([]byte(body), &a))
	require.Equal(t, int64(7), a.ID)
	require.Equal(t, AssetTypeCoin, a.Type)
	require.True(t, a.Weight.Equal(decimal.NewFromInt(10)))
	require.Equal(t, Karat24, a.Karat)
	require.Equal(t, "2024-01-01", a.PurchaseDay())
}

func TestDashboardSummary_OptionalPrices(t *testing.T) {
	var d DashboardSummary
	require.NoError(t, json.Unmarshal([]byte(`{"invested":100,"current":120,"net":20}`), &d))
	require.Nil(t, d.Price24K)
	require.True(t, d.Net.Equal(decimal.NewFromInt(20)))

	require.NoError(t, json.Unmarshal([]byte(`{"invested":0,"current":0,"net":0,"price24K":7301.5}`), &d))
	require.NotNil(t, d.Price24K)
	require.True(t, d.Price24K.Equal(decimal.RequireFromString("7301.5")))
}

func TestPriceHistoryEntry_Decode(t *testing.T) {
	body := `{"id":1,"date":"2024-02-01","price_per_gram":{"24k":7300,"22k":6700,"18k":5500}}`
	var e PriceHistoryEntry
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	require.True(t, e.PricePerGram.K22.Equal(decimal.NewFromInt(6700)))
}
