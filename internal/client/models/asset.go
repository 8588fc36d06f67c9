// Package models defines the client-side data model for gold assets and the
// server-computed dashboard figures.
package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetType classifies the physical form of a gold holding.
type AssetType string

const (
	AssetTypeJewellery AssetType = "Jewellery"
	AssetTypeCoin      AssetType = "Coin"
	AssetTypeBar       AssetType = "Bar"
)

// Karat is the purity grade of a holding. Earlier backend schemas omit it,
// so the zero value is valid and renders as unknown.
type Karat string

const (
	Karat24 Karat = "24K"
	Karat22 Karat = "22K"
	Karat18 Karat = "18K"
)

// Asset is one recorded gold holding as returned by the backend. The id is
// server-assigned; assets are never mutated in place on the client — the
// list is always replaced wholesale by a fresh fetch result.
type Asset struct {
	ID            int64           `json:"id"`
	Type          AssetType       `json:"type"`
	Weight        decimal.Decimal `json:"weight"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  string          `json:"purchase_date"`
	Karat         Karat           `json:"karat,omitempty"`
}

// PurchaseDay returns the date part of PurchaseDate. The backend sometimes
// returns full timestamps ("2024-01-01T00:00:00Z"); display wants the day.
func (a Asset) PurchaseDay() string {
	day, _, _ := strings.Cut(a.PurchaseDate, "T")
	return day
}

// FormNumber is a numeric form field captured as raw text. It marshals as a
// JSON number when the text parses as a decimal, and as the raw string
// otherwise, so that unparsable input still reaches the backend and is
// rejected there. The client performs no numeric pre-validation.
type FormNumber string

func (n FormNumber) MarshalJSON() ([]byte, error) {
	if d, err := decimal.NewFromString(strings.TrimSpace(string(n))); err == nil {
		return []byte(d.String()), nil
	}
	return json.Marshal(string(n))
}

// AddAssetInput carries the add-form fields as entered by the user.
// Weight and price stay raw text until marshalling (see FormNumber).
type AddAssetInput struct {
	Type         AssetType
	Weight       string
	Price        string
	PurchaseDate string
	Karat        Karat
}

// Empty reports whether every form field is at its default.
func (in AddAssetInput) Empty() bool {
	return in == AddAssetInput{}
}
