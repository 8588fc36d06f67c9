package cli

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/goldtrack/internal/client/models"
)

// SortColumn names a sortable column of the asset table.
type SortColumn string

const (
	SortByType   SortColumn = "type"
	SortByWeight SortColumn = "weight"
	SortByPrice  SortColumn = "price"
	SortByDate   SortColumn = "date"
	SortByKarat  SortColumn = "karat"
)

// ParseSortColumn maps user input to a column.
func ParseSortColumn(s string) (SortColumn, bool) {
	switch SortColumn(strings.ToLower(strings.TrimSpace(s))) {
	case SortByType, SortByWeight, SortByPrice, SortByDate, SortByKarat:
		return SortColumn(strings.ToLower(strings.TrimSpace(s))), true
	}
	return "", false
}

// SortDirection is the table order.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortState tracks the active column and direction of the asset table.
//
// Click reproduces the source behavior exactly: every click flips the
// direction, and clicking a different column switches to it carrying the
// flipped direction along — there is no reset to a fixed default.
type SortState struct {
	Column SortColumn
	Dir    SortDirection
}

// NewSortState returns the initial table order: newest purchases first.
func NewSortState() SortState {
	return SortState{Column: SortByDate, Dir: Descending}
}

func (s *SortState) Click(col SortColumn) {
	s.Dir = s.Dir.flip()
	s.Column = col
}

// SortAssets returns a new slice ordered by the given column and
// direction. Numeric fields compare numerically, dates lexicographically
// on their ISO strings, strings lexicographically. Equal keys keep their
// incoming order.
func SortAssets(assets []models.Asset, col SortColumn, dir SortDirection) []models.Asset {
	sorted := append([]models.Asset(nil), assets...)

	less := func(a, b models.Asset) bool {
		switch col {
		case SortByWeight:
			return a.Weight.LessThan(b.Weight)
		case SortByPrice:
			return a.PurchasePrice.LessThan(b.PurchasePrice)
		case SortByDate:
			return a.PurchaseDate < b.PurchaseDate
		case SortByKarat:
			return a.Karat < b.Karat
		default:
			return a.Type < b.Type
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == Descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
