package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatINR renders a rupee amount for display, e.g. "₹65,000.00".
func formatINR(d decimal.Decimal) string {
	return money.New(d.Shift(2).Round(0).IntPart(), money.INR).Display()
}

// formatOptINR renders an optional price; older backends omit spot prices.
func formatOptINR(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return formatINR(*d)
}
