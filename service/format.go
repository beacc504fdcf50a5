package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// formatMoney renders a currency amount with two fixed decimals.
func formatMoney(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// formatPercent renders a percentage with two fixed decimals.
func formatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// formatMonths renders a fractional month count.
func formatMonths(v float64) string {
	return fmt.Sprintf("%s months", decimal.NewFromFloat(v).StringFixed(1))
}
