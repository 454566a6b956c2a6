package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney formats a monetary amount with exactly two decimal places.
// Example: 12.3456 returns "12.35", 5 returns "5.00". Amounts are kept at
// full precision everywhere else; this is display-time rounding only.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatEuro prepends the euro sign to a two-decimal amount, as used in the
// report export summary rows.
func FormatEuro(amount decimal.Decimal) string {
	return "€" + FormatMoney(amount)
}
