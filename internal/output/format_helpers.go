package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// DefaultCurrencySymbol prefixes amounts when no symbol is configured.
const DefaultCurrencySymbol = "R$"

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency renders m in Brazilian notation, e.g. "R$ 1.725.000,00".
func FormatCurrency(symbol string, m fdec.Money) string {
	return fdec.FormatGrouped(symbol, m.Decimal, ".", ",")
}

// FormatPercentage formats a value that is already a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fraction (0.045) as a percentage ("4.50%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
