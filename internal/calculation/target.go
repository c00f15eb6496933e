package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// FireMultiplier is the 25x rule: annual expenses covered by a 4% withdrawal.
const FireMultiplier = 25

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)

	// WithdrawalRate is the safe annual withdrawal rate implied by FireMultiplier.
	WithdrawalRate = decimal.RequireFromString("0.04")
	// TaxLoading approximates income tax on withdrawals.
	TaxLoading = decimal.RequireFromString("1.15")
)

// FireNumber is target monthly expenses × 12 × multiplier, loaded for tax when
// requested, rounded to cents exactly once.
func FireNumber(a domain.Assumptions) fdec.Money {
	multiplier := a.FireMultiplier
	if multiplier <= 0 {
		multiplier = FireMultiplier
	}
	amount := a.TargetMonthlyExpenses.Mul(twelve).Mul(decimal.NewFromInt(int64(multiplier)))
	if a.ConsiderTax {
		amount = amount.Mul(TaxLoading)
	}
	return fdec.RoundCents(amount)
}
