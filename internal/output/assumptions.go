package output

import (
	"fmt"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// DescribeAssumptions renders the resolved assumptions as report bullets.
func DescribeAssumptions(a domain.Assumptions, symbol string) []string {
	tax := "Tax loading: not applied"
	if a.ConsiderTax {
		tax = "Tax loading: 15% added to target expenses"
	}
	return []string{
		fmt.Sprintf("Expected annual return: %s", FormatRate(a.ExpectedReturn)),
		fmt.Sprintf("Inflation: %s per year", FormatRate(a.InflationRate)),
		fmt.Sprintf("Real return: %s per year", FormatRate(a.RealReturn)),
		fmt.Sprintf("Target spending: %s per month", FormatCurrency(symbol, fdec.NewMoneyFromDecimal(a.TargetMonthlyExpenses))),
		fmt.Sprintf("Withdrawal rate: %s (%dx annual expenses)", FormatRate(a.WithdrawalRate), a.FireMultiplier),
		tax,
	}
}
