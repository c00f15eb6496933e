package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// Defaults is the fixed table merged with request overrides
type Defaults struct {
	Returns   map[domain.InvestmentProfile]decimal.Decimal
	Inflation decimal.Decimal
}

// DefaultAssumptionTable returns the nominal annual returns per profile and the
// default inflation rate (IPCA long-run average).
func DefaultAssumptionTable() Defaults {
	return Defaults{
		Returns: map[domain.InvestmentProfile]decimal.Decimal{
			domain.ProfileConservative: decimal.RequireFromString("0.08"),
			domain.ProfileModerate:     decimal.RequireFromString("0.10"),
			domain.ProfileAggressive:   decimal.RequireFromString("0.12"),
		},
		Inflation: decimal.RequireFromString("0.045"),
	}
}

// ReturnFor looks up the default nominal return of a profile.
func (d Defaults) ReturnFor(p domain.InvestmentProfile) (decimal.Decimal, error) {
	r, ok := d.Returns[p]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownProfile, p)
	}
	return r, nil
}

// ResolveAssumptions merges request overrides with the engine's defaults table.
// The profile lookup is skipped when the request overrides the return.
func (ce *CalculationEngine) ResolveAssumptions(req domain.Request) (domain.Assumptions, error) {
	return resolveAssumptions(ce.defaults, req)
}

func resolveAssumptions(d Defaults, req domain.Request) (domain.Assumptions, error) {
	var expected decimal.Decimal
	if req.ExpectedReturn != nil {
		expected = *req.ExpectedReturn
	} else {
		r, err := d.ReturnFor(req.InvestmentProfile)
		if err != nil {
			return domain.Assumptions{}, err
		}
		expected = r
	}

	inflation := d.Inflation
	if req.InflationRate != nil {
		inflation = *req.InflationRate
	}

	target := req.MonthlyExpenses
	if req.TargetMonthlyExpenses != nil {
		target = *req.TargetMonthlyExpenses
	}

	return domain.Assumptions{
		ExpectedReturn:        expected,
		InflationRate:         inflation,
		RealReturn:            one.Add(expected).DivRound(one.Add(inflation), fdec.Precision).Sub(one),
		TargetMonthlyExpenses: target,
		FireMultiplier:        FireMultiplier,
		WithdrawalRate:        WithdrawalRate,
		ConsiderTax:           req.ConsiderTax,
	}, nil
}
