package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// breakEvenMaxIterations is enough to halve any int64 range of cents to one.
const breakEvenMaxIterations = 64

// BreakEvenContribution returns the smallest monthly contribution, in whole cents,
// that grows pv to at least fv after the given number of months at monthlyRate.
// It returns zero when pv alone gets there.
func BreakEvenContribution(fv, pv, monthlyRate decimal.Decimal, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, fmt.Errorf("months must be positive, got %d", months)
	}
	if one.Add(monthlyRate).LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("monthly rate %s must be greater than -1", monthlyRate)
	}
	if pv.IsNegative() {
		return decimal.Zero, fmt.Errorf("present value %s must not be negative", pv)
	}

	grows := func(cents int64) bool {
		pmt := decimal.New(cents, -2)
		return fdec.Accumulate(pv, pmt, monthlyRate, months).GreaterThanOrEqual(fv)
	}

	// Binary search over cents. Contributing fv every month always suffices
	// because the last deposit alone covers the target.
	minCents := int64(0)
	if grows(minCents) {
		return decimal.Zero, nil
	}
	maxCents := fv.Mul(hundred).Ceil().IntPart()

	for i := 0; i < breakEvenMaxIterations && maxCents-minCents > 1; i++ {
		mid := minCents + (maxCents-minCents)/2
		if grows(mid) {
			maxCents = mid
		} else {
			minCents = mid
		}
	}
	return decimal.New(maxCents, -2), nil
}

// DesiredAgePlan solves the contribution needed to reach fireNumber by the
// request's target_age. It returns nil when the request has no target age.
func (ce *CalculationEngine) DesiredAgePlan(req domain.Request, a domain.Assumptions, fireNumber fdec.Money) (*domain.DesiredAgePlan, error) {
	if req.TargetAge == nil || *req.TargetAge <= req.CurrentAge {
		return nil, nil
	}

	months := (*req.TargetAge - req.CurrentAge) * 12
	pmt, err := BreakEvenContribution(fireNumber.Decimal, req.CurrentSavings, fdec.MonthlyRate(a.ExpectedReturn), months)
	if err != nil {
		return nil, fmt.Errorf("failed to solve contribution for age %d: %w", *req.TargetAge, err)
	}
	ce.Logger.Debugf("desired age %d needs %s per month over %d months", *req.TargetAge, pmt.StringFixed(2), months)

	return &domain.DesiredAgePlan{
		Age:                  *req.TargetAge,
		Months:               months,
		MonthlySavingsNeeded: fdec.NewMoneyFromDecimal(pmt),
		SavingsRate:          domain.SavingsRatePercent(pmt, req.MonthlyIncome),
		Affordable:           pmt.LessThanOrEqual(req.MonthlySurplus()),
	}, nil
}
