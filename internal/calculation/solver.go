package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// MaxMonths caps the iterative solver at 50 years.
const MaxMonths = 600

// maxSettleSteps bounds the walk from the floating-point guess to the exact month.
const maxSettleSteps = 24

var (
	// BaseContributionShare is the share of the monthly surplus saved by default.
	BaseContributionShare = decimal.RequireFromString("0.7")
	// EscalatedContributionShare is used when the base share fails the 25x feasibility check.
	EscalatedContributionShare = decimal.RequireFromString("0.9")
)

// SolveMethod records which path produced a Solution
type SolveMethod string

const (
	MethodAlreadyMet SolveMethod = "already_met"
	MethodZeroRate   SolveMethod = "zero_rate"
	MethodClosedForm SolveMethod = "closed_form"
	MethodIterative  SolveMethod = "iterative"
)

// Solution is the number of months needed to reach a target
type Solution struct {
	Months int
	Capped bool // MaxMonths reached without meeting the target
	Method SolveMethod
}

// Years converts months to whole years, rounding up.
func (s Solution) Years() int {
	return fdec.CeilDiv(s.Months, 12)
}

// TimeToFire is the solved horizon together with the contribution that produced it
type TimeToFire struct {
	Solution
	// Contribution is the unrounded monthly contribution used by the solver.
	Contribution decimal.Decimal
}

// MonthlyContribution applies the contribution policy: 70% of the surplus, or 90%
// when 70% × 12 × 25 falls short of the fire number.
func MonthlyContribution(surplus, fireNumber decimal.Decimal) (decimal.Decimal, error) {
	if !surplus.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w (surplus %s)", domain.ErrInsufficientIncome, surplus.StringFixed(2))
	}
	contribution := surplus.Mul(BaseContributionShare)
	check := contribution.Mul(twelve).Mul(decimal.NewFromInt(FireMultiplier))
	if check.LessThan(fireNumber) {
		contribution = surplus.Mul(EscalatedContributionShare)
	}
	return contribution, nil
}

// SolveMonths finds the smallest whole number of months n for which
// FV <= PV·(1+r)^n + PMT·((1+r)^n − 1)/r.
//
// With no present value the closed form n = ln(1 + FV·r/PMT) / ln(1+r) is used
// (ceil(FV/PMT) when r is zero, reported exactly). A closed-form answer past
// MaxMonths comes back capped. A present value always goes through the monthly
// iteration, which stops at MaxMonths and flags the result as capped.
func SolveMonths(fv, pv, pmt, r decimal.Decimal) Solution {
	if pv.GreaterThanOrEqual(fv) {
		return Solution{Months: 0, Method: MethodAlreadyMet}
	}
	if pv.IsZero() && pmt.IsPositive() {
		if r.IsZero() {
			q, rem := fv.QuoRem(pmt, 0)
			months := q.IntPart()
			if rem.IsPositive() {
				months++
			}
			return Solution{Months: int(months), Method: MethodZeroRate}
		}
		if n, ok := closedFormMonths(fv, pmt, r); ok {
			if n > MaxMonths {
				return Solution{Months: MaxMonths, Capped: true, Method: MethodClosedForm}
			}
			return Solution{Months: n, Method: MethodClosedForm}
		}
	}
	return iterativeMonths(fv, pv, pmt, r)
}

// closedFormMonths evaluates the logarithm on floats for a first guess, then settles
// on the exact month with decimal accumulation.
func closedFormMonths(fv, pmt, r decimal.Decimal) (int, bool) {
	numerator := one.Add(fv.Mul(r).DivRound(pmt, fdec.Precision))
	base := one.Add(r)
	if !numerator.IsPositive() || !base.IsPositive() {
		return 0, false
	}

	nf, _ := numerator.Float64()
	bf, _ := base.Float64()
	guess := math.Log(nf) / math.Log(bf)
	if math.IsNaN(guess) || math.IsInf(guess, 0) {
		return 0, false
	}
	// Past the horizon the exact month is never reported, so skip the settle walk.
	if guess > MaxMonths+maxSettleSteps {
		return MaxMonths + 1, true
	}

	n := int(math.Ceil(guess))
	if n < 1 {
		n = 1
	}
	for i := 0; i < maxSettleSteps && n > 1 && reaches(fv, pmt, r, n-1); i++ {
		n--
	}
	for i := 0; !reaches(fv, pmt, r, n); i++ {
		if n > MaxMonths {
			return n, true
		}
		if i == maxSettleSteps {
			return 0, false
		}
		n++
	}
	return n, true
}

// withinHorizon caps a solution at MaxMonths. The zero-rate path of SolveMonths
// reports its exact answer, which callers must not project past the horizon.
func withinHorizon(sol Solution) Solution {
	if sol.Months > MaxMonths {
		sol.Months = MaxMonths
		sol.Capped = true
	}
	return sol
}

func reaches(fv, pmt, r decimal.Decimal, months int) bool {
	return fdec.Accumulate(decimal.Zero, pmt, r, months).GreaterThanOrEqual(fv)
}

func iterativeMonths(fv, pv, pmt, r decimal.Decimal) Solution {
	factor := one.Add(r)
	balance := pv
	months := 0
	for balance.LessThan(fv) && months < MaxMonths {
		balance = balance.Mul(factor).Round(fdec.Precision).Add(pmt)
		months++
	}
	return Solution{
		Months: months,
		Capped: balance.LessThan(fv),
		Method: MethodIterative,
	}
}

// TimeToFire applies the contribution policy to the request's surplus and solves
// for the months needed to grow current savings into fireNumber.
func (ce *CalculationEngine) TimeToFire(req domain.Request, a domain.Assumptions, fireNumber fdec.Money) (TimeToFire, error) {
	contribution, err := MonthlyContribution(req.MonthlySurplus(), fireNumber.Decimal)
	if err != nil {
		return TimeToFire{}, err
	}
	sol := withinHorizon(SolveMonths(fireNumber.Decimal, req.CurrentSavings, contribution, fdec.MonthlyRate(a.ExpectedReturn)))
	if sol.Capped {
		ce.Logger.Warnf("horizon capped at %d months: target %s not reached", MaxMonths, fireNumber)
	}
	ce.Logger.Debugf("time to fire: %d months via %s, contribution %s", sol.Months, sol.Method, contribution.StringFixed(2))
	return TimeToFire{Solution: sol, Contribution: contribution}, nil
}
