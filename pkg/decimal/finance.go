package decimal

import (
	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits carried by intermediate values
// (growth factors, roots, balances while compounding). Only reported amounts are
// rounded to cents.
const Precision int32 = 20

// maxRootIterations bounds the Newton iteration in NthRoot.
const maxRootIterations = 200

var one = decimal.NewFromInt(1)

// PowInt raises base to an integer power by repeated squaring, keeping Precision
// fractional digits on every product.
func PowInt(base decimal.Decimal, n int) decimal.Decimal {
	if n < 0 {
		return one.DivRound(PowInt(base, -n), Precision)
	}
	result := one
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(b).Round(Precision)
		}
		n >>= 1
		if n > 0 {
			b = b.Mul(b).Round(Precision)
		}
	}
	return result
}

// Growth returns the compound growth factor (1+rate)^periods.
func Growth(rate decimal.Decimal, periods int) decimal.Decimal {
	return PowInt(one.Add(rate), periods)
}

// NthRoot returns the positive n-th root of x using Newton's method.
// Non-positive x yields zero.
func NthRoot(x decimal.Decimal, n int) decimal.Decimal {
	if n <= 1 {
		return x
	}
	if !x.IsPositive() {
		return decimal.Zero
	}

	nd := decimal.NewFromInt(int64(n))
	nm1 := decimal.NewFromInt(int64(n - 1))
	work := Precision + 4
	tolerance := decimal.New(1, -Precision)

	// 1 + (x-1)/n never undershoots the root (Bernoulli), so Newton descends monotonically.
	guess := one.Add(x.Sub(one).DivRound(nd, work))
	for i := 0; i < maxRootIterations; i++ {
		next := nm1.Mul(guess).Add(x.DivRound(PowInt(guess, n-1), work)).DivRound(nd, work)
		done := next.Sub(guess).Abs().LessThanOrEqual(tolerance)
		guess = next
		if done {
			break
		}
	}
	return guess.Round(Precision)
}

// MonthlyRate converts a nominal annual return into its monthly compounding
// equivalent: (1+annual)^(1/12) - 1.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return NthRoot(one.Add(annual), 12).Sub(one)
}

// Accumulate compounds pv for the given number of months, adding pmt at the end
// of each month.
func Accumulate(pv, pmt, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	factor := one.Add(monthlyRate)
	balance := pv
	for i := 0; i < months; i++ {
		balance = balance.Mul(factor).Round(Precision).Add(pmt)
	}
	return balance
}

// CeilDiv divides two non-negative integers rounding up.
func CeilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
