// Package insights produces the narrative insight strings and the rule-based
// warnings attached to a FIRE result. It runs outside the calculation core.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// MaxInsights caps the number of strings taken from a generator.
const MaxInsights = 5

// Summary is the subset of a calculation an insight generator sees
type Summary struct {
	CurrentAge      int
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	CurrentSavings  decimal.Decimal
	MonthlySavings  fdec.Money
	SavingsRate     decimal.Decimal // percent
	YearsToFire     int
	FireAge         int
}

// NewSummary extracts the generator input from a request and its result.
func NewSummary(req domain.Request, result *domain.FireResult) Summary {
	return Summary{
		CurrentAge:      req.CurrentAge,
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
		CurrentSavings:  req.CurrentSavings,
		MonthlySavings:  result.MonthlySavingsNeeded,
		SavingsRate:     result.SavingsRate,
		YearsToFire:     result.YearsToFire,
		FireAge:         result.TargetAge,
	}
}

// Generator produces human-readable insights for a calculation.
// Implementations may block and must honour ctx.
type Generator interface {
	Generate(ctx context.Context, s Summary) ([]string, error)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(ctx context.Context, s Summary) ([]string, error)

func (f GeneratorFunc) Generate(ctx context.Context, s Summary) ([]string, error) {
	return f(ctx, s)
}

var (
	highRate = decimal.NewFromInt(50)
	goodRate = decimal.NewFromInt(30)
)

// RuleBased is the static generator used when no other generator is available or it fails
type RuleBased struct{}

func (RuleBased) Generate(_ context.Context, s Summary) ([]string, error) {
	return Fallback(s), nil
}

// Fallback returns the static insight list for s.
func Fallback(s Summary) []string {
	var out []string

	switch {
	case s.SavingsRate.GreaterThan(highRate):
		out = append(out, "Excellent! Your high savings rate significantly accelerates FIRE.")
	case s.SavingsRate.GreaterThan(goodRate):
		out = append(out, "Good savings rate. Consider trimming expenses to speed up the process.")
	default:
		out = append(out, "Low savings rate. Focus on reducing expenses or increasing income.")
	}

	switch {
	case s.YearsToFire > 20:
		out = append(out, "Long road to FIRE. Consider more aggressive saving strategies.")
	case s.YearsToFire < 10:
		out = append(out, "Short road to FIRE! You are on the right track.")
	}

	if s.CurrentAge > 35 {
		out = append(out, "Starting FIRE after 35 calls for focused strategies. Prioritise higher-return investments.")
	}

	out = append(out, "Diversify across Tesouro Direto, stocks and real-estate funds (FIIs) to optimise returns.")
	return out
}

// ErrNoInsights is returned by a generator that produced nothing usable.
var ErrNoInsights = errors.New("generator returned no insights")

// Enricher runs a primary generator under a deadline and falls back to the
// rule-based list on error, timeout or empty output.
type Enricher struct {
	Primary Generator
	Timeout time.Duration
	Logger  calculation.Logger
}

// NewEnricher returns an enricher; a nil primary means the rule-based list is always used.
func NewEnricher(primary Generator, timeout time.Duration, logger calculation.Logger) *Enricher {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Enricher{Primary: primary, Timeout: timeout, Logger: logger}
}

// Insights always returns a non-empty list.
func (e *Enricher) Insights(ctx context.Context, s Summary) []string {
	if e == nil || e.Primary == nil {
		return Fallback(s)
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	type reply struct {
		insights []string
		err      error
	}
	done := make(chan reply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- reply{err: fmt.Errorf("insight generator panicked: %v", r)}
			}
		}()
		insights, err := e.Primary.Generate(ctx, s)
		done <- reply{insights, err}
	}()

	select {
	case <-ctx.Done():
		e.Logger.Warnf("insight generation abandoned: %v", ctx.Err())
		return Fallback(s)
	case r := <-done:
		if r.err == nil && len(r.insights) == 0 {
			r.err = ErrNoInsights
		}
		if r.err != nil {
			e.Logger.Warnf("insight generation failed, using fallback: %v", r.err)
			return Fallback(s)
		}
		if len(r.insights) > MaxInsights {
			r.insights = r.insights[:MaxInsights]
		}
		return r.insights
	}
}
