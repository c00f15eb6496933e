package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/insights"
)

func exampleA() domain.Request {
	return domain.Request{
		CurrentAge:        30,
		CurrentSavings:    decimal.Zero,
		MonthlyIncome:     decimal.NewFromInt(8000),
		MonthlyExpenses:   decimal.NewFromInt(5000),
		InvestmentProfile: domain.ProfileModerate,
		ConsiderTax:       true,
	}
}

func TestPlanExampleA(t *testing.T) {
	p := New(calculation.NewCalculationEngine(), nil, nil)

	result, err := p.Plan(context.Background(), exampleA())
	require.NoError(t, err)

	assert.Equal(t, "1725000.00", result.FireNumber.String())
	assert.Equal(t, "2700.00", result.MonthlySavingsNeeded.String())
	assert.Equal(t, insights.Fallback(insights.NewSummary(exampleA(), result)), result.Insights)
	assert.Equal(t, insights.GeneralWarnings, result.Warnings)
}

func TestPlanRejectsInvalidRequest(t *testing.T) {
	req := exampleA()
	req.MonthlyIncome = decimal.NewFromInt(5000)
	req.MonthlyExpenses = decimal.NewFromInt(5100)

	result, err := New(calculation.NewCalculationEngine(), nil, nil).Plan(context.Background(), req)
	assert.Nil(t, result)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "monthly_expenses", verrs[0].Field)
}

func TestPlanReturnsNumbersWhenInsightsTimeOut(t *testing.T) {
	slow := insights.GeneratorFunc(func(ctx context.Context, _ insights.Summary) ([]string, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return []string{"late"}, nil
		}
	})
	p := New(calculation.NewCalculationEngine(), insights.NewEnricher(slow, 10*time.Millisecond, nil), nil)

	result, err := p.Plan(context.Background(), exampleA())
	require.NoError(t, err)
	assert.Equal(t, "1725000.00", result.FireNumber.String())
	assert.NotEmpty(t, result.Insights)
	assert.NotContains(t, result.Insights, "late")
}

func TestPlanUsesPrimaryInsights(t *testing.T) {
	primary := insights.GeneratorFunc(func(_ context.Context, s insights.Summary) ([]string, error) {
		return []string{"fire at " + decimal.NewFromInt(int64(s.FireAge)).String()}, nil
	})
	p := New(calculation.NewCalculationEngine(), insights.NewEnricher(primary, time.Second, nil), nil)

	result, err := p.Plan(context.Background(), exampleA())
	require.NoError(t, err)
	assert.Equal(t, []string{"fire at 49"}, result.Insights)
}

func TestPlanDesiredAgeWarning(t *testing.T) {
	req := exampleA()
	desired := 45
	req.TargetAge = &desired

	result, err := New(calculation.NewCalculationEngine(), nil, nil).Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "Projected FIRE age 49 is later than your desired age 45.")
}
