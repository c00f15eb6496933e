package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

func TestBreakEvenContributionZeroRate(t *testing.T) {
	tests := []struct {
		name   string
		fv, pv string
		months int
		want   string
	}{
		{"exact", "1200", "0", 12, "100.00"},
		{"rounds up to the cent", "1000", "0", 12, "83.34"},
		{"savings cover part", "1200", "600", 12, "50.00"},
		{"savings cover all", "1200", "1500", 12, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BreakEvenContribution(dec(tt.fv), dec(tt.pv), decimal.Zero, tt.months)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestBreakEvenContributionIsMinimal(t *testing.T) {
	fv := dec("1725000")
	r := fdec.MonthlyRate(dec("0.08"))

	got, err := BreakEvenContribution(fv, decimal.Zero, r, 180)
	require.NoError(t, err)

	assert.InDelta(t, 5109.50, got.InexactFloat64(), 0.1)
	assert.True(t, fdec.Accumulate(decimal.Zero, got, r, 180).GreaterThanOrEqual(fv))
	assert.True(t, fdec.Accumulate(decimal.Zero, got.Sub(dec("0.01")), r, 180).LessThan(fv))
}

func TestBreakEvenContributionErrors(t *testing.T) {
	_, err := BreakEvenContribution(dec("1000"), decimal.Zero, decimal.Zero, 0)
	assert.ErrorContains(t, err, "months must be positive")

	_, err = BreakEvenContribution(dec("1000"), decimal.Zero, dec("-1"), 12)
	assert.ErrorContains(t, err, "greater than -1")

	_, err = BreakEvenContribution(dec("1000"), dec("-5"), decimal.Zero, 12)
	assert.ErrorContains(t, err, "must not be negative")
}

func TestCalculateDesiredAgePlan(t *testing.T) {
	ce := NewCalculationEngine()

	result, err := ce.Calculate(exampleARequest())
	require.NoError(t, err)
	assert.Nil(t, result.DesiredAge, "no target age, no plan")

	req := exampleARequest()
	req.TargetAge = ptr(60)
	result, err = ce.Calculate(req)
	require.NoError(t, err)
	require.NotNil(t, result.DesiredAge)
	assert.Equal(t, 60, result.DesiredAge.Age)
	assert.Equal(t, 360, result.DesiredAge.Months)
	assert.InDelta(t, 836.23, result.DesiredAge.MonthlySavingsNeeded.InexactFloat64(), 0.1)
	assert.True(t, result.DesiredAge.Affordable)
	assert.Equal(t, 49, result.TargetAge, "desired age does not change the projected age")

	req.TargetAge = ptr(45)
	result, err = ce.Calculate(req)
	require.NoError(t, err)
	require.NotNil(t, result.DesiredAge)
	assert.InDelta(t, 4329.35, result.DesiredAge.MonthlySavingsNeeded.InexactFloat64(), 0.1)
	assert.False(t, result.DesiredAge.Affordable)
	assert.InDelta(t, 54.12, result.DesiredAge.SavingsRate.InexactFloat64(), 0.01)
}
