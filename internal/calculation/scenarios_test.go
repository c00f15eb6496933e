package calculation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/domain"
)

func TestRunScenariosExampleA(t *testing.T) {
	scenarios := NewCalculationEngine().RunScenarios(exampleARequest())
	require.Len(t, scenarios, 5)
	for _, name := range domain.ScenarioNames {
		require.Contains(t, scenarios, name)
		assert.True(t, scenarios[name].Feasible(), name)
	}

	tiers := []struct {
		name       string
		fireNumber string
		years      int
	}{
		{domain.ScenarioLean, "1035000.00", 15},
		{domain.ScenarioRegular, "2070000.00", 21},
		{domain.ScenarioFat, "5175000.00", 30},
	}
	for _, tt := range tiers {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := scenarios[tt.name].(domain.TierResult)
			require.True(t, ok)
			assert.Equal(t, tt.fireNumber, tier.FireNumber.String())
			assert.Equal(t, tt.years, tier.YearsToFire)
			assert.Equal(t, 30+tt.years, tier.FireAge)
			assert.Equal(t, "2700.00", tier.MonthlySavingsNeeded.String())
			assert.Equal(t, "33.75", tier.SavingsRate.StringFixed(2))
			assert.False(t, tier.HorizonCapped)
		})
	}

	coast, ok := scenarios[domain.ScenarioCoast].(domain.CoastResult)
	require.True(t, ok)
	assert.Equal(t, "61382.58", coast.CoastFireNumber.String())
	assert.Equal(t, 2, coast.YearsToCoast)
	assert.Equal(t, 32, coast.CoastFireAge)
	assert.Equal(t, 65, coast.ReferenceAge)
	assert.Equal(t, "1725000.00", coast.FinalAmountAtAge.String())

	barista, ok := scenarios[domain.ScenarioBarista].(domain.BaristaResult)
	require.True(t, ok)
	assert.Equal(t, "862500.00", barista.BaristaFireNumber.String())
	assert.Equal(t, 13, barista.YearsToBarista)
	assert.Equal(t, 43, barista.BaristaFireAge)
	assert.Equal(t, "2875.00", barista.PassiveIncome.String())
	assert.Equal(t, "2125.00", barista.PartTimeIncomeNeeded.String())
}

func TestCoastFireAlreadyCoasting(t *testing.T) {
	req := exampleARequest()
	req.CurrentSavings = dec("100000")

	out, err := NewCalculationEngine().CoastFire(req)
	require.NoError(t, err)
	coast := out.(domain.CoastResult)
	assert.Equal(t, 0, coast.YearsToCoast)
	assert.Equal(t, 30, coast.CoastFireAge)

	// one cent above the reported coast number is enough
	req.CurrentSavings = coast.CoastFireNumber.Decimal.Add(dec("0.01"))
	out, err = NewCalculationEngine().CoastFire(req)
	require.NoError(t, err)
	assert.Equal(t, 0, out.(domain.CoastResult).YearsToCoast)
}

func TestCoastFireAgeExceeded(t *testing.T) {
	// Example C
	req := exampleARequest()
	req.CurrentAge = 66

	scenarios := NewCalculationEngine().RunScenarios(req)

	coast, ok := scenarios[domain.ScenarioCoast].(domain.Infeasible)
	require.True(t, ok, "coast_fire should be infeasible")
	assert.Equal(t, domain.ReasonAgeExceeded, coast.Reason)
	assert.Contains(t, coast.Message, "66")

	for _, name := range []string{domain.ScenarioLean, domain.ScenarioRegular, domain.ScenarioFat, domain.ScenarioBarista} {
		assert.True(t, scenarios[name].Feasible(), name)
	}

	_, err := NewCalculationEngine().CoastFire(domain.Request{CurrentAge: 65})
	assert.ErrorIs(t, err, domain.ErrAgeExceeded)
}

func TestRunScenariosFatTierIsolation(t *testing.T) {
	baseline := NewCalculationEngine().RunScenarios(exampleARequest())

	engine := NewCalculationEngine()
	engine.runTier = func(req domain.Request, tier Tier) (domain.ScenarioOutcome, error) {
		if tier.Name == domain.ScenarioFat {
			return nil, fmt.Errorf("fat tier: %w", domain.ErrInsufficientIncome)
		}
		return engine.tierScenario(req, tier)
	}
	got := engine.RunScenarios(exampleARequest())

	require.Len(t, got, 5)
	fat, ok := got[domain.ScenarioFat].(domain.Infeasible)
	require.True(t, ok)
	assert.Equal(t, domain.ReasonInsufficientIncome, fat.Reason)

	for _, name := range []string{domain.ScenarioLean, domain.ScenarioRegular, domain.ScenarioCoast, domain.ScenarioBarista} {
		assert.Equal(t, baseline[name], got[name], name)
	}
}

func TestRunScenariosPanicIsIsolated(t *testing.T) {
	engine := NewCalculationEngine()
	engine.runTier = func(req domain.Request, tier Tier) (domain.ScenarioOutcome, error) {
		if tier.Name == domain.ScenarioLean {
			panic("boom")
		}
		return engine.tierScenario(req, tier)
	}
	got := engine.RunScenarios(exampleARequest())

	lean, ok := got[domain.ScenarioLean].(domain.Infeasible)
	require.True(t, ok)
	assert.Equal(t, domain.ReasonInternal, lean.Reason)
	assert.True(t, got[domain.ScenarioRegular].Feasible())
}

func TestRunScenariosInsufficientIncome(t *testing.T) {
	req := exampleARequest()
	req.MonthlyExpenses = dec("8000")
	req.CurrentSavings = dec("5000000")

	got := NewCalculationEngine().RunScenarios(req)

	for _, name := range []string{domain.ScenarioLean, domain.ScenarioRegular, domain.ScenarioFat} {
		inf, ok := got[name].(domain.Infeasible)
		require.True(t, ok, name)
		assert.Equal(t, domain.ReasonInsufficientIncome, inf.Reason, name)
	}
	// savings already cover both structural variants, no surplus needed
	assert.Equal(t, 0, got[domain.ScenarioCoast].(domain.CoastResult).YearsToCoast)
	assert.Equal(t, 0, got[domain.ScenarioBarista].(domain.BaristaResult).YearsToBarista)
}
