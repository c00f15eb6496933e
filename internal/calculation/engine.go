package calculation

import (
	"fmt"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// CalculationEngine orchestrates FIRE calculations. It holds no per-request state
// and is safe for concurrent use once configured.
type CalculationEngine struct {
	defaults Defaults
	Logger   Logger

	// runTier replaces the tier pipeline in tests.
	runTier tierFunc
}

// NewCalculationEngine creates a new calculation engine with the default assumption table
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithDefaults(DefaultAssumptionTable())
}

// NewCalculationEngineWithDefaults creates a new calculation engine with a custom assumption table
func NewCalculationEngineWithDefaults(d Defaults) *CalculationEngine {
	return &CalculationEngine{
		defaults: d,
		Logger:   NopLogger{},
	}
}

// Defaults returns the assumption table the engine resolves requests against.
func (ce *CalculationEngine) Defaults() Defaults {
	return ce.defaults
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs the primary pipeline followed by the scenario batch. A failure in
// the primary pipeline aborts the call; scenario failures are recorded inline.
// Insights and warnings are left empty for the caller to fill.
func (ce *CalculationEngine) Calculate(req domain.Request) (*domain.FireResult, error) {
	a, err := ce.ResolveAssumptions(req)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assumptions: %w", err)
	}

	fireNumber := FireNumber(a)
	ttf, err := ce.TimeToFire(req, a, fireNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to solve time to fire: %w", err)
	}

	years := ttf.Years()
	savings := fdec.RoundCents(ttf.Contribution)
	projections := GenerateProjection(ProjectionInput{
		CurrentAge:     req.CurrentAge,
		CurrentSavings: req.CurrentSavings,
		Contribution:   ttf.Contribution,
		AnnualReturn:   a.ExpectedReturn,
		InflationRate:  a.InflationRate,
		Years:          years,
	})

	desired, err := ce.DesiredAgePlan(req, a, fireNumber)
	if err != nil {
		return nil, err
	}

	ce.Logger.Infof("fire number %s reached in %d years (age %d)", fireNumber, years, req.CurrentAge+years)

	return &domain.FireResult{
		FireNumber:           fireNumber,
		YearsToFire:          years,
		TargetAge:            req.CurrentAge + years,
		MonthlySavingsNeeded: savings,
		SavingsRate:          domain.SavingsRatePercent(savings.Decimal, req.MonthlyIncome),
		HorizonCapped:        ttf.Capped,
		Projections:          projections,
		Scenarios:            ce.RunScenarios(req),
		Assumptions:          a,
		DesiredAge:           desired,
		Insights:             []string{},
		Warnings:             []string{},
	}, nil
}
