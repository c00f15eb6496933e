package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// CoastReferenceAge is the age at which a Coast-FIRE portfolio must reach the fire number.
const CoastReferenceAge = 65

var (
	// BaristaShare is the fraction of the full fire number targeted by Barista-FIRE.
	BaristaShare = decimal.RequireFromString("0.5")
	// PassiveWithdrawalRate is the annual withdrawal taken from the Barista-FIRE portfolio.
	PassiveWithdrawalRate = decimal.RequireFromString("0.04")
)

// Tier is a fixed target-expense scenario
type Tier struct {
	Name          string
	MonthlyTarget decimal.Decimal
}

// Tiers are the lean, regular and fat monthly spending targets.
var Tiers = []Tier{
	{Name: domain.ScenarioLean, MonthlyTarget: decimal.NewFromInt(3000)},
	{Name: domain.ScenarioRegular, MonthlyTarget: decimal.NewFromInt(6000)},
	{Name: domain.ScenarioFat, MonthlyTarget: decimal.NewFromInt(15000)},
}

type tierFunc func(req domain.Request, tier Tier) (domain.ScenarioOutcome, error)

// RunScenarios computes every tier plus Coast-FIRE and Barista-FIRE. Each entry
// is computed independently; a failure is recorded as domain.Infeasible in its
// own slot and never affects the others.
func (ce *CalculationEngine) RunScenarios(req domain.Request) map[string]domain.ScenarioOutcome {
	runTier := ce.runTier
	if runTier == nil {
		runTier = ce.tierScenario
	}

	results := make(map[string]domain.ScenarioOutcome, len(Tiers)+2)
	for _, tier := range Tiers {
		results[tier.Name] = ce.isolate(tier.Name, func() (domain.ScenarioOutcome, error) {
			return runTier(req, tier)
		})
	}
	results[domain.ScenarioCoast] = ce.isolate(domain.ScenarioCoast, func() (domain.ScenarioOutcome, error) {
		return ce.CoastFire(req)
	})
	results[domain.ScenarioBarista] = ce.isolate(domain.ScenarioBarista, func() (domain.ScenarioOutcome, error) {
		return ce.BaristaFire(req)
	})
	return results
}

// isolate converts an error or a panic in one scenario into an Infeasible marker.
func (ce *CalculationEngine) isolate(name string, run func() (domain.ScenarioOutcome, error)) (out domain.ScenarioOutcome) {
	defer func() {
		if r := recover(); r != nil {
			ce.Logger.Errorf("scenario %s panicked: %v", name, r)
			out = domain.Infeasible{Reason: domain.ReasonInternal, Message: fmt.Sprint(r)}
		}
	}()

	outcome, err := run()
	if err != nil {
		ce.Logger.Infof("scenario %s infeasible: %v", name, err)
		return domain.NewInfeasible(err)
	}
	return outcome
}

// tierScenario runs the primary pipeline with the tier's target expenses.
func (ce *CalculationEngine) tierScenario(req domain.Request, tier Tier) (domain.ScenarioOutcome, error) {
	scenarioReq := req.WithTargetExpenses(tier.MonthlyTarget)

	a, err := ce.ResolveAssumptions(scenarioReq)
	if err != nil {
		return nil, err
	}
	fireNumber := FireNumber(a)
	ttf, err := ce.TimeToFire(scenarioReq, a, fireNumber)
	if err != nil {
		return nil, err
	}

	savings := fdec.RoundCents(ttf.Contribution)
	years := ttf.Years()
	return domain.TierResult{
		FireNumber:           fireNumber,
		YearsToFire:          years,
		MonthlySavingsNeeded: savings,
		MonthlyTarget:        fdec.RoundCents(tier.MonthlyTarget),
		SavingsRate:          domain.SavingsRatePercent(savings.Decimal, req.MonthlyIncome),
		FireAge:              req.CurrentAge + years,
		HorizonCapped:        ttf.Capped,
	}, nil
}

// CoastFire computes the savings level that, left untouched, compounds into the
// full fire number by CoastReferenceAge.
func (ce *CalculationEngine) CoastFire(req domain.Request) (domain.ScenarioOutcome, error) {
	yearsLeft := CoastReferenceAge - req.CurrentAge
	if yearsLeft <= 0 {
		return nil, fmt.Errorf("%w: age %d, reference age %d", domain.ErrAgeExceeded, req.CurrentAge, CoastReferenceAge)
	}

	a, err := ce.ResolveAssumptions(req)
	if err != nil {
		return nil, err
	}
	fireNumber := FireNumber(a)
	coastNumber := fireNumber.Decimal.DivRound(fdec.Growth(a.ExpectedReturn, yearsLeft), fdec.Precision)

	sol, err := solveRemaining(req, coastNumber, a.ExpectedReturn)
	if err != nil {
		return nil, err
	}
	years := sol.Years()
	return domain.CoastResult{
		CoastFireNumber:  fdec.RoundCents(coastNumber),
		CoastFireAge:     req.CurrentAge + years,
		YearsToCoast:     years,
		ReferenceAge:     CoastReferenceAge,
		FinalAmountAtAge: fireNumber,
		HorizonCapped:    sol.Capped,
	}, nil
}

// BaristaFire computes a half-size nest egg whose withdrawals are topped up by
// part-time income.
func (ce *CalculationEngine) BaristaFire(req domain.Request) (domain.ScenarioOutcome, error) {
	a, err := ce.ResolveAssumptions(req)
	if err != nil {
		return nil, err
	}
	fireNumber := FireNumber(a)
	baristaNumber := fireNumber.Decimal.Mul(BaristaShare)
	annualPassive := baristaNumber.Mul(PassiveWithdrawalRate)
	partTime := a.AnnualTargetExpenses().Sub(annualPassive).DivRound(twelve, fdec.Precision)

	sol, err := solveRemaining(req, baristaNumber, a.ExpectedReturn)
	if err != nil {
		return nil, err
	}
	years := sol.Years()
	return domain.BaristaResult{
		BaristaFireNumber:    fdec.RoundCents(baristaNumber),
		BaristaFireAge:       req.CurrentAge + years,
		YearsToBarista:       years,
		PartTimeIncomeNeeded: fdec.RoundCents(partTime),
		PassiveIncome:        fdec.RoundCents(annualPassive.DivRound(twelve, fdec.Precision)),
		HorizonCapped:        sol.Capped,
	}, nil
}

// solveRemaining solves for the gap between current savings and target, saving the
// whole monthly surplus from zero. Savings already at target need zero months.
func solveRemaining(req domain.Request, target, annualReturn decimal.Decimal) (Solution, error) {
	if req.CurrentSavings.GreaterThanOrEqual(target) {
		return Solution{Method: MethodAlreadyMet}, nil
	}
	surplus := req.MonthlySurplus()
	if !surplus.IsPositive() {
		return Solution{}, fmt.Errorf("%w (surplus %s)", domain.ErrInsufficientIncome, surplus.StringFixed(2))
	}
	return withinHorizon(SolveMonths(target.Sub(req.CurrentSavings), decimal.Zero, surplus, fdec.MonthlyRate(annualReturn))), nil
}
