package domain

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// Assumptions is the resolved parameter set used by one calculation
type Assumptions struct {
	ExpectedReturn        decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	InflationRate         decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	RealReturn            decimal.Decimal `yaml:"real_return" json:"real_return"`
	TargetMonthlyExpenses decimal.Decimal `yaml:"target_monthly_expenses" json:"target_monthly_expenses"`
	FireMultiplier        int             `yaml:"fire_multiplier" json:"fire_multiplier"`
	WithdrawalRate        decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`
	ConsiderTax           bool            `yaml:"consider_tax" json:"consider_tax"`
}

// AnnualTargetExpenses is the target monthly spending over a full year
func (a Assumptions) AnnualTargetExpenses() decimal.Decimal {
	return a.TargetMonthlyExpenses.Mul(decimal.NewFromInt(12))
}

// ProjectionEntry is the end-of-year state of the accumulation trajectory
type ProjectionEntry struct {
	Year                    int             `json:"year"` // 1-based index, not a calendar year
	Age                     int             `json:"age"`
	AccumulatedAmount       fdec.Money      `json:"accumulated_amount"`
	MonthlyContribution     fdec.Money      `json:"monthly_contribution"`
	AnnualReturn            decimal.Decimal `json:"annual_return"` // percent
	InflationAdjustedAmount fdec.Money      `json:"inflation_adjusted_amount"`
}

// FireResult is the complete output of a FIRE calculation
type FireResult struct {
	FireNumber           fdec.Money                 `json:"fire_number"`
	YearsToFire          int                        `json:"years_to_fire"`
	TargetAge            int                        `json:"target_age"`
	MonthlySavingsNeeded fdec.Money                 `json:"monthly_savings_needed"`
	SavingsRate          decimal.Decimal            `json:"savings_rate"` // percent of income, 2 decimals
	HorizonCapped        bool                       `json:"horizon_capped"`
	Projections          []ProjectionEntry          `json:"projections"`
	Scenarios            map[string]ScenarioOutcome `json:"scenarios"`
	Assumptions          Assumptions                `json:"assumptions"`
	DesiredAge           *DesiredAgePlan            `json:"desired_age,omitempty"`
	Insights             []string                   `json:"insights"`
	Warnings             []string                   `json:"warnings"`
}

// DesiredAgePlan is the monthly saving that reaches the fire number exactly by
// the age the user asked for. Only set when the request carries target_age.
type DesiredAgePlan struct {
	Age                  int             `json:"age"`
	Months               int             `json:"months"`
	MonthlySavingsNeeded fdec.Money      `json:"monthly_savings_needed"`
	SavingsRate          decimal.Decimal `json:"savings_rate"`
	Affordable           bool            `json:"affordable"` // fits within income minus expenses
}

// UnmarshalJSON restores the scenario variants from their keys and status.
func (r *FireResult) UnmarshalJSON(data []byte) error {
	type Alias FireResult
	aux := struct {
		*Alias
		Scenarios map[string]json.RawMessage `json:"scenarios"`
	}{Alias: (*Alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Scenarios = make(map[string]ScenarioOutcome, len(aux.Scenarios))
	for key, raw := range aux.Scenarios {
		outcome, err := DecodeScenarioOutcome(key, raw)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", key, err)
		}
		r.Scenarios[key] = outcome
	}
	return nil
}

// FinalEntry returns the last projection entry, or false when the projection is empty
func (r *FireResult) FinalEntry() (ProjectionEntry, bool) {
	if len(r.Projections) == 0 {
		return ProjectionEntry{}, false
	}
	return r.Projections[len(r.Projections)-1], true
}

// SavingsRatePercent returns contribution / income × 100 with two decimals.
// Zero income yields zero.
func SavingsRatePercent(contribution, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return contribution.Mul(decimal.NewFromInt(100)).DivRound(income, fdec.Precision).Round(2)
}
