package domain

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// Scenario names used as keys of FireResult.Scenarios.
const (
	ScenarioLean    = "lean_fire"
	ScenarioRegular = "regular_fire"
	ScenarioFat     = "fat_fire"
	ScenarioCoast   = "coast_fire"
	ScenarioBarista = "barista_fire"
)

// ScenarioNames lists every scenario key in report order.
var ScenarioNames = []string{ScenarioLean, ScenarioRegular, ScenarioFat, ScenarioCoast, ScenarioBarista}

const (
	statusFeasible   = "feasible"
	statusInfeasible = "infeasible"
)

// ScenarioOutcome is one slot of the scenario map. The set of implementations is
// closed: TierResult, CoastResult, BaristaResult and Infeasible.
type ScenarioOutcome interface {
	Feasible() bool
	scenarioOutcome()
}

// TierResult is a fixed-target-expense scenario that could be solved
type TierResult struct {
	FireNumber           fdec.Money      `json:"fire_number"`
	YearsToFire          int             `json:"years_to_fire"`
	MonthlySavingsNeeded fdec.Money      `json:"monthly_savings_needed"`
	MonthlyTarget        fdec.Money      `json:"monthly_target"`
	SavingsRate          decimal.Decimal `json:"savings_rate"`
	FireAge              int             `json:"fire_age"`
	HorizonCapped        bool            `json:"horizon_capped"`
}

// CoastResult describes the savings level after which contributions can stop
type CoastResult struct {
	CoastFireNumber  fdec.Money `json:"coast_fire_number"`
	CoastFireAge     int        `json:"coast_fire_age"`
	YearsToCoast     int        `json:"years_to_coast"`
	ReferenceAge     int        `json:"reference_age"`
	FinalAmountAtAge fdec.Money `json:"final_amount_at_reference_age"`
	HorizonCapped    bool       `json:"horizon_capped"`
}

// BaristaResult describes a half-size nest egg topped up by part-time work
type BaristaResult struct {
	BaristaFireNumber    fdec.Money `json:"barista_fire_number"`
	BaristaFireAge       int        `json:"barista_fire_age"`
	YearsToBarista       int        `json:"years_to_barista"`
	PartTimeIncomeNeeded fdec.Money `json:"part_time_income_needed"` // monthly
	PassiveIncome        fdec.Money `json:"passive_income"`          // monthly
	HorizonCapped        bool       `json:"horizon_capped"`
}

// Infeasible marks a scenario that could not be computed
type Infeasible struct {
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

// NewInfeasible builds the marker for err.
func NewInfeasible(err error) Infeasible {
	return Infeasible{Reason: ReasonFor(err), Message: err.Error()}
}

func (TierResult) Feasible() bool    { return true }
func (CoastResult) Feasible() bool   { return true }
func (BaristaResult) Feasible() bool { return true }
func (Infeasible) Feasible() bool    { return false }

func (TierResult) scenarioOutcome()    {}
func (CoastResult) scenarioOutcome()   {}
func (BaristaResult) scenarioOutcome() {}
func (Infeasible) scenarioOutcome()    {}

// MarshalJSON adds the status discriminator.
func (t TierResult) MarshalJSON() ([]byte, error) {
	type Alias TierResult
	return json.Marshal(struct {
		Status string `json:"status"`
		Alias
	}{statusFeasible, Alias(t)})
}

// MarshalJSON adds the status discriminator.
func (c CoastResult) MarshalJSON() ([]byte, error) {
	type Alias CoastResult
	return json.Marshal(struct {
		Status string `json:"status"`
		Alias
	}{statusFeasible, Alias(c)})
}

// MarshalJSON adds the status discriminator.
func (b BaristaResult) MarshalJSON() ([]byte, error) {
	type Alias BaristaResult
	return json.Marshal(struct {
		Status string `json:"status"`
		Alias
	}{statusFeasible, Alias(b)})
}

// MarshalJSON adds the status discriminator.
func (i Infeasible) MarshalJSON() ([]byte, error) {
	type Alias Infeasible
	return json.Marshal(struct {
		Status string `json:"status"`
		Alias
	}{statusInfeasible, Alias(i)})
}

// DecodeScenarioOutcome restores the variant stored under key from its JSON form.
func DecodeScenarioOutcome(key string, data []byte) (ScenarioOutcome, error) {
	var head struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	if head.Status == statusInfeasible {
		var o Infeasible
		err := json.Unmarshal(data, &o)
		return o, err
	}

	switch key {
	case ScenarioLean, ScenarioRegular, ScenarioFat:
		var o TierResult
		err := json.Unmarshal(data, &o)
		return o, err
	case ScenarioCoast:
		var o CoastResult
		err := json.Unmarshal(data, &o)
		return o, err
	case ScenarioBarista:
		var o BaristaResult
		err := json.Unmarshal(data, &o)
		return o, err
	default:
		return nil, fmt.Errorf("unknown scenario %q", key)
	}
}
