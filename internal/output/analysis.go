package output

import (
	"fmt"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// ScenarioRow flattens one scenario outcome for tabular reports.
type ScenarioRow struct {
	Key            string
	Label          string
	Feasible       bool
	Target         fdec.Money // nest egg the scenario aims for
	MonthlySavings fdec.Money // zero for coast and barista
	Years          int
	FireAge        int
	Capped         bool
	Reason         domain.Reason
	Detail         string
}

var scenarioLabels = map[string]string{
	domain.ScenarioLean:    "Lean FIRE",
	domain.ScenarioRegular: "Regular FIRE",
	domain.ScenarioFat:     "Fat FIRE",
	domain.ScenarioCoast:   "Coast FIRE",
	domain.ScenarioBarista: "Barista FIRE",
}

// SummarizeScenarios returns one row per scenario present in result, in report order.
func SummarizeScenarios(result *domain.FireResult, symbol string) []ScenarioRow {
	rows := make([]ScenarioRow, 0, len(result.Scenarios))
	for _, key := range domain.ScenarioNames {
		outcome, ok := result.Scenarios[key]
		if !ok {
			continue
		}
		row := ScenarioRow{Key: key, Label: scenarioLabels[key], Feasible: outcome.Feasible()}

		switch o := outcome.(type) {
		case domain.TierResult:
			row.Target = o.FireNumber
			row.MonthlySavings = o.MonthlySavingsNeeded
			row.Years = o.YearsToFire
			row.FireAge = o.FireAge
			row.Capped = o.HorizonCapped
			row.Detail = fmt.Sprintf("spending %s/month", FormatCurrency(symbol, o.MonthlyTarget))
		case domain.CoastResult:
			row.Target = o.CoastFireNumber
			row.Years = o.YearsToCoast
			row.FireAge = o.CoastFireAge
			row.Capped = o.HorizonCapped
			row.Detail = fmt.Sprintf("grows to %s by age %d", FormatCurrency(symbol, o.FinalAmountAtAge), o.ReferenceAge)
		case domain.BaristaResult:
			row.Target = o.BaristaFireNumber
			row.Years = o.YearsToBarista
			row.FireAge = o.BaristaFireAge
			row.Capped = o.HorizonCapped
			row.Detail = fmt.Sprintf("part-time %s/month", FormatCurrency(symbol, o.PartTimeIncomeNeeded))
		case domain.Infeasible:
			row.Reason = o.Reason
			row.Detail = o.Message
		}
		rows = append(rows, row)
	}
	return rows
}
