package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// CSVProjectionExporter writes one row per projected year.
type CSVProjectionExporter struct{}

func (c CSVProjectionExporter) Name() string      { return "csv" }
func (c CSVProjectionExporter) Extension() string { return "csv" }

func (c CSVProjectionExporter) Format(result *domain.FireResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"year", "age", "accumulated_amount", "monthly_contribution", "annual_return", "inflation_adjusted_amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range result.Projections {
		row := []string{
			intToString(p.Year),
			intToString(p.Age),
			p.AccumulatedAmount.String(),
			p.MonthlyContribution.String(),
			p.AnnualReturn.StringFixed(2),
			p.InflationAdjustedAmount.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVScenarioSummarizer writes one row per scenario in report order.
type CSVScenarioSummarizer struct{}

func (c CSVScenarioSummarizer) Name() string      { return "scenarios-csv" }
func (c CSVScenarioSummarizer) Extension() string { return "csv" }

func (c CSVScenarioSummarizer) Format(result *domain.FireResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"scenario", "feasible", "target", "monthly_savings", "years", "fire_age", "horizon_capped", "reason"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range SummarizeScenarios(result, "") {
		row := []string{r.Key, boolToString(r.Feasible), "", "", "", "", "", string(r.Reason)}
		if r.Feasible {
			row[2] = r.Target.String()
			if r.MonthlySavings.IsPositive() {
				row[3] = r.MonthlySavings.String()
			}
			row[4] = intToString(r.Years)
			row[5] = intToString(r.FireAge)
			row[6] = boolToString(r.Capped)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
