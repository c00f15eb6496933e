package output

import (
	"bytes"
	"fmt"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// ConsoleFormatter renders a styled terminal report.
type ConsoleFormatter struct {
	Options
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.FireResult) ([]byte, error) {
	sym := c.symbol()
	var buf bytes.Buffer

	fmt.Fprintln(&buf, renderTitle("FIRE PLAN"))
	fmt.Fprintln(&buf)

	const w = 24
	fmt.Fprintln(&buf, renderSection("SUMMARY"))
	fmt.Fprintln(&buf, renderKeyValue("FIRE number", FormatCurrency(sym, result.FireNumber), w))
	years := fmt.Sprintf("%d (age %d)", result.YearsToFire, result.TargetAge)
	if result.HorizonCapped {
		years = warnStyle.Render(years + " capped at horizon")
	}
	fmt.Fprintln(&buf, renderKeyValue("Years to FIRE", years, w))
	fmt.Fprintln(&buf, renderKeyValue("Monthly savings needed", FormatCurrency(sym, result.MonthlySavingsNeeded), w))
	fmt.Fprintln(&buf, renderKeyValue("Savings rate", FormatPercentage(result.SavingsRate), w))
	if final, ok := result.FinalEntry(); ok {
		fmt.Fprintln(&buf, renderKeyValue("Projected final amount", FormatCurrency(sym, final.AccumulatedAmount), w))
		fmt.Fprintln(&buf, renderKeyValue("In today's money", FormatCurrency(sym, final.InflationAdjustedAmount), w))
	}
	if d := result.DesiredAge; d != nil {
		needed := fmt.Sprintf("%s/month (%s)", FormatCurrency(sym, d.MonthlySavingsNeeded), FormatPercentage(d.SavingsRate))
		if !d.Affordable {
			needed = warnStyle.Render(needed + " above surplus")
		}
		fmt.Fprintln(&buf, renderKeyValue(fmt.Sprintf("To retire at %d", d.Age), needed, w))
	}
	fmt.Fprintln(&buf)

	rows := SummarizeScenarios(result, sym)
	if len(rows) > 0 {
		t := table{Title: "SCENARIOS", Headers: []string{"Scenario", "Target", "Years", "Age", "Notes"}}
		for _, r := range rows {
			if !r.Feasible {
				t.Rows = append(t.Rows, []string{r.Label, badStyle.Render("infeasible"), "-", "-", string(r.Reason)})
				continue
			}
			years := intToString(r.Years)
			if r.Capped {
				years += "+"
			}
			t.Rows = append(t.Rows, []string{r.Label, FormatCurrency(sym, r.Target), years, intToString(r.FireAge), r.Detail})
		}
		fmt.Fprint(&buf, renderTable(t))
		fmt.Fprintln(&buf)
	}

	if len(result.Projections) > 0 {
		t := table{Title: "PROJECTION", Headers: []string{"Year", "Age", "Accumulated", "Today's money", "Return"}}
		for _, p := range result.Projections {
			t.Rows = append(t.Rows, []string{
				intToString(p.Year),
				intToString(p.Age),
				FormatCurrency(sym, p.AccumulatedAmount),
				FormatCurrency(sym, p.InflationAdjustedAmount),
				FormatPercentage(p.AnnualReturn),
			})
		}
		fmt.Fprint(&buf, renderTable(t))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, renderSection("ASSUMPTIONS"))
	for _, a := range DescribeAssumptions(result.Assumptions, sym) {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}

	if len(result.Insights) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, renderSection("INSIGHTS"))
		for _, s := range result.Insights {
			fmt.Fprintf(&buf, "  %s %s\n", goodStyle.Render("•"), s)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, renderSection("WARNINGS"))
		for _, s := range result.Warnings {
			fmt.Fprintf(&buf, "  %s %s\n", warnStyle.Render("!"), s)
		}
	}
	return buf.Bytes(), nil
}
