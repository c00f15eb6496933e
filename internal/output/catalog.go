package output

import (
	"fmt"
	"strings"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/store"
)

// RenderCatalog renders the tier, profile and investment-type reference tables.
func RenderCatalog(c calculation.Catalog, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	var b strings.Builder

	tiers := table{Title: "FIRE TIERS", Headers: []string{"Tier", "Monthly spending", "FIRE number", "Lifestyle"}}
	for _, t := range c.Tiers {
		tiers.Rows = append(tiers.Rows, []string{t.Name, FormatCurrency(symbol, t.MonthlyTarget), FormatCurrency(symbol, t.FireNumber), t.Lifestyle})
	}
	b.WriteString(renderTable(tiers))
	b.WriteString("\n")

	profiles := table{Title: "INVESTMENT PROFILES", Headers: []string{"Profile", "Return", "Risk", "Allocation"}}
	for _, p := range c.Profiles {
		profiles.Rows = append(profiles.Rows, []string{p.Name, FormatRate(p.ExpectedReturn), p.Risk, p.Allocation})
	}
	b.WriteString(renderTable(profiles))
	b.WriteString("\n")

	types := table{Title: "INVESTMENT TYPES", Headers: []string{"Class", "Product", "Risk", "Liquidity"}}
	for _, class := range c.InvestmentTypes {
		for _, it := range class.Types {
			types.Rows = append(types.Rows, []string{class.Name, it.Name, it.Risk, it.Liquidity})
		}
	}
	b.WriteString(renderTable(types))
	return b.String()
}

// RenderHistory renders stored calculations, newest first.
func RenderHistory(records []store.Record, symbol string) string {
	if len(records) == 0 {
		return "  No saved calculations.\n"
	}
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	t := table{Title: "CALCULATION HISTORY", Headers: []string{"ID", "Saved", "Age", "FIRE number", "Years", "FIRE age"}}
	for _, r := range records {
		years := intToString(r.YearsToFire)
		if r.HorizonCapped {
			years += "+"
		}
		t.Rows = append(t.Rows, []string{
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprint(r.Request.CurrentAge),
			FormatCurrency(symbol, r.FireNumber),
			years,
			intToString(r.TargetAge),
		})
	}
	return renderTable(t)
}
