package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// TierInfo describes a spending tier for display
type TierInfo struct {
	Key           string     `json:"key"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	MonthlyTarget fdec.Money `json:"monthly_target"`
	FireNumber    fdec.Money `json:"fire_number"` // 25x rule, no tax loading
	Lifestyle     string     `json:"lifestyle"`
}

// ProfileInfo describes an investment profile and its default return
type ProfileInfo struct {
	Profile        domain.InvestmentProfile `json:"profile"`
	Name           string                   `json:"name"`
	ExpectedReturn decimal.Decimal          `json:"expected_return"`
	Risk           string                   `json:"risk"`
	Allocation     string                   `json:"allocation"`
}

// InvestmentType is a product available to Brazilian investors
type InvestmentType struct {
	Name      string `json:"name"`
	Risk      string `json:"risk"`
	Liquidity string `json:"liquidity"`
}

// InvestmentClass groups investment types
type InvestmentClass struct {
	Key   string           `json:"key"`
	Name  string           `json:"name"`
	Types []InvestmentType `json:"types"`
}

// Catalog is the static reference data served alongside calculations
type Catalog struct {
	Tiers           []TierInfo        `json:"scenarios"`
	Profiles        []ProfileInfo     `json:"investment_profiles"`
	InvestmentTypes []InvestmentClass `json:"investment_types"`
}

var tierText = map[string]struct{ name, description, lifestyle string }{
	domain.ScenarioLean:    {"Lean FIRE", "Simple living with reduced spending", "Minimalist"},
	domain.ScenarioRegular: {"Regular FIRE", "Comfortable living without luxuries", "Standard"},
	domain.ScenarioFat:     {"Fat FIRE", "Luxurious living without restrictions", "Luxury"},
}

var profileText = map[domain.InvestmentProfile]struct{ name, risk, allocation string }{
	domain.ProfileConservative: {"Conservative", "Low", "70% fixed income, 30% equities"},
	domain.ProfileModerate:     {"Moderate", "Medium", "50% fixed income, 50% equities"},
	domain.ProfileAggressive:   {"Aggressive", "High", "30% fixed income, 70% equities"},
}

// InvestmentClasses lists the investment types by asset class.
var InvestmentClasses = []InvestmentClass{
	{Key: "renda_fixa", Name: "Fixed income", Types: []InvestmentType{
		{Name: "Tesouro Selic", Risk: "low", Liquidity: "high"},
		{Name: "Tesouro IPCA+", Risk: "low", Liquidity: "medium"},
		{Name: "CDB", Risk: "low", Liquidity: "medium"},
		{Name: "LCI/LCA", Risk: "low", Liquidity: "low"},
		{Name: "Poupança", Risk: "low", Liquidity: "high"},
	}},
	{Key: "renda_variavel", Name: "Equities", Types: []InvestmentType{
		{Name: "Ações", Risk: "high", Liquidity: "high"},
		{Name: "FIIs", Risk: "medium", Liquidity: "high"},
		{Name: "ETFs", Risk: "medium", Liquidity: "high"},
		{Name: "Fundos Multimercado", Risk: "high", Liquidity: "medium"},
	}},
	{Key: "previdencia", Name: "Private pension", Types: []InvestmentType{
		{Name: "PGBL", Risk: "variable", Liquidity: "low"},
		{Name: "VGBL", Risk: "variable", Liquidity: "low"},
	}},
}

// Catalog builds the reference data from the engine's assumption table.
func (ce *CalculationEngine) Catalog() Catalog {
	c := Catalog{InvestmentTypes: InvestmentClasses}
	for _, t := range Tiers {
		text := tierText[t.Name]
		c.Tiers = append(c.Tiers, TierInfo{
			Key:           t.Name,
			Name:          text.name,
			Description:   text.description,
			MonthlyTarget: fdec.RoundCents(t.MonthlyTarget),
			FireNumber: FireNumber(domain.Assumptions{
				TargetMonthlyExpenses: t.MonthlyTarget,
				FireMultiplier:        FireMultiplier,
			}),
			Lifestyle: text.lifestyle,
		})
	}
	for _, p := range domain.Profiles {
		r, err := ce.defaults.ReturnFor(p)
		if err != nil {
			continue
		}
		text := profileText[p]
		c.Profiles = append(c.Profiles, ProfileInfo{
			Profile:        p,
			Name:           text.name,
			ExpectedReturn: r,
			Risk:           text.risk,
			Allocation:     text.allocation,
		})
	}
	return c
}
