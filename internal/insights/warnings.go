package insights

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/domain"
)

// RetirementAge is the conventional retirement age used by the late-FIRE warning.
const RetirementAge = 65

// WarningInput is what warning predicates are evaluated against
type WarningInput struct {
	Request domain.Request
	Result  *domain.FireResult
}

// WarningRule appends Message when Applies holds
type WarningRule struct {
	Name    string
	Applies func(in WarningInput) bool
	Message func(in WarningInput) string
}

func fixed(msg string) func(WarningInput) string {
	return func(WarningInput) string { return msg }
}

var (
	maxComfortableRate = decimal.NewFromInt(70)
	incomeShareLimit   = decimal.RequireFromString("0.8")
)

// WarningRules is evaluated in order.
var WarningRules = []WarningRule{
	{
		Name:    "savings_rate_high",
		Applies: func(in WarningInput) bool { return in.Result.SavingsRate.GreaterThan(maxComfortableRate) },
		Message: fixed("A savings rate this high may hurt your current quality of life."),
	},
	{
		Name:    "horizon_long",
		Applies: func(in WarningInput) bool { return in.Result.YearsToFire > 30 },
		Message: fixed("Very long horizon. Consider revising your strategy or goals."),
	},
	{
		Name:    "past_retirement_age",
		Applies: func(in WarningInput) bool { return in.Result.TargetAge > RetirementAge },
		Message: fixed("FIRE lands after the traditional retirement age. Consider a private pension plan (PGBL/VGBL)."),
	},
	{
		Name: "savings_share_of_income",
		Applies: func(in WarningInput) bool {
			return in.Result.MonthlySavingsNeeded.Decimal.GreaterThan(in.Request.MonthlyIncome.Mul(incomeShareLimit))
		},
		Message: fixed("Required savings are very high. Consider raising income or lowering goals."),
	},
	{
		Name:    "horizon_capped",
		Applies: func(in WarningInput) bool { return in.Result.HorizonCapped },
		Message: func(WarningInput) string {
			return fmt.Sprintf("The target is not reached within %d years; the horizon shown is a lower bound.", calculation.MaxMonths/12)
		},
	},
	{
		Name: "desired_age_missed",
		Applies: func(in WarningInput) bool {
			return in.Request.TargetAge != nil && in.Result.TargetAge > *in.Request.TargetAge
		},
		Message: func(in WarningInput) string {
			return fmt.Sprintf("Projected FIRE age %d is later than your desired age %d.", in.Result.TargetAge, *in.Request.TargetAge)
		},
	},
}

// GeneralWarnings are appended to every result.
var GeneralWarnings = []string{
	"Account for inflation and life changes when planning FIRE.",
	"Keep an emergency fund separate from your FIRE portfolio.",
}

// Warnings applies WarningRules to a result and appends GeneralWarnings.
func Warnings(req domain.Request, result *domain.FireResult) []string {
	in := WarningInput{Request: req, Result: result}
	out := make([]string, 0, len(WarningRules)+len(GeneralWarnings))
	for _, rule := range WarningRules {
		if rule.Applies(in) {
			out = append(out, rule.Message(in))
		}
	}
	return append(out, GeneralWarnings...)
}
