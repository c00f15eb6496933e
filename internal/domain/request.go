package domain

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InvestmentProfile selects the default nominal return used when a request carries no override.
type InvestmentProfile string

const (
	ProfileConservative InvestmentProfile = "conservative"
	ProfileModerate     InvestmentProfile = "moderate"
	ProfileAggressive   InvestmentProfile = "aggressive"
)

// Profiles lists the supported investment profiles in ascending risk order.
var Profiles = []InvestmentProfile{ProfileConservative, ProfileModerate, ProfileAggressive}

var profileAliases = map[string]InvestmentProfile{
	"conservative": ProfileConservative,
	"conservador":  ProfileConservative,
	"moderate":     ProfileModerate,
	"moderado":     ProfileModerate,
	"aggressive":   ProfileAggressive,
	"agressivo":    ProfileAggressive,
}

// ParseInvestmentProfile resolves a profile name, accepting the Portuguese spellings too.
func ParseInvestmentProfile(s string) (InvestmentProfile, error) {
	if p, ok := profileAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
}

// DefaultProfile is used when an input document names no profile.
const DefaultProfile = ProfileModerate

func parseProfileOrDefault(s string) (InvestmentProfile, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultProfile, nil
	}
	return ParseInvestmentProfile(s)
}

// Request carries the already-validated inputs of a FIRE calculation.
// It is passed by value and never modified by the calculation engine.
type Request struct {
	CurrentAge            int               `yaml:"current_age" json:"current_age"`
	CurrentSavings        decimal.Decimal   `yaml:"current_savings" json:"current_savings"`
	MonthlyIncome         decimal.Decimal   `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses       decimal.Decimal   `yaml:"monthly_expenses" json:"monthly_expenses"`
	TargetMonthlyExpenses *decimal.Decimal  `yaml:"target_monthly_expenses,omitempty" json:"target_monthly_expenses,omitempty"`
	TargetAge             *int              `yaml:"target_age,omitempty" json:"target_age,omitempty"`
	InvestmentProfile     InvestmentProfile `yaml:"investment_profile" json:"investment_profile"`
	ExpectedReturn        *decimal.Decimal  `yaml:"expected_return,omitempty" json:"expected_return,omitempty"`
	InflationRate         *decimal.Decimal  `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	ConsiderTax           bool              `yaml:"consider_tax" json:"consider_tax"`
}

// MonthlySurplus is income minus expenses.
func (r Request) MonthlySurplus() decimal.Decimal {
	return r.MonthlyIncome.Sub(r.MonthlyExpenses)
}

// WithTargetExpenses returns a copy of r aiming at a different monthly spending level.
func (r Request) WithTargetExpenses(monthly decimal.Decimal) Request {
	r.TargetMonthlyExpenses = &monthly
	return r
}

// UnmarshalYAML implements custom YAML unmarshaling for Request.
// Decimal fields are read as strings so they never pass through float64, and
// consider_tax defaults to true and investment_profile to DefaultProfile when absent.
func (r *Request) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		CurrentAge            int     `yaml:"current_age"`
		CurrentSavings        *string `yaml:"current_savings"`
		MonthlyIncome         *string `yaml:"monthly_income"`
		MonthlyExpenses       *string `yaml:"monthly_expenses"`
		TargetMonthlyExpenses *string `yaml:"target_monthly_expenses,omitempty"`
		TargetAge             *int    `yaml:"target_age,omitempty"`
		InvestmentProfile     string  `yaml:"investment_profile"`
		ExpectedReturn        *string `yaml:"expected_return,omitempty"`
		InflationRate         *string `yaml:"inflation_rate,omitempty"`
		ConsiderTax           *bool   `yaml:"consider_tax"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	out := Request{
		CurrentAge:  aux.CurrentAge,
		TargetAge:   aux.TargetAge,
		ConsiderTax: aux.ConsiderTax == nil || *aux.ConsiderTax,
	}
	p, err := parseProfileOrDefault(aux.InvestmentProfile)
	if err != nil {
		return err
	}
	out.InvestmentProfile = p

	required := []struct {
		name string
		src  *string
		dst  *decimal.Decimal
	}{
		{"current_savings", aux.CurrentSavings, &out.CurrentSavings},
		{"monthly_income", aux.MonthlyIncome, &out.MonthlyIncome},
		{"monthly_expenses", aux.MonthlyExpenses, &out.MonthlyExpenses},
	}
	for _, f := range required {
		if f.src == nil {
			continue
		}
		val, err := decimal.NewFromString(*f.src)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = val
	}

	optional := []struct {
		name string
		src  *string
		dst  **decimal.Decimal
	}{
		{"target_monthly_expenses", aux.TargetMonthlyExpenses, &out.TargetMonthlyExpenses},
		{"expected_return", aux.ExpectedReturn, &out.ExpectedReturn},
		{"inflation_rate", aux.InflationRate, &out.InflationRate},
	}
	for _, f := range optional {
		if f.src == nil {
			continue
		}
		val, err := decimal.NewFromString(*f.src)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = &val
	}

	*r = out
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML: profile aliases are resolved and
// consider_tax defaults to true when absent.
func (r *Request) UnmarshalJSON(data []byte) error {
	out, err := DecodeRequestJSON(data)
	if err != nil {
		return err
	}
	*r = out
	return nil
}

// DecodeRequestJSON parses a JSON request document. Errors from an unknown
// investment profile wrap ErrUnknownProfile.
func DecodeRequestJSON(data []byte) (Request, error) {
	type Alias struct {
		CurrentAge            int              `json:"current_age"`
		CurrentSavings        decimal.Decimal  `json:"current_savings"`
		MonthlyIncome         decimal.Decimal  `json:"monthly_income"`
		MonthlyExpenses       decimal.Decimal  `json:"monthly_expenses"`
		TargetMonthlyExpenses *decimal.Decimal `json:"target_monthly_expenses"`
		TargetAge             *int             `json:"target_age"`
		InvestmentProfile     string           `json:"investment_profile"`
		ExpectedReturn        *decimal.Decimal `json:"expected_return"`
		InflationRate         *decimal.Decimal `json:"inflation_rate"`
		ConsiderTax           *bool            `json:"consider_tax"`
	}

	var aux Alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return Request{}, err
	}

	out := Request{
		CurrentAge:            aux.CurrentAge,
		CurrentSavings:        aux.CurrentSavings,
		MonthlyIncome:         aux.MonthlyIncome,
		MonthlyExpenses:       aux.MonthlyExpenses,
		TargetMonthlyExpenses: aux.TargetMonthlyExpenses,
		TargetAge:             aux.TargetAge,
		ExpectedReturn:        aux.ExpectedReturn,
		InflationRate:         aux.InflationRate,
		ConsiderTax:           aux.ConsiderTax == nil || *aux.ConsiderTax,
	}
	p, err := parseProfileOrDefault(aux.InvestmentProfile)
	if err != nil {
		return Request{}, err
	}
	out.InvestmentProfile = p
	return out, nil
}
