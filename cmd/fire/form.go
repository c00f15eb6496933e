package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// requestForm holds the raw answers of the interactive form.
type requestForm struct {
	Age            string
	Savings        string
	Income         string
	Expenses       string
	TargetExpenses string
	TargetAge      string
	Profile        string
	ExpectedReturn string
	ConsiderTax    bool
}

func newRequestForm() *requestForm {
	return &requestForm{
		Savings:     "0",
		Profile:     string(domain.DefaultProfile),
		ConsiderTax: true,
	}
}

func runRequestForm() (*domain.Request, error) {
	f := newRequestForm()
	profiles := make([]huh.Option[string], 0, len(domain.Profiles))
	for _, p := range domain.Profiles {
		profiles = append(profiles, huh.NewOption(string(p), string(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Current age").Value(&f.Age).Validate(validateInt(true)),
			huh.NewInput().Title("Current savings").Value(&f.Savings).Validate(validateDecimal(true)),
			huh.NewInput().Title("Monthly income").Value(&f.Income).Validate(validateDecimal(true)),
			huh.NewInput().Title("Monthly expenses").Value(&f.Expenses).Validate(validateDecimal(true)),
		),
		huh.NewGroup(
			huh.NewInput().Title("Monthly spending in retirement").Description("Leave empty to use current expenses").
				Value(&f.TargetExpenses).Validate(validateDecimal(false)),
			huh.NewInput().Title("Desired FIRE age").Description("Optional").Value(&f.TargetAge).Validate(validateInt(false)),
			huh.NewSelect[string]().Title("Investment profile").Options(profiles...).Value(&f.Profile),
			huh.NewInput().Title("Expected annual return").Description("Optional, e.g. 0.09; defaults to the profile's rate").
				Value(&f.ExpectedReturn).Validate(validateDecimal(false)),
			huh.NewConfirm().Title("Add 15% for taxes?").Value(&f.ConsiderTax),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, errors.New("cancelled")
		}
		return nil, fmt.Errorf("running form: %w", err)
	}
	return f.toRequest()
}

func validateInt(required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return errors.New("required")
			}
			return nil
		}
		if _, err := strconv.Atoi(s); err != nil {
			return errors.New("enter a whole number")
		}
		return nil
	}
}

func validateDecimal(required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return errors.New("required")
			}
			return nil
		}
		if _, err := decimal.NewFromString(s); err != nil {
			return errors.New("enter a number")
		}
		return nil
	}
}

// toRequest converts the answers; optional fields left blank stay nil.
func (f *requestForm) toRequest() (*domain.Request, error) {
	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		return nil, fmt.Errorf("current_age: %w", err)
	}
	req := &domain.Request{CurrentAge: age, ConsiderTax: f.ConsiderTax}

	required := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"current_savings", f.Savings, &req.CurrentSavings},
		{"monthly_income", f.Income, &req.MonthlyIncome},
		{"monthly_expenses", f.Expenses, &req.MonthlyExpenses},
	}
	for _, field := range required {
		d, err := decimal.NewFromString(strings.TrimSpace(field.value))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dst = d
	}

	optional := []struct {
		name  string
		value string
		dst   **decimal.Decimal
	}{
		{"target_monthly_expenses", f.TargetExpenses, &req.TargetMonthlyExpenses},
		{"expected_return", f.ExpectedReturn, &req.ExpectedReturn},
	}
	for _, field := range optional {
		s := strings.TrimSpace(field.value)
		if s == "" {
			continue
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dst = &d
	}

	if s := strings.TrimSpace(f.TargetAge); s != "" {
		target, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("target_age: %w", err)
		}
		req.TargetAge = &target
	}

	req.InvestmentProfile, err = domain.ParseInvestmentProfile(f.Profile)
	if err != nil {
		return nil, err
	}
	return req, nil
}
