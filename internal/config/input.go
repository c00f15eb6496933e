package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fireplan/fire-calculator/internal/domain"
)

const (
	MinAge       = 18
	MaxAge       = 80
	MinTargetAge = 30
)

var (
	minRate = decimal.NewFromInt(-1)
	maxRate = decimal.NewFromInt(1)
)

// InputParser handles parsing of request documents
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a request from a YAML or JSON file (chosen by extension) and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Request, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, FormatFromPath(filename))
}

// DocumentFormat is the encoding of a request document
type DocumentFormat string

const (
	DocumentYAML DocumentFormat = "yaml"
	DocumentJSON DocumentFormat = "json"
)

// FormatFromPath picks JSON for .json files and YAML otherwise.
func FormatFromPath(path string) DocumentFormat {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DocumentJSON
	}
	return DocumentYAML
}

// Parse decodes and validates a request document
func (ip *InputParser) Parse(data []byte, format DocumentFormat) (*domain.Request, error) {
	var req domain.Request
	switch format {
	case DocumentJSON:
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// ValidateRequest checks every field and returns all problems as domain.ValidationErrors
func (ip *InputParser) ValidateRequest(req *domain.Request) error {
	var errs domain.ValidationErrors

	if req.CurrentAge < MinAge || req.CurrentAge > MaxAge {
		errs.Add("current_age", "must be between %d and %d", MinAge, MaxAge)
	}
	if req.CurrentSavings.IsNegative() {
		errs.Add("current_savings", "cannot be negative")
	}
	if !req.MonthlyIncome.IsPositive() {
		errs.Add("monthly_income", "must be positive")
	}
	if !req.MonthlyExpenses.IsPositive() {
		errs.Add("monthly_expenses", "must be positive")
	} else if req.MonthlyIncome.IsPositive() && req.MonthlyExpenses.GreaterThanOrEqual(req.MonthlyIncome) {
		errs.Add("monthly_expenses", "must be less than monthly_income")
	}
	if req.TargetMonthlyExpenses != nil && !req.TargetMonthlyExpenses.IsPositive() {
		errs.Add("target_monthly_expenses", "must be positive")
	}
	if req.TargetAge != nil {
		switch {
		case *req.TargetAge < MinTargetAge || *req.TargetAge > MaxAge:
			errs.Add("target_age", "must be between %d and %d", MinTargetAge, MaxAge)
		case *req.TargetAge <= req.CurrentAge:
			errs.Add("target_age", "must be greater than current_age")
		}
	}
	if _, err := domain.ParseInvestmentProfile(string(req.InvestmentProfile)); err != nil {
		errs.Add("investment_profile", "must be one of conservative, moderate, aggressive")
	}
	if req.ExpectedReturn != nil && !rateInRange(*req.ExpectedReturn) {
		errs.Add("expected_return", "must be a decimal fraction between -1 and 1 (exclusive of -1)")
	}
	if req.InflationRate != nil && !rateInRange(*req.InflationRate) {
		errs.Add("inflation_rate", "must be a decimal fraction between -1 and 1 (exclusive of -1)")
	}

	return errs.Err()
}

func rateInRange(r decimal.Decimal) bool {
	return r.GreaterThan(minRate) && r.LessThanOrEqual(maxRate)
}

// SaveRequest writes a request as YAML
func (ip *InputParser) SaveRequest(req *domain.Request, filename string) error {
	data, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleRequest returns the request used by `fire init`
func (ip *InputParser) CreateExampleRequest() *domain.Request {
	targetAge := 50
	return &domain.Request{
		CurrentAge:        30,
		CurrentSavings:    decimal.NewFromInt(50000),
		MonthlyIncome:     decimal.NewFromInt(8000),
		MonthlyExpenses:   decimal.NewFromInt(5000),
		TargetAge:         &targetAge,
		InvestmentProfile: domain.ProfileModerate,
		ConsiderTax:       true,
	}
}
