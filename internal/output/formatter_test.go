package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

func money(s string) fdec.Money { return fdec.NewMoneyFromDecimal(decimal.RequireFromString(s)) }

func buildTestResult() *domain.FireResult {
	return &domain.FireResult{
		FireNumber:           money("1725000.00"),
		YearsToFire:          19,
		TargetAge:            49,
		MonthlySavingsNeeded: money("2700.00"),
		SavingsRate:          decimal.RequireFromString("33.75"),
		Projections: []domain.ProjectionEntry{
			{Year: 1, Age: 31, AccumulatedAmount: money("33859.45"), MonthlyContribution: money("2700.00"), AnnualReturn: decimal.NewFromInt(10), InflationAdjustedAmount: money("32401.39")},
			{Year: 2, Age: 32, AccumulatedAmount: money("71265.06"), MonthlyContribution: money("2700.00"), AnnualReturn: decimal.NewFromInt(10), InflationAdjustedAmount: money("65259.46")},
		},
		Scenarios: map[string]domain.ScenarioOutcome{
			domain.ScenarioLean:    domain.TierResult{FireNumber: money("1035000.00"), YearsToFire: 15, MonthlySavingsNeeded: money("2700.00"), MonthlyTarget: money("3000.00"), FireAge: 45},
			domain.ScenarioRegular: domain.TierResult{FireNumber: money("2070000.00"), YearsToFire: 21, MonthlySavingsNeeded: money("2700.00"), MonthlyTarget: money("6000.00"), FireAge: 51},
			domain.ScenarioFat:     domain.Infeasible{Reason: domain.ReasonInsufficientIncome, Message: "insufficient income"},
			domain.ScenarioCoast:   domain.CoastResult{CoastFireNumber: money("61382.58"), CoastFireAge: 32, YearsToCoast: 2, ReferenceAge: 65, FinalAmountAtAge: money("1725000.00")},
			domain.ScenarioBarista: domain.BaristaResult{BaristaFireNumber: money("862500.00"), BaristaFireAge: 43, YearsToBarista: 13, PartTimeIncomeNeeded: money("2125.00"), PassiveIncome: money("2875.00")},
		},
		Assumptions: domain.Assumptions{
			ExpectedReturn:        decimal.RequireFromString("0.10"),
			InflationRate:         decimal.RequireFromString("0.045"),
			RealReturn:            decimal.RequireFromString("0.05263157894736842105"),
			TargetMonthlyExpenses: decimal.NewFromInt(5000),
			FireMultiplier:        25,
			WithdrawalRate:        decimal.RequireFromString("0.04"),
			ConsiderTax:           true,
		},
		Insights: []string{"Keep investing consistently."},
		Warnings: []string{"Returns are not guaranteed."},
	}
}

func checkGolden(t *testing.T, name string, out []byte) {
	t.Helper()
	goldenPath := filepath.Join("testdata", name)
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		if err := os.WriteFile(goldenPath, out, 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if !bytes.Equal(out, want) {
		t.Fatalf("%s changed; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", name, out, want)
	}
}

func TestCSVProjectionGolden(t *testing.T) {
	out, err := CSVProjectionExporter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	checkGolden(t, "projection.csv.golden", out)
}

func TestCSVScenarioGolden(t *testing.T) {
	out, err := CSVScenarioSummarizer{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	checkGolden(t, "scenarios.csv.golden", out)
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if doc["fire_number"] != "1725000.00" {
		t.Fatalf("fire_number = %v", doc["fire_number"])
	}
	scenarios := doc["scenarios"].(map[string]any)
	fat := scenarios[domain.ScenarioFat].(map[string]any)
	if fat["status"] != "infeasible" || fat["reason"] != "INSUFFICIENT_INCOME" {
		t.Fatalf("fat scenario = %v", fat)
	}
	lean := scenarios[domain.ScenarioLean].(map[string]any)
	if lean["status"] != "feasible" || lean["fire_number"] != "1035000.00" {
		t.Fatalf("lean scenario = %v", lean)
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"FIRE PLAN",
		"R$ 1.725.000,00",
		"33.75%",
		"Lean FIRE",
		"infeasible",
		"part-time R$ 2.125,00/month",
		"grows to R$ 1.725.000,00 by age 65",
		"Real return: 5.26% per year",
		"Keep investing consistently.",
		"Returns are not guaranteed.",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("console output missing %q:\n%s", want, content)
		}
	}
}

func TestConsoleFormatterCurrencySymbol(t *testing.T) {
	out, err := ConsoleFormatter{Options: Options{CurrencySymbol: "$"}}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	if !strings.Contains(string(out), "$ 1.725.000,00") || strings.Contains(string(out), "R$") {
		t.Fatalf("expected custom currency symbol:\n%s", out)
	}
}

func TestConsoleFormatterCappedHorizon(t *testing.T) {
	r := buildTestResult()
	r.HorizonCapped = true
	out, err := ConsoleFormatter{}.Format(r)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	if !strings.Contains(string(out), "capped at horizon") {
		t.Fatalf("expected capped marker:\n%s", out)
	}
}

func TestDesiredAgePlanRendering(t *testing.T) {
	r := buildTestResult()
	r.DesiredAge = &domain.DesiredAgePlan{
		Age:                  45,
		Months:               180,
		MonthlySavingsNeeded: money("5109.50"),
		SavingsRate:          decimal.RequireFromString("63.87"),
	}

	out, err := ConsoleFormatter{}.Format(r)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	for _, want := range []string{"To retire at 45", "R$ 5.109,50/month", "above surplus"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("console output missing %q:\n%s", want, out)
		}
	}

	out, err = HTMLFormatter{}.Format(r)
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	if !strings.Contains(string(out), "To retire at 45") {
		t.Fatalf("html output missing desired age card")
	}
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"<!DOCTYPE html>", "Key Assumptions", "R$ 1.035.000,00", "INSUFFICIENT_INCOME", `"nominal":"33859.45"`} {
		if !strings.Contains(content, want) {
			t.Fatalf("html output missing %q", want)
		}
	}
}

func TestHTMLFormatterEscapesText(t *testing.T) {
	r := buildTestResult()
	r.Insights = []string{"<script>alert(1)</script>"}
	out, err := HTMLFormatter{}.Format(r)
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Fatalf("insight was not escaped")
	}
}

func TestSummarizeScenariosOrder(t *testing.T) {
	r := buildTestResult()
	delete(r.Scenarios, domain.ScenarioRegular)
	rows := SummarizeScenarios(r, DefaultCurrencySymbol)
	want := []string{domain.ScenarioLean, domain.ScenarioFat, domain.ScenarioCoast, domain.ScenarioBarista}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, key := range want {
		if rows[i].Key != key {
			t.Fatalf("row %d = %s, want %s", i, rows[i].Key, key)
		}
	}
	if rows[1].Feasible || rows[1].Reason != domain.ReasonInsufficientIncome {
		t.Fatalf("fat row = %+v", rows[1])
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatCurrency("R$", money("1234567.891")); got != "R$ 1.234.567,89" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := FormatPercentage(decimal.RequireFromString("12.345")); got != "12.35%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
	if got := FormatRate(decimal.RequireFromString("0.045")); got != "4.50%" {
		t.Fatalf("FormatRate = %q", got)
	}
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"console":       "console",
		"TEXT":          "console",
		" projection ":  "csv",
		"csv-scenarios": "scenarios-csv",
		"json-pretty":   "json",
		"html-report":   "html",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q did not resolve to a formatter", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateReport(&buf, buildTestResult(), "definitely-not-a-format", Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "Try one of: console, csv, html, json, scenarios-csv") {
		t.Fatalf("error message missing suggestions: %s", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written for an unknown format")
	}
}

func TestGenerateReportWritesFormatted(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateReport(&buf, buildTestResult(), "csv", Options{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "year,age,") {
		t.Fatalf("unexpected csv: %s", buf.String())
	}
}

func TestWriteFormatted(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	dir := t.TempDir()
	path, err := WriteFormatted(JSONFormatter{}, buildTestResult(), dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if want := filepath.Join(dir, "fire_report_20260504_030201.json"); path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "years", Ext: "txt", F: func(r *domain.FireResult) ([]byte, error) {
		return []byte(intToString(r.YearsToFire)), nil
	}}
	out, err := f.Format(buildTestResult())
	if err != nil || string(out) != "19" || f.Name() != "years" || f.Extension() != "txt" {
		t.Fatalf("FormatterFunc = %q, %v", out, err)
	}
}
