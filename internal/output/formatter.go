package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.FireResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used by WriteFormatted.
	Extension() string
}

// Options tune the human-readable formatters.
type Options struct {
	CurrencySymbol string
}

func (o Options) symbol() string {
	if o.CurrencySymbol == "" {
		return DefaultCurrencySymbol
	}
	return o.CurrencySymbol
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*domain.FireResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.FireResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                { return ff.ID }
func (ff FormatterFunc) Extension() string                           { return ff.Ext }

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, result *domain.FireResult, dir string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("fire_report_%s.%s", nowFunc().Format("20060102_150405"), f.Extension()))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatter constructors.
var builtInFormatters = []func(Options) Formatter{
	func(o Options) Formatter { return ConsoleFormatter{Options: o} },
	func(Options) Formatter { return CSVProjectionExporter{} },
	func(Options) Formatter { return CSVScenarioSummarizer{} },
	func(o Options) Formatter { return HTMLFormatter{Options: o} },
	func(Options) Formatter { return JSONFormatter{} },
}

// NewFormatter resolves name (or an alias) to a formatter configured with opts.
func NewFormatter(name string, opts Options) (Formatter, error) {
	n := NormalizeFormatName(name)
	for _, build := range builtInFormatters {
		if f := build(opts); f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GetFormatterByName fetches a registered formatter with default options, or nil.
func GetFormatterByName(name string) Formatter {
	f, err := NewFormatter(name, Options{})
	if err != nil {
		return nil
	}
	return f
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":           "console",
	"table":          "console",
	"csv-projection": "csv",
	"projection":     "csv",
	"csv-scenarios":  "scenarios-csv",
	"html-report":    "html",
	"json-pretty":    "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, build := range builtInFormatters {
		names = append(names, build(Options{}).Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
