package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Preferences holds CLI defaults stored in config.toml
type Preferences struct {
	Output  OutputPreferences  `toml:"output"`
	History HistoryPreferences `toml:"history"`
	Advisor AdvisorPreferences `toml:"advisor"`
}

// OutputPreferences holds report settings
type OutputPreferences struct {
	Format         string `toml:"format"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// HistoryPreferences holds calculation history settings
type HistoryPreferences struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// AdvisorPreferences holds insight generation settings
type AdvisorPreferences struct {
	InsightsTimeout time.Duration `toml:"insights_timeout"`
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		Output: OutputPreferences{
			Format:         "console",
			CurrencySymbol: "R$",
		},
		History: HistoryPreferences{
			Enabled: false,
		},
		Advisor: AdvisorPreferences{
			InsightsTimeout: 5 * time.Second,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fire")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fire")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultHistoryPath is where the history database lives unless configured otherwise.
func DefaultHistoryPath() string {
	return filepath.Join(ConfigDir(), "history.db")
}

// LoadPreferences reads path, returning defaults if it doesn't exist.
func LoadPreferences(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}
	return prefs, nil
}

// SavePreferences writes prefs to path, creating the directory.
func SavePreferences(path string, prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}

// HistoryDatabase returns the configured history path or the default one.
func (p Preferences) HistoryDatabase() string {
	if p.History.Path != "" {
		return p.History.Path
	}
	return DefaultHistoryPath()
}
