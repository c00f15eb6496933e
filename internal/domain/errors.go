package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInsufficientIncome is returned when monthly income does not exceed monthly expenses.
	ErrInsufficientIncome = errors.New("insufficient income: monthly surplus must be positive")
	// ErrAgeExceeded is returned by Coast-FIRE when the reference age has already been reached.
	ErrAgeExceeded = errors.New("current age is at or past the coast reference age")
	// ErrUnknownProfile means the defaults table has no entry for the requested profile.
	ErrUnknownProfile = errors.New("unknown investment profile")
)

// Reason is a machine-readable infeasibility code
type Reason string

const (
	ReasonInsufficientIncome Reason = "INSUFFICIENT_INCOME"
	ReasonAgeExceeded        Reason = "AGE_EXCEEDED"
	ReasonUnknownProfile     Reason = "UNKNOWN_PROFILE"
	ReasonInternal           Reason = "INTERNAL"
)

// ReasonFor maps an error to its reason code.
func ReasonFor(err error) Reason {
	switch {
	case errors.Is(err, ErrInsufficientIncome):
		return ReasonInsufficientIncome
	case errors.Is(err, ErrAgeExceeded):
		return ReasonAgeExceeded
	case errors.Is(err, ErrUnknownProfile):
		return ReasonUnknownProfile
	default:
		return ReasonInternal
	}
}

// ValidationError describes one invalid request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a request
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "invalid request: " + strings.Join(msgs, "; ")
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, format string, args ...any) {
	*v = append(*v, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns nil when no errors were collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
