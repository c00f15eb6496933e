package output

import (
	"strings"
	"testing"
	"time"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/store"
)

func TestRenderCatalog(t *testing.T) {
	out := RenderCatalog(calculation.NewCalculationEngine().Catalog(), "")
	for _, want := range []string{"Lean FIRE", "R$ 900.000,00", "R$ 4.500.000,00", "Moderate", "10.00%", "Tesouro Selic", "PGBL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("catalog missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	if got := RenderHistory(nil, ""); !strings.Contains(got, "No saved calculations") {
		t.Fatalf("empty history = %q", got)
	}

	out := RenderHistory([]store.Record{{
		ID:            "abc",
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
		Request:       domain.Request{CurrentAge: 30},
		FireNumber:    money("1725000.00"),
		YearsToFire:   50,
		TargetAge:     80,
		HorizonCapped: true,
	}}, "R$")
	for _, want := range []string{"abc", "R$ 1.725.000,00", "50+", "80"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history missing %q:\n%s", want, out)
		}
	}
}
