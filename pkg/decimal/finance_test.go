package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func d(s string) stddec.Decimal { return stddec.RequireFromString(s) }

func TestPowInt(t *testing.T) {
	cases := []struct {
		base string
		n    int
		want string
	}{
		{"1.1", 0, "1"},
		{"1.1", 1, "1.1"},
		{"1.1", 2, "1.21"},
		{"1.1", 3, "1.331"},
		{"2", 10, "1024"},
		{"2", -2, "0.25"},
	}
	for _, c := range cases {
		got := PowInt(d(c.base), c.n)
		if !got.Equal(d(c.want)) {
			t.Fatalf("PowInt(%s, %d) got %s want %s", c.base, c.n, got, c.want)
		}
	}
}

func TestGrowth(t *testing.T) {
	if got := Growth(d("0.045"), 2); !got.Equal(d("1.092025")) {
		t.Fatalf("Growth got %s", got)
	}
}

func TestNthRoot(t *testing.T) {
	cases := []struct {
		x    string
		n    int
		want string
	}{
		{"1024", 10, "2"},
		{"1.331", 3, "1.1"},
		{"1", 12, "1"},
		{"0.25", 2, "0.5"},
	}
	for _, c := range cases {
		got := NthRoot(d(c.x), c.n)
		if got.Sub(d(c.want)).Abs().GreaterThan(d("1e-18")) {
			t.Fatalf("NthRoot(%s, %d) got %s want %s", c.x, c.n, got, c.want)
		}
	}
	if !NthRoot(d("-4"), 2).IsZero() {
		t.Fatalf("NthRoot of negative should be zero")
	}
}

func TestMonthlyRate(t *testing.T) {
	r := MonthlyRate(d("0.10"))
	if got := r.StringFixed(12); got != "0.007974140429" {
		t.Fatalf("MonthlyRate(0.10) got %s", got)
	}
	// compounding twelve times recovers the annual rate
	annual := Growth(r, 12).Sub(stddec.NewFromInt(1))
	if annual.Sub(d("0.10")).Abs().GreaterThan(d("1e-17")) {
		t.Fatalf("12 months of %s gave %s", r, annual)
	}
	if !MonthlyRate(stddec.Zero).IsZero() {
		t.Fatalf("MonthlyRate(0) should be zero")
	}
}

func TestAccumulate(t *testing.T) {
	if got := Accumulate(d("1000"), d("100"), stddec.Zero, 12); !got.Equal(d("2200")) {
		t.Fatalf("zero-rate Accumulate got %s", got)
	}
	// 100 × 1.01 + 10, then × 1.01 + 10
	if got := Accumulate(d("100"), d("10"), d("0.01"), 2); !got.Equal(d("122.11")) {
		t.Fatalf("Accumulate got %s", got)
	}
	if got := Accumulate(d("5"), d("1"), d("0.5"), 0); !got.Equal(d("5")) {
		t.Fatalf("zero months got %s", got)
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 12, 0}, {1, 12, 1}, {12, 12, 1}, {13, 12, 2}, {600, 12, 50}, {5, 0, 0},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Fatalf("CeilDiv(%d, %d) got %d want %d", c.a, c.b, got, c.want)
		}
	}
}
