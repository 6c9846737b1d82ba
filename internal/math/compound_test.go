package math_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"StableLedger/internal/math"
)

// ============================================================
// Test: PowInt
// ============================================================

func TestPowInt_ZeroAndNegativeExponent(t *testing.T) {
	base := decimal.NewFromFloat(1.5)

	if got := math.PowInt(base, 0); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("PowInt(1.5, 0) = %s, want 1", got)
	}
	if got := math.PowInt(base, -3); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("PowInt(1.5, -3) = %s, want 1", got)
	}
}

func TestPowInt_SmallIntegerPowers(t *testing.T) {
	two := decimal.NewFromInt(2)

	if got := math.PowInt(two, 1); !got.Equal(two) {
		t.Errorf("PowInt(2, 1) = %s, want 2", got)
	}
	if got := math.PowInt(two, 10); !got.Equal(decimal.NewFromInt(1024)) {
		t.Errorf("PowInt(2, 10) = %s, want 1024", got)
	}

	half := decimal.NewFromFloat(0.5)
	if got := math.PowInt(half, 3); !got.Equal(decimal.NewFromFloat(0.125)) {
		t.Errorf("PowInt(0.5, 3) = %s, want 0.125", got)
	}
}

func TestPowInt_OneIsFixedPoint(t *testing.T) {
	one := decimal.NewFromInt(1)
	if got := math.PowInt(one, 1_000_000); !got.Equal(one) {
		t.Errorf("PowInt(1, 1e6) = %s, want 1", got)
	}
}

// ============================================================
// Test: CompoundFactor
// ============================================================

func TestCompoundFactor_ZeroRate(t *testing.T) {
	got := math.CompoundFactor(decimal.Zero, 86400)
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("CompoundFactor(0, 86400) = %s, want 1", got)
	}
}

func TestCompoundFactor_ZeroSeconds(t *testing.T) {
	got := math.CompoundFactor(decimal.NewFromFloat(0.05), 0)
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("CompoundFactor(0.05, 0) = %s, want 1", got)
	}
}

func TestCompoundFactor_GrowsWithTime(t *testing.T) {
	rate := decimal.NewFromFloat(0.05)

	day := math.CompoundFactor(rate, 86400)
	week := math.CompoundFactor(rate, 7*86400)

	one := decimal.NewFromInt(1)
	if day.Cmp(one) <= 0 {
		t.Errorf("one day at 5%% = %s, want > 1", day)
	}
	if week.Cmp(day) <= 0 {
		t.Errorf("one week (%s) should exceed one day (%s)", week, day)
	}
}

func TestCompoundFactor_OneYearAtFivePercent(t *testing.T) {
	// Per-second compounding approaches continuous compounding, so a year
	// at 5% lands between simple interest 1.05 and e^0.05 ~ 1.05127.
	got := math.CompoundFactor(decimal.NewFromFloat(0.05), math.SecondsPerYear)

	lo := decimal.NewFromFloat(1.05)
	hi := decimal.NewFromFloat(1.0513)
	if got.Cmp(lo) <= 0 || got.Cmp(hi) >= 0 {
		t.Errorf("one year at 5%% = %s, want in (%s, %s)", got, lo, hi)
	}
}

// ============================================================
// Test: DecayFactor
// ============================================================

func TestDecayFactor_Shrinks(t *testing.T) {
	k := decimal.NewFromFloat(0.999967910367636)

	halfDay := math.DecayFactor(k, 43200)
	fullDay := math.DecayFactor(k, 86400)

	one := decimal.NewFromInt(1)
	if halfDay.Cmp(one) >= 0 {
		t.Errorf("decay over half a day = %s, want < 1", halfDay)
	}
	if fullDay.Cmp(halfDay) >= 0 {
		t.Errorf("decay over a day (%s) should be below half a day (%s)", fullDay, halfDay)
	}

	// The default k halves the base rate roughly every 6 hours.
	sixHours := math.DecayFactor(k, 6*3600)
	lo := decimal.NewFromFloat(0.49)
	hi := decimal.NewFromFloat(0.51)
	if sixHours.Cmp(lo) < 0 || sixHours.Cmp(hi) > 0 {
		t.Errorf("decay over 6h = %s, want ~0.5", sixHours)
	}
}

func TestDecayFactor_UnitK(t *testing.T) {
	got := math.DecayFactor(decimal.NewFromInt(1), 1_000_000)
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("DecayFactor(1, 1e6) = %s, want 1", got)
	}
}

// ============================================================
// Test: IsDivisibleBy
// ============================================================

func TestIsDivisibleBy(t *testing.T) {
	tests := []struct {
		value   string
		divisor string
		want    bool
	}{
		{"0.05", "0.001", true},
		{"0", "0.001", true},
		{"0.0505", "0.001", false},
		{"0.0005", "0.001", false},
		{"1", "0.001", true},
		{"0.003", "0.001", true},
		{"0.05", "0", false},
	}

	for _, tt := range tests {
		v := decimal.RequireFromString(tt.value)
		d := decimal.RequireFromString(tt.divisor)
		if got := math.IsDivisibleBy(v, d); got != tt.want {
			t.Errorf("IsDivisibleBy(%s, %s) = %v, want %v", tt.value, tt.divisor, got, tt.want)
		}
	}
}
