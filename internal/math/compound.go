// internal/math/compound.go
package math

import (
	"github.com/shopspring/decimal"
)

// SecondsPerYear is the compounding denominator for annual rates.
const SecondsPerYear = 31_556_926

// powScale bounds intermediate precision during exponentiation by squaring.
// All compounding factors are close to 1, so decimal places double as
// significant digits here.
const powScale = 24

// rateDivScale is the precision used when splitting an annual rate into
// per-second increments. Per-second increments are ~1e-10, so the default
// division precision would strip most of their significant digits.
const rateDivScale = 34

var (
	one            = decimal.NewFromInt(1)
	secondsPerYear = decimal.NewFromInt(SecondsPerYear)
)

// PowInt raises base to a non-negative integer exponent using
// exponentiation by squaring. Intermediates are rounded with banker's
// rounding to keep coefficient growth bounded and results deterministic.
func PowInt(base decimal.Decimal, exp int64) decimal.Decimal {
	if exp <= 0 {
		return one
	}

	result := one
	acc := base
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(acc).RoundBank(powScale)
		}
		exp >>= 1
		if exp > 0 {
			acc = acc.Mul(acc).RoundBank(powScale)
		}
	}
	return result
}

// CompoundFactor returns (1 + rate/SecondsPerYear)^seconds, the growth
// factor applied to real debt after `seconds` of accrual at an annual rate.
func CompoundFactor(rate decimal.Decimal, seconds int64) decimal.Decimal {
	perSecond := rate.DivRound(secondsPerYear, rateDivScale)
	return PowInt(one.Add(perSecond), seconds)
}

// DecayFactor returns k^seconds, used for exponential decay of the
// redemption base rate between redemptions.
func DecayFactor(k decimal.Decimal, seconds int64) decimal.Decimal {
	return PowInt(k, seconds)
}

// IsDivisibleBy reports whether value is an exact integer multiple of
// divisor. Used to validate interest rates against the rate grid.
func IsDivisibleBy(value, divisor decimal.Decimal) bool {
	if divisor.IsZero() {
		return false
	}
	return value.Mod(divisor).IsZero()
}
