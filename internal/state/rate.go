package state

import (
	"github.com/shopspring/decimal"
)

// PrivilegedWireRate is the on-wire encoding of the privileged rate tag.
// It predates the tagged representation and is kept for storage, events
// and API compatibility; it must sort before every ordinary rate.
var PrivilegedWireRate = decimal.NewFromInt(-420)

// Rate is an annual interest rate on the protocol's rate grid, or the
// privileged tag marking an irredeemable position. Privileged positions
// have no nominal rate of their own; they are charged at an externally
// supplied substitute rate.
type Rate struct {
	value      decimal.Decimal
	privileged bool
}

// OrdinaryRate wraps an ordinary (non-privileged) annual rate.
func OrdinaryRate(v decimal.Decimal) Rate {
	return Rate{value: v}
}

// PrivilegedRate returns the privileged tag.
func PrivilegedRate() Rate {
	return Rate{privileged: true}
}

// RateFromWire decodes a wire rate value, mapping the sentinel to the
// privileged tag.
func RateFromWire(v decimal.Decimal) Rate {
	if v.Equal(PrivilegedWireRate) {
		return PrivilegedRate()
	}
	return OrdinaryRate(v)
}

// IsPrivileged reports whether the rate is the privileged tag.
func (r Rate) IsPrivileged() bool {
	return r.privileged
}

// Value returns the ordinary rate value. Zero for the privileged tag;
// callers charging privileged tiers must substitute an external rate.
func (r Rate) Value() decimal.Decimal {
	if r.privileged {
		return decimal.Zero
	}
	return r.value
}

// Wire returns the storage/API encoding of the rate.
func (r Rate) Wire() decimal.Decimal {
	if r.privileged {
		return PrivilegedWireRate
	}
	return r.value
}

// Cmp orders rates ascending with the privileged tag before every
// ordinary rate, matching the wire encoding's sort order.
func (r Rate) Cmp(o Rate) int {
	return r.Wire().Cmp(o.Wire())
}

// Equal reports rate identity.
func (r Rate) Equal(o Rate) bool {
	return r.privileged == o.privileged && r.Wire().Equal(o.Wire())
}

func (r Rate) String() string {
	if r.privileged {
		return "privileged"
	}
	return r.value.String()
}
