package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary value backed by big.Rat to keep discount arithmetic
// exact. Prices coming from storage are numerator/denominator pairs
// (e.g. 249900/100 for 2499.00). A nil *Money means "no price set";
// arithmetic helpers propagate nil instead of inventing zeros.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("money: denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// MoneyFromRat wraps an existing big.Rat. A nil rat yields zero money.
func MoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// MoneyFromString parses a decimal string such as "19.90".
func MoneyFromString(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("money: invalid decimal %q", s)
	}
	return &Money{rat: rat}, nil
}

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Numerator returns the numerator of the reduced fraction.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the reduced fraction.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// Sub subtracts other from m.
func (m *Money) Sub(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MulRat multiplies m by a rational factor.
func (m *Money) MulRat(factor *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, factor)}
}

// Div divides m by other.
func (m *Money) Div(other *Money) (*Money, error) {
	if other.rat.Sign() == 0 {
		return nil, fmt.Errorf("money: division by zero")
	}
	return &Money{rat: new(big.Rat).Quo(m.rat, other.rat)}, nil
}

// Round2 rounds to two decimal places, half away from zero.
func (m *Money) Round2() *Money {
	scaled := new(big.Rat).Mul(m.rat, big.NewRat(100, 1))
	num := new(big.Int).Set(scaled.Num())
	den := scaled.Denom()

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		// |rem|*2 >= den means the fractional part is at least one half.
		doubled := new(big.Int).Abs(rem)
		doubled.Mul(doubled, big.NewInt(2))
		if doubled.Cmp(den) >= 0 {
			if num.Sign() < 0 {
				quo.Sub(quo, big.NewInt(1))
			} else {
				quo.Add(quo, big.NewInt(1))
			}
		}
	}
	return &Money{rat: new(big.Rat).SetFrac(quo, big.NewInt(100))}
}

// ClampZero returns zero money when m is negative, m otherwise.
func (m *Money) ClampZero() *Money {
	if m.rat.Sign() < 0 {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return m.Copy()
}

// IsZero reports whether the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports whether the value is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan reports m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Cmp compares m against other, returning -1, 0 or 1.
func (m *Money) Cmp(other *Money) int {
	return m.rat.Cmp(other.rat)
}

// Equals reports m == other.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 (display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the value with two decimals.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates an independent copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// MinMoney returns the smaller of the non-nil arguments, or nil when both
// are nil. Used to surface the cheapest variant as the product price.
func MinMoney(a, b *Money) *Money {
	if a == nil {
		if b == nil {
			return nil
		}
		return b.Copy()
	}
	if b == nil || a.rat.Cmp(b.rat) <= 0 {
		return a.Copy()
	}
	return b.Copy()
}
