package contract

import (
	"errors"
	"math/big"
)

// Amount is a non-negative integer of unbounded width, counted in base units
// of the campaign asset. All accounting runs on Amount, never on floats.
// The zero value is a valid zero amount.
type Amount struct {
	i *big.Int
}

var errNegativeAmount = errors.New("amount would go negative")

// value returns the backing integer, treating the zero value as 0.
func (a Amount) value() *big.Int {
	if a.i == nil {
		return new(big.Int)
	}
	return a.i
}

// ZeroAmount returns an explicit zero, mostly for readability at call sites.
func ZeroAmount() Amount {
	return Amount{}
}

// AmountFromUint64 wraps a small constant into an Amount.
// Example payload: AmountFromUint64(1000)
func AmountFromUint64(v uint64) Amount {
	return Amount{i: new(big.Int).SetUint64(v)}
}

// ParseAmount reads a base-10 unsigned integer string. Signs, blanks and any
// non-digit input are rejected so host-supplied values cannot smuggle in
// negatives or fractions.
// Example payload: ParseAmount("340282366920938463463374607431768211456")
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, errors.New("empty amount")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Amount{}, errors.New("amount is not an unsigned integer: " + s)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, errors.New("invalid amount: " + s)
	}
	return Amount{i: v}, nil
}

// Add returns a+b without touching either operand.
func (a Amount) Add(b Amount) Amount {
	return Amount{i: new(big.Int).Add(a.value(), b.value())}
}

// Sub returns a-b, erroring instead of ever producing a negative amount.
func (a Amount) Sub(b Amount) (Amount, error) {
	res := new(big.Int).Sub(a.value(), b.value())
	if res.Sign() < 0 {
		return Amount{}, errNegativeAmount
	}
	return Amount{i: res}, nil
}

// Cmp orders two amounts like big.Int.Cmp (-1, 0, +1).
func (a Amount) Cmp(b Amount) int {
	return a.value().Cmp(b.value())
}

// DivUint64 floors a/n. n must be non-zero; callers guard the zero case.
func (a Amount) DivUint64(n uint64) Amount {
	return Amount{i: new(big.Int).Quo(a.value(), new(big.Int).SetUint64(n))}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.value().Sign() == 0
}

// String renders the amount as a plain decimal string, the only wire format
// amounts ever use.
func (a Amount) String() string {
	return a.value().String()
}
