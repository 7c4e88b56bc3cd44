package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Money is an immutable non-negative amount in Rupiah. The zero value is a
// valid zero amount. All arithmetic returns new values; nothing is clamped —
// an operation that would go negative fails with ErrInvalidAmount instead.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "15000" or "12500.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d)
}

// MustMoney is a convenience for seed data and tests; it panics on bad input.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic("entity: MustMoney(" + s + "): " + err.Error())
	}
	return m
}

func ZeroMoney() Money { return Money{} }

func (m Money) Amount() decimal.Decimal { return m.amount }

// Add cannot fail: both operands are non-negative by construction.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract fails with ErrInvalidAmount when other exceeds m. Callers wanting a
// conditional subtract should check GreaterOrEqual first.
func (m Money) Subtract(other Money) (Money, error) {
	if other.amount.GreaterThan(m.amount) {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: m.amount.Sub(other.amount)}, nil
}

// Multiply scales by a non-negative integer quantity.
func (m Money) Multiply(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}, nil
}

func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

func (m Money) Equal(other Money) bool { return m.amount.Equal(other.amount) }

func (m Money) IsZero() bool { return m.amount.IsZero() }

func (m Money) String() string { return "Rp " + m.amount.String() }

func (m Money) MarshalJSON() ([]byte, error) {
	return m.amount.MarshalJSON()
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return ErrInvalidAmount
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
