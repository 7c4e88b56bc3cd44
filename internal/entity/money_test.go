package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(15000))
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(15000)))

	_, err = NewMoney(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewMoneyFromString("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoneyAdd(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"15000", "5000", "20000"},
		{"0.10", "0.20", "0.30"},
		{"12500.50", "2499.50", "15000"},
	}
	for _, tc := range cases {
		got := MustMoney(tc.a).Add(MustMoney(tc.b))
		assert.True(t, got.Equal(MustMoney(tc.want)), "%s + %s = %s, want %s", tc.a, tc.b, got, tc.want)
	}
}

func TestMoneySubtract(t *testing.T) {
	a := MustMoney("20000")
	b := MustMoney("15000")

	got, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, got.Equal(MustMoney("5000")))

	// subtract(a,b).add(b) == a
	assert.True(t, got.Add(b).Equal(a))

	_, err = b.Subtract(a)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// equal amounts subtract to zero, not an error
	zero, err := a.Subtract(a)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestMoneyMultiply(t *testing.T) {
	m := MustMoney("15000")

	got, err := m.Multiply(2)
	require.NoError(t, err)
	assert.True(t, got.Equal(MustMoney("30000")))

	got, err = m.Multiply(0)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = m.Multiply(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoneyComparison(t *testing.T) {
	assert.True(t, MustMoney("10000").GreaterOrEqual(MustMoney("10000")))
	assert.True(t, MustMoney("10001").GreaterOrEqual(MustMoney("10000")))
	assert.False(t, MustMoney("9999").GreaterOrEqual(MustMoney("10000")))

	// equality is by value, including across representations
	assert.True(t, MustMoney("15000").Equal(MustMoney("15000.00")))
}

func TestMoneyZeroValue(t *testing.T) {
	var m Money
	assert.True(t, m.IsZero())
	assert.True(t, m.Equal(ZeroMoney()))
	assert.Equal(t, "Rp 0", m.String())
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(MustMoney("15000"))
	require.NoError(t, err)
	assert.Equal(t, `"15000"`, string(b))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"20000"`), &m))
	assert.True(t, m.Equal(MustMoney("20000")))

	err = json.Unmarshal([]byte(`"-1"`), &m)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
