package contract_test

import (
	"testing"

	"donation_box/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountAcceptsLargeIntegers(t *testing.T) {
	// 2^128, far beyond any 64-bit representation
	raw := "340282366920938463463374607431768211456"
	a, err := contract.ParseAmount(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, a.String())
}

func TestParseAmountRejectsJunk(t *testing.T) {
	for _, bad := range []string{"", "-1", "+1", "1.5", "abc", " 1", "1 ", "0x10", "1e9"} {
		_, err := contract.ParseAmount(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := contract.AmountFromUint64(1000)
	b := contract.AmountFromUint64(100)

	assert.Equal(t, "1100", a.Add(b).String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "900", diff.String())

	_, err = b.Sub(a)
	assert.Error(t, err, "subtraction below zero must fail")

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(contract.AmountFromUint64(1000)))
}

func TestAmountAddDoesNotMutateOperands(t *testing.T) {
	a := contract.AmountFromUint64(7)
	b := contract.AmountFromUint64(5)
	_ = a.Add(b)
	assert.Equal(t, "7", a.String())
	assert.Equal(t, "5", b.String())
}

func TestAmountZeroValue(t *testing.T) {
	var a contract.Amount
	assert.True(t, a.IsZero())
	assert.Equal(t, "0", a.String())
	assert.Equal(t, "3", a.Add(contract.AmountFromUint64(3)).String())
}

func TestAmountDivFloors(t *testing.T) {
	a := contract.AmountFromUint64(10)
	assert.Equal(t, "3", a.DivUint64(3).String())
	assert.Equal(t, "0", contract.ZeroAmount().DivUint64(3).String())
}
