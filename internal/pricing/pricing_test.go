package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculate_DineInExample(t *testing.T) {
	// 2×10.00 + 1×5.00 = 25.00; tax = 25.00 × 0.0525 = 1.3125 -> 1.31
	items := []LineItem{
		{Price: dec("10.00"), Quantity: 2},
		{Price: dec("5.00"), Quantity: 1},
	}

	got := Calculate(items, DineInRate)

	assert.True(t, dec("25.00").Equal(got.Subtotal), "subtotal = %s", got.Subtotal)
	assert.True(t, dec("1.31").Equal(got.Tax), "tax = %s", got.Tax)
	assert.True(t, dec("26.31").Equal(got.Total), "total = %s", got.Total)
}

func TestCalculate_OnlineRate(t *testing.T) {
	items := []LineItem{
		{Price: dec("12.50"), Quantity: 2},
		{Price: dec("3.25"), Quantity: 3},
	}
	// subtotal = 25.00 + 9.75 = 34.75; tax = 34.75 × 0.11 = 3.8225 -> 3.82
	got := Calculate(items, OnlineRate)

	assert.True(t, dec("34.75").Equal(got.Subtotal))
	assert.True(t, dec("3.82").Equal(got.Tax))
	assert.True(t, dec("38.57").Equal(got.Total))
}

func TestCalculate_RoundsHalfAwayFromZero(t *testing.T) {
	// subtotal = 0.10; online tax = 0.011 -> 0.01; dine-in tax = 0.00525 -> 0.01
	items := []LineItem{{Price: dec("0.10"), Quantity: 1}}

	online := Calculate(items, OnlineRate)
	assert.True(t, dec("0.01").Equal(online.Tax), "tax = %s", online.Tax)

	dinein := Calculate(items, DineInRate)
	assert.True(t, dec("0.01").Equal(dinein.Tax), "tax = %s", dinein.Tax)
}

func TestCalculate_SubtotalNotRoundedBeforeTax(t *testing.T) {
	// Each line is 0.333; three lines sum to 0.999 exactly. If lines were
	// rounded individually the subtotal would drift to 0.99.
	items := []LineItem{
		{Price: dec("0.333"), Quantity: 1},
		{Price: dec("0.333"), Quantity: 1},
		{Price: dec("0.333"), Quantity: 1},
	}

	got := Calculate(items, OnlineRate)

	assert.True(t, dec("0.999").Equal(got.Subtotal), "subtotal = %s", got.Subtotal)
	// tax = 0.999 × 0.11 = 0.10989 -> 0.11; total = 1.10889... -> 0.999+0.11 = 1.109 -> 1.11
	assert.True(t, dec("0.11").Equal(got.Tax), "tax = %s", got.Tax)
	assert.True(t, dec("1.11").Equal(got.Total), "total = %s", got.Total)
}

func TestCalculate_EmptyItemsYieldZero(t *testing.T) {
	got := Calculate(nil, DineInRate)

	require.True(t, got.Subtotal.IsZero())
	require.True(t, got.Tax.IsZero())
	require.True(t, got.Total.IsZero())
}

func TestRatesMatchDeployment(t *testing.T) {
	assert.Equal(t, "0.0525", DineInRate.String())
	assert.Equal(t, "0.11", OnlineRate.String())
}
