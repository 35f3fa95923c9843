package pnl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trade-journal-go/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestCalculate_LongTrade(t *testing.T) {
	got := Calculate(models.DirectionLong, "100", strPtr("110"), "10", "0")

	assert.NotNil(t, got)
	assert.Equal(t, "100.00", *got)
}

func TestCalculate_ShortTrade(t *testing.T) {
	got := Calculate(models.DirectionShort, "100", strPtr("95"), "10", "0")

	assert.NotNil(t, got)
	assert.Equal(t, "50.00", *got)
}

func TestCalculate_LongLoss(t *testing.T) {
	got := Calculate(models.DirectionLong, "100", strPtr("95"), "10", "0")

	assert.NotNil(t, got)
	assert.Equal(t, "-50.00", *got)
}

func TestCalculate_SubtractsFees(t *testing.T) {
	got := Calculate(models.DirectionLong, "100", strPtr("110"), "10", "2.50")

	assert.NotNil(t, got)
	assert.Equal(t, "97.50", *got)
}

func TestCalculate_NoExitPrice(t *testing.T) {
	// An open position has no realized P&L regardless of the other fields.
	got := Calculate(models.DirectionLong, "100", nil, "10", "0")

	assert.Nil(t, got)
}

func TestCalculate_MalformedInputsDegradeToNil(t *testing.T) {
	assert.Nil(t, Calculate(models.DirectionLong, "not-a-number", strPtr("110"), "10", "0"))
	assert.Nil(t, Calculate(models.DirectionLong, "100", strPtr("garbage"), "10", "0"))
	assert.Nil(t, Calculate(models.DirectionLong, "100", strPtr("110"), "", "0"))
}

func TestCalculate_MalformedFeesTreatedAsZero(t *testing.T) {
	got := Calculate(models.DirectionLong, "100", strPtr("110"), "10", "")

	assert.NotNil(t, got)
	assert.Equal(t, "100.00", *got)
}

func TestCalculate_RoundsToTwoDecimals(t *testing.T) {
	// 0.3333 * 3 = 0.9999, formatted as 1.00
	got := Calculate(models.DirectionLong, "10.0000", strPtr("10.3333"), "3", "0")

	assert.NotNil(t, got)
	assert.Equal(t, "1.00", *got)
}

func TestCalculate_Breakeven(t *testing.T) {
	got := Calculate(models.DirectionShort, "50", strPtr("50"), "100", "0")

	assert.NotNil(t, got)
	assert.Equal(t, "0.00", *got)
}
