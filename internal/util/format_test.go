package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{92530, "R$ 92.530,00"},
		{1234.56, "R$ 1.234,56"},
		{0, "R$ 0,00"},
		{-50, "-R$ 50,00"},
		{1075, "R$ 1.075,00"},
		{-0.004, "R$ 0,00"},
		{12.999, "R$ 13,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in), "FormatCurrency(%v)", tt.in)
	}
}

func TestFormatNumberAndWeight(t *testing.T) {
	assert.Equal(t, "7.350", FormatNumber(7350))
	assert.Equal(t, "-48", FormatNumber(-48))
	assert.Equal(t, "12,5", FormatNumber(12.5))
	assert.Equal(t, "0,25", FormatNumber(0.25))
	assert.Equal(t, "33.345 kg", FormatWeight(33345))
}

func TestFormatNumber_RoundsBeforeTrimming(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.999, "13"},
		{0.001, "0"},
		{-0.004, "0"},
		{-0.5, "-0,5"},
		{1234.10, "1.234,1"},
		{2.006, "2,01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1.234.567", FormatCount(1234567))
	assert.Equal(t, "65", FormatCount(65))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 10, 16, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "16/10/2026 14:05", FormatTimestamp(ts))
	assert.Equal(t, "—", FormatTimestamp(time.Time{}))
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "555", FormatOptional("555", true))
	assert.Equal(t, "—", FormatOptional("", false))
	assert.Equal(t, "—", FormatOptional("  ", true))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "FARMARIN", TruncateString("FARMARIN", 10))
	assert.Equal(t, "FARMARI...", TruncateString("FARMARIN IND COM LTDA", 10))
	assert.Equal(t, "Tr", TruncateString("Trânsito", 2))
}
