package kernel_test

import (
	"testing"

	"ordermodel/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"0", "$0.00"},
		{"17.5", "$17.50"},
		{"22.50", "$22.50"},
		{"9.99", "$9.99"},
		{"999.999", "$1,000.00"},
		{"1234.5", "$1,234.50"},
		{"123456", "$123,456.00"},
		{"1234567.891", "$1,234,567.89"},
		{"0.005", "$0.01"},
		{"-3", "-$3.00"},
		{"-1234.5", "-$1,234.50"},
		{"-0.001", "$0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.FormatMoney(decimal.RequireFromString(tc.input)))
		})
	}
}
