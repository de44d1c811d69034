package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
)

func TestToMinorUnits(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		expected int64
	}{
		{name: "whole value", amount: "150000", expected: 15000000},
		{name: "two decimal places", amount: "99.99", expected: 9999},
		{name: "rounds half up", amount: "0.005", expected: 1},
		{name: "rounds fractional minor units", amount: "10.555", expected: 1056},
		{name: "rounds down below half", amount: "10.554", expected: 1055},
		{name: "zero", amount: "0", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tc.amount)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, entity.ToMinorUnits(amount))
		})
	}
}

func TestParseMinorUnits(t *testing.T) {
	testCases := []struct {
		name        string
		value       string
		expected    int64
		expectError bool
	}{
		{name: "valid value", value: "15000000", expected: 15000000},
		{name: "value with whitespace", value: " 15000000 ", expected: 15000000},
		{name: "empty value", value: "", expectError: true},
		{name: "non-numeric value", value: "abc", expectError: true},
		{name: "decimal value is rejected", value: "150.00", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := entity.ParseMinorUnits(tc.value)

			if tc.expectError {
				assert.True(t, errors.Is(err, errs.ErrInvalidAmount))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestFormatSignDate(t *testing.T) {
	timestamp := time.Date(2024, 5, 17, 10, 30, 45, 0, time.Local)
	assert.Equal(t, "20240517103045", entity.FormatSignDate(timestamp))
}
