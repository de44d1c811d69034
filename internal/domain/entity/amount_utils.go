package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "payment-gateway/internal/domain/error"
)

// The gateway encodes amounts as the currency value multiplied by 100.
// Conversion must round to nearest, not truncate, or the two ends disagree
// by a cent on fractional values.

var minorUnitFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a decimal amount to the gateway's integer encoding
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

// ParseMinorUnits parses a callback amount field into the integer encoding
func ParseMinorUnits(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	amount, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return amount, nil
}

// signDateLayout is the gateway's creation timestamp format (yyyyMMddHHmmss)
const signDateLayout = "20060102150405"

// FormatSignDate formats a timestamp the way the gateway expects it in
// vnp_CreateDate, using the local timezone
func FormatSignDate(t time.Time) string {
	return t.Format(signDateLayout)
}
