// Package model contains the value objects shared by Paytrail requests and
// responses.
package model

import "github.com/shopspring/decimal"

// Ptr returns a pointer to v, for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// FormatAmount renders an amount in minor units (cents) as "15.25".
func FormatAmount(minor int) string {
	return decimal.New(int64(minor), -2).StringFixed(2)
}

// ParseAmount converts a decimal string like "15.25" into minor units.
func ParseAmount(s string) (int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return int(d.Shift(2).Round(0).IntPart()), nil
}
