// Package money provides cent-exact arithmetic helpers for aggregation.
// Amounts arrive as float64 and leave as float64; summation goes through
// shopspring/decimal so that long runs of additions do not accumulate
// binary-float drift.
package money

import (
	"github.com/shopspring/decimal"
)

// Sum accumulates amounts with decimal precision and returns the total
// rounded to cents.
type Sum struct {
	total decimal.Decimal
}

// Add accumulates one amount.
func (s *Sum) Add(amount float64) {
	s.total = s.total.Add(decimal.NewFromFloat(amount))
}

// Value returns the accumulated total rounded to two decimal places.
func (s *Sum) Value() float64 {
	v, _ := s.total.Round(2).Float64()
	return v
}

// Round2 rounds an amount to cents.
func Round2(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}

// BucketKey collapses an amount onto a cent-resolution key, so that amounts
// within 0.01 of each other group together. Used by the recurring-revenue
// heuristic.
func BucketKey(amount float64) string {
	return decimal.NewFromFloat(amount).Round(2).String()
}

// Ratio returns num/den, or 0 when den is zero. Every ratio in this core
// goes through here so no output is ever NaN or infinite.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
