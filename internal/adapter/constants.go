package adapter

import "time"

// Calibration constants for the aggregation heuristics. These are fixed
// business rules, not statistically derived; keeping them named makes
// recalibration auditable without touching the aggregation code.
const (
	// ActiveCustomerWindow bounds how far back a customer's latest
	// activity may be for them to count as active.
	ActiveCustomerWindow = 30 * 24 * time.Hour

	// NewCustomerWindow bounds how recent a customer's earliest activity
	// must be for them to count as new.
	NewCustomerWindow = 30 * 24 * time.Hour

	// ChurnCutoff is how stale a customer's latest activity must be
	// before they count as churned.
	ChurnCutoff = 90 * 24 * time.Hour

	// RecurringMinOccurrences is how many times an identical amount must
	// appear among manual income transactions before the whole group is
	// treated as recurring. This is a heuristic, not ground truth.
	RecurringMinOccurrences = 3

	// TopProductLimit caps the ranked product list.
	TopProductLimit = 10

	// Uncategorized is the category bucket for transactions without one.
	Uncategorized = "Uncategorized"

	// subscriptionMarker flags recurring revenue in platform
	// descriptions. Platform descriptions are structured, so a substring
	// match is deliberately narrower and more reliable than the manual
	// amount-grouping heuristic.
	subscriptionMarker = "subscription"
)

// costOfGoodsCategories is the fixed category-name list the manual adapter
// uses to estimate cost of goods. Matching is case-insensitive on the
// trimmed name.
var costOfGoodsCategories = map[string]bool{
	"PRODUCT SALES": true,
	"INVENTORY":     true,
	"MATERIALS":     true,
	"COST OF GOODS": true,
}
