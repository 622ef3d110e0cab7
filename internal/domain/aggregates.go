package domain

// Canonical aggregates are derived value objects: fully recomputed on every
// call from the current transaction snapshot, never mutated in place, and
// never persisted by this core.

// RevenueData summarizes income regardless of source.
// Invariant: RecurringRevenue + OneTimeRevenue == TotalRevenue (within
// floating-point tolerance).
type RevenueData struct {
	TotalRevenue      float64 `json:"total_revenue"`
	RecurringRevenue  float64 `json:"recurring_revenue"`
	OneTimeRevenue    float64 `json:"one_time_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	// IncomeCount is the number of income transactions behind the totals.
	// A composite view needs it to recompute AverageOrderValue without
	// weighting artifacts.
	IncomeCount int                `json:"income_count"`
	ByPeriod    map[string]float64 `json:"by_period"`
	ByCategory  map[string]float64 `json:"by_category"`
}

// ExpenseData summarizes outgoings. OperatingExpenses + CostOfGoods equals
// TotalExpenses for sources that report general expenses; a platform-only
// view reports refunds in the total with both splits at zero because
// platforms do not expose operating costs.
type ExpenseData struct {
	TotalExpenses     float64            `json:"total_expenses"`
	OperatingExpenses float64            `json:"operating_expenses"`
	CostOfGoods       float64            `json:"cost_of_goods"`
	ByCategory        map[string]float64 `json:"by_category"`
	ByPeriod          map[string]float64 `json:"by_period"`
}

// CustomerData summarizes the customer base visible to a source.
// ChurnRate is a fraction in [0,1].
type CustomerData struct {
	TotalCustomers  int            `json:"total_customers"`
	ActiveCustomers int            `json:"active_customers"`
	NewCustomers    int            `json:"new_customers"`
	LifetimeValue   float64        `json:"lifetime_value"`
	ChurnRate       float64        `json:"churn_rate"`
	ByPeriod        map[string]int `json:"by_period"`
}

// ProductStat carries per-product totals. Margin stays zero when the source
// exposes no cost data.
type ProductStat struct {
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
	Margin   float64 `json:"margin"`
}

// ProductData summarizes the product catalogue visible to a source.
// TopProducts holds at most the ten highest-revenue products, sorted by
// revenue descending; ByProduct carries the full catalogue keyed by name so
// composite views can re-rank without losing products below the cutoff.
type ProductData struct {
	TotalProducts int                    `json:"total_products"`
	TopProducts   []ProductStat          `json:"top_products"`
	ByProduct     map[string]ProductStat `json:"by_product"`
}
