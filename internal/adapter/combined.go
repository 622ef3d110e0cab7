package adapter

import (
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/money"
)

// CombinedAdapter composes several adapters into one view. Money totals and
// per-period/per-category maps merge additively; customer counts take the
// max across adapters instead of true cross-source deduplication, because
// no source provides a stable customer identity key that would make
// deduplication honest. That approximation can under- or over-count
// depending on overlap and is deliberate.
type CombinedAdapter struct {
	adapters []SourceAdapter
}

// NewCombinedAdapter composes the given adapters, in order. In practice no
// more than one of each variant is composed.
func NewCombinedAdapter(adapters ...SourceAdapter) *CombinedAdapter {
	return &CombinedAdapter{adapters: adapters}
}

func (a *CombinedAdapter) Source() domain.Source { return domain.SourceCombined }

func (a *CombinedAdapter) Available() bool {
	for _, sub := range a.adapters {
		if sub.Available() {
			return true
		}
	}
	return false
}

// Revenue merges field-by-field. The average order value is recomputed
// from the combined total and the combined income-transaction count; a
// mean of per-adapter averages would weight sources by nothing meaningful.
func (a *CombinedAdapter) Revenue() domain.RevenueData {
	var total, recurring money.Sum
	byPeriod := map[string]float64{}
	byCategory := map[string]float64{}
	count := 0

	for _, sub := range a.adapters {
		r := sub.Revenue()
		total.Add(r.TotalRevenue)
		recurring.Add(r.RecurringRevenue)
		count += r.IncomeCount
		mergeAdd(byPeriod, r.ByPeriod)
		mergeAdd(byCategory, r.ByCategory)
	}

	totalRevenue := total.Value()
	recurringRevenue := recurring.Value()
	return domain.RevenueData{
		TotalRevenue:      totalRevenue,
		RecurringRevenue:  recurringRevenue,
		OneTimeRevenue:    money.Round2(totalRevenue - recurringRevenue),
		AverageOrderValue: money.Round2(money.Ratio(totalRevenue, float64(count))),
		IncomeCount:       count,
		ByPeriod:          roundMap(byPeriod),
		ByCategory:        roundMap(byCategory),
	}
}

func (a *CombinedAdapter) Expenses() domain.ExpenseData {
	var total, operating, cogs money.Sum
	byCategory := map[string]float64{}
	byPeriod := map[string]float64{}

	for _, sub := range a.adapters {
		e := sub.Expenses()
		total.Add(e.TotalExpenses)
		operating.Add(e.OperatingExpenses)
		cogs.Add(e.CostOfGoods)
		mergeAdd(byCategory, e.ByCategory)
		mergeAdd(byPeriod, e.ByPeriod)
	}

	return domain.ExpenseData{
		TotalExpenses:     total.Value(),
		OperatingExpenses: operating.Value(),
		CostOfGoods:       cogs.Value(),
		ByCategory:        roundMap(byCategory),
		ByPeriod:          roundMap(byPeriod),
	}
}

// Customers takes the max of per-adapter counts. Churn is averaged,
// weighted by each adapter's customer population, and lifetime value is
// recomputed from the combined revenue over the combined customer count.
func (a *CombinedAdapter) Customers() domain.CustomerData {
	total, active, newCustomers := 0, 0, 0
	var churnWeighted, churnWeight float64
	byPeriod := map[string]int{}

	for _, sub := range a.adapters {
		c := sub.Customers()
		total = maxInt(total, c.TotalCustomers)
		active = maxInt(active, c.ActiveCustomers)
		newCustomers = maxInt(newCustomers, c.NewCustomers)
		churnWeighted += c.ChurnRate * float64(c.TotalCustomers)
		churnWeight += float64(c.TotalCustomers)
		for period, n := range c.ByPeriod {
			byPeriod[period] = maxInt(byPeriod[period], n)
		}
	}

	return domain.CustomerData{
		TotalCustomers:  total,
		ActiveCustomers: active,
		NewCustomers:    newCustomers,
		LifetimeValue:   money.Round2(money.Ratio(a.Revenue().TotalRevenue, float64(total))),
		ChurnRate:       money.Ratio(churnWeighted, churnWeight),
		ByPeriod:        byPeriod,
	}
}

// Products re-merges the full per-product catalogues by name before
// re-ranking, so a product sold through two sources appears once with its
// combined revenue and one ranked below the cutoff in every source can
// still reach the combined top list.
func (a *CombinedAdapter) Products() domain.ProductData {
	byName := map[string]*productAccum{}
	for _, sub := range a.adapters {
		p := sub.Products()
		for _, stat := range p.ByProduct {
			acc := byName[stat.Name]
			if acc == nil {
				acc = &productAccum{}
				byName[stat.Name] = acc
			}
			acc.revenue = money.Round2(acc.revenue + stat.Revenue)
			acc.quantity += stat.Quantity
			acc.margin = money.Round2(acc.margin + stat.Margin)
		}
	}
	return rankProducts(byName)
}

func mergeAdd(dst, src map[string]float64) {
	for k, v := range src {
		dst[k] += v
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
