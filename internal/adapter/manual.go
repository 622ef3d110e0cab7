package adapter

import (
	"math"
	"strings"
	"time"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/money"
)

// ManualAdapter aggregates user-entered transactions. Customer and product
// identity come from heuristic description parsing, and recurring revenue
// is estimated by amount grouping; both are approximations and downstream
// consumers should not assume more accuracy than that.
type ManualAdapter struct {
	txs       []domain.Transaction
	now       time.Time
	extractor NameExtractor
}

// NewManualAdapter builds an adapter over the manual-tagged, non-failed
// transactions in the snapshot. now anchors the 30- and 90-day windows.
func NewManualAdapter(txs []domain.Transaction, now time.Time) *ManualAdapter {
	return NewManualAdapterWithExtractor(txs, now, NewPatternExtractor())
}

// NewManualAdapterWithExtractor is NewManualAdapter with a caller-chosen
// extraction strategy.
func NewManualAdapterWithExtractor(txs []domain.Transaction, now time.Time, extractor NameExtractor) *ManualAdapter {
	own := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Source == domain.SourceManual && t.Status != domain.StatusFailed {
			own = append(own, t)
		}
	}
	return &ManualAdapter{txs: own, now: now, extractor: extractor}
}

func (a *ManualAdapter) Source() domain.Source { return domain.SourceManual }

func (a *ManualAdapter) Available() bool { return len(a.txs) > 0 }

// Revenue sums income transactions. Any amount value appearing at least
// RecurringMinOccurrences times (at cent tolerance) is treated as
// recurring.
func (a *ManualAdapter) Revenue() domain.RevenueData {
	var total money.Sum
	byPeriod := map[string]float64{}
	byCategory := map[string]float64{}
	buckets := map[string][]float64{}
	count := 0

	for _, t := range a.txs {
		if t.Type != domain.TypeIncome {
			continue
		}
		amount := math.Abs(t.Amount)
		total.Add(amount)
		count++
		byPeriod[domain.PeriodKey(t.Date)] += amount
		byCategory[categoryOf(t)] += amount
		key := money.BucketKey(amount)
		buckets[key] = append(buckets[key], amount)
	}

	var recurring money.Sum
	for _, amounts := range buckets {
		if len(amounts) >= RecurringMinOccurrences {
			for _, v := range amounts {
				recurring.Add(v)
			}
		}
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

// Expenses sums expense transactions. Cost of goods is estimated by
// matching category names against a fixed list.
func (a *ManualAdapter) Expenses() domain.ExpenseData {
	var total, cogs money.Sum
	byCategory := map[string]float64{}
	byPeriod := map[string]float64{}

	for _, t := range a.txs {
		if t.Type != domain.TypeExpense {
			continue
		}
		amount := math.Abs(t.Amount)
		total.Add(amount)
		byCategory[categoryOf(t)] += amount
		byPeriod[domain.PeriodKey(t.Date)] += amount
		if isCostOfGoods(t.Category) {
			cogs.Add(amount)
		}
	}

	totalExpenses := total.Value()
	costOfGoods := cogs.Value()
	return domain.ExpenseData{
		TotalExpenses:     totalExpenses,
		OperatingExpenses: money.Round2(totalExpenses - costOfGoods),
		CostOfGoods:       costOfGoods,
		ByCategory:        roundMap(byCategory),
		ByPeriod:          roundMap(byPeriod),
	}
}

// Customers derives customer metrics from names extracted out of income
// transaction descriptions. Transactions with no extractable name count
// toward revenue but not here.
func (a *ManualAdapter) Customers() domain.CustomerData {
	spans := map[string]*activitySpan{}
	periodNames := map[string]map[string]bool{}
	var revenue money.Sum

	for _, t := range a.txs {
		if t.Type != domain.TypeIncome {
			continue
		}
		revenue.Add(math.Abs(t.Amount))
		name := a.extractor.Extract(t.Description).Customer
		if name == "" {
			continue
		}
		span := spans[name]
		if span == nil {
			span = &activitySpan{}
			spans[name] = span
		}
		span.observe(t.Date)

		period := domain.PeriodKey(t.Date)
		if periodNames[period] == nil {
			periodNames[period] = map[string]bool{}
		}
		periodNames[period][name] = true
	}

	active, newCustomers := 0, 0
	churnable, churned := 0, 0
	for _, span := range spans {
		if a.now.Sub(span.latest) <= ActiveCustomerWindow {
			active++
		}
		if a.now.Sub(span.earliest) <= NewCustomerWindow {
			newCustomers++
		}
		// Single-transaction customers are excluded from the churn
		// population: one data point says nothing about retention.
		if span.events >= 2 {
			churnable++
			if a.now.Sub(span.latest) > ChurnCutoff {
				churned++
			}
		}
	}

	byPeriod := map[string]int{}
	for period, names := range periodNames {
		byPeriod[period] = len(names)
	}

	total := len(spans)
	return domain.CustomerData{
		TotalCustomers:  total,
		ActiveCustomers: active,
		NewCustomers:    newCustomers,
		LifetimeValue:   money.Round2(money.Ratio(revenue.Value(), float64(total))),
		ChurnRate:       money.Ratio(float64(churned), float64(churnable)),
		ByPeriod:        byPeriod,
	}
}

// Products derives product totals from extracted product names. Margin
// stays zero: manual entries carry no cost data.
func (a *ManualAdapter) Products() domain.ProductData {
	byName := map[string]*productAccum{}
	for _, t := range a.txs {
		if t.Type != domain.TypeIncome {
			continue
		}
		name := a.extractor.Extract(t.Description).Product
		if name == "" {
			continue
		}
		acc := byName[name]
		if acc == nil {
			acc = &productAccum{}
			byName[name] = acc
		}
		acc.revenue = money.Round2(acc.revenue + math.Abs(t.Amount))
		acc.quantity++
	}
	return rankProducts(byName)
}

func categoryOf(t domain.Transaction) string {
	if strings.TrimSpace(t.Category) == "" {
		return Uncategorized
	}
	return t.Category
}

func isCostOfGoods(category string) bool {
	return costOfGoodsCategories[strings.ToUpper(strings.TrimSpace(category))]
}

func roundMap(m map[string]float64) map[string]float64 {
	for k, v := range m {
		m[k] = money.Round2(v)
	}
	return m
}

// activitySpan tracks a customer's first and last observed activity.
type activitySpan struct {
	earliest time.Time
	latest   time.Time
	events   int
}

func (s *activitySpan) observe(t time.Time) {
	if s.events == 0 || t.Before(s.earliest) {
		s.earliest = t
	}
	if s.events == 0 || t.After(s.latest) {
		s.latest = t
	}
	s.events++
}
