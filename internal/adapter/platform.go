package adapter

import (
	"math"
	"strings"
	"time"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/money"
)

// PlatformAdapter aggregates transactions from a connected commerce
// platform, optionally supplemented by structured order records. Customer
// metrics come from order customer ids, which are exact rather than
// heuristic.
type PlatformAdapter struct {
	txs    []domain.Transaction
	orders []domain.Order
	now    time.Time
}

// NewPlatformAdapter builds an adapter over the platform-tagged, non-failed
// transactions plus the given order records.
func NewPlatformAdapter(txs []domain.Transaction, orders []domain.Order, now time.Time) *PlatformAdapter {
	own := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Source == domain.SourcePlatform && t.Status != domain.StatusFailed {
			own = append(own, t)
		}
	}
	return &PlatformAdapter{txs: own, orders: orders, now: now}
}

func (a *PlatformAdapter) Source() domain.Source { return domain.SourcePlatform }

func (a *PlatformAdapter) Available() bool { return len(a.txs) > 0 }

// Revenue sums income transactions. Recurring revenue is flagged by a
// "subscription" marker in the description.
func (a *PlatformAdapter) Revenue() domain.RevenueData {
	var total, recurring money.Sum
	byPeriod := map[string]float64{}
	byCategory := map[string]float64{}
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
		if strings.Contains(strings.ToLower(t.Description), subscriptionMarker) {
			recurring.Add(amount)
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

// Expenses is limited to refunds: platforms do not report general operating
// expenses, so the operating and cost-of-goods splits stay zero for this
// adapter on its own.
func (a *PlatformAdapter) Expenses() domain.ExpenseData {
	var total money.Sum
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
	}

	return domain.ExpenseData{
		TotalExpenses: total.Value(),
		ByCategory:    roundMap(byCategory),
		ByPeriod:      roundMap(byPeriod),
	}
}

// Customers derives metrics from order customer ids. Unlike the manual
// churn rule, the denominator is every known customer: order history is
// reliable enough that a single stale order is already signal.
func (a *PlatformAdapter) Customers() domain.CustomerData {
	spans := map[string]*activitySpan{}
	periodIDs := map[string]map[string]bool{}

	for _, o := range a.orders {
		if o.CustomerID == "" {
			continue
		}
		span := spans[o.CustomerID]
		if span == nil {
			span = &activitySpan{}
			spans[o.CustomerID] = span
		}
		span.observe(o.CreatedAt)

		period := domain.PeriodKey(o.CreatedAt)
		if periodIDs[period] == nil {
			periodIDs[period] = map[string]bool{}
		}
		periodIDs[period][o.CustomerID] = true
	}

	active, newCustomers, churned := 0, 0, 0
	for _, span := range spans {
		if a.now.Sub(span.latest) <= ActiveCustomerWindow {
			active++
		}
		if a.now.Sub(span.earliest) <= NewCustomerWindow {
			newCustomers++
		}
		if a.now.Sub(span.latest) > ChurnCutoff {
			churned++
		}
	}

	byPeriod := map[string]int{}
	for period, ids := range periodIDs {
		byPeriod[period] = len(ids)
	}

	total := len(spans)
	return domain.CustomerData{
		TotalCustomers:  total,
		ActiveCustomers: active,
		NewCustomers:    newCustomers,
		LifetimeValue:   money.Round2(money.Ratio(a.Revenue().TotalRevenue, float64(total))),
		ChurnRate:       money.Ratio(float64(churned), float64(total)),
		ByPeriod:        byPeriod,
	}
}

// Products aggregates order line items by product title.
func (a *PlatformAdapter) Products() domain.ProductData {
	byName := map[string]*productAccum{}
	for _, o := range a.orders {
		for _, item := range o.LineItems {
			name := strings.TrimSpace(item.Title)
			if name == "" {
				continue
			}
			acc := byName[name]
			if acc == nil {
				acc = &productAccum{}
				byName[name] = acc
			}
			acc.revenue = money.Round2(acc.revenue + item.Price*float64(item.Quantity))
			acc.quantity += item.Quantity
		}
	}
	return rankProducts(byName)
}
