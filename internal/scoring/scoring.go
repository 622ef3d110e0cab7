// Package scoring converts the canonical aggregates into a weighted 0-100
// financial-health score with a letter grade and qualitative factors. The
// engine is a pure function of its inputs: no I/O, no shared state, no
// failure modes.
package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/money"
)

// Engine scores a snapshot's aggregates. now is the timestamp stamped onto
// the result; it never influences the numbers, which keeps repeated calls
// over the same input numerically identical.
type Engine struct {
	now time.Time
}

// NewEngine returns an engine stamping results with the given time.
func NewEngine(now time.Time) *Engine {
	return &Engine{now: now}
}

// Score computes the five category sub-scores and the weighted overall
// score. An all-empty input scores zero rather than baseline: there is
// nothing to assess.
func (e *Engine) Score(rev domain.RevenueData, exp domain.ExpenseData, cust domain.CustomerData, prod domain.ProductData) domain.FinancialHealthScore {
	if rev.TotalRevenue == 0 && exp.TotalExpenses == 0 && cust.TotalCustomers == 0 && prod.TotalProducts == 0 {
		return domain.FinancialHealthScore{
			Grade: domain.GradeF,
			Factors: domain.HealthFactors{
				Negative:        []string{"No transaction data available"},
				Recommendations: []string{"Connect a data source or record transactions to unlock scoring"},
			},
			UpdatedAt: e.now,
		}
	}

	var f factors
	categories := domain.CategoryScores{
		Revenue:    e.revenueScore(rev, &f),
		Expenses:   e.expenseScore(exp, rev, &f),
		CashFlow:   e.cashFlowScore(rev, exp, &f),
		Customers:  e.customerScore(cust, &f),
		Operations: e.operationsScore(prod, &f),
	}

	weighted := WeightRevenue*categories.Revenue +
		WeightExpenses*categories.Expenses +
		WeightCashFlow*categories.CashFlow +
		WeightCustomers*categories.Customers +
		WeightOperations*categories.Operations

	// Inputs are pre-clamped, but the overall is clamped again after
	// weighting so the invariant holds even if a weight is recalibrated.
	overall := clamp(math.Round(weighted))

	return domain.FinancialHealthScore{
		Overall:    overall,
		Grade:      gradeFor(overall),
		Categories: categories,
		Factors:    f.build(),
		UpdatedAt:  e.now,
	}
}

func (e *Engine) revenueScore(rev domain.RevenueData, f *factors) float64 {
	score := scoreBaseline

	if recent, prior, ok := domain.WindowAverages(rev.ByPeriod, growthWindow); ok {
		growth := money.Ratio(recent-prior, prior)
		switch {
		case growth > strongGrowthRate:
			score += 20
			f.positive("Revenue is growing more than 10% over the prior three months")
		case growth > 0:
			score += 10
		case growth < strongDeclineRate:
			score -= 20
			f.negative("Revenue declined more than 10% versus the prior three months")
			f.recommend("Review pricing and the sales pipeline to reverse the revenue decline")
		case growth < 0:
			score -= 10
		}
	}

	share := money.Ratio(rev.RecurringRevenue, rev.TotalRevenue)
	switch {
	case share > highRecurringShare:
		score += 15
		f.positive("Most revenue is recurring")
	case share > goodRecurringShare:
		score += 10
	case share < lowRecurringShare:
		score -= 10
		f.negative("Low recurring revenue share")
		f.recommend("Add subscription or retainer revenue to stabilize income")
	}

	switch cats := len(rev.ByCategory); {
	case cats >= diverseRevenueCats:
		score += 10
	case cats == singleRevenueCat:
		score -= 15
		f.negative("Revenue depends on a single category")
	}

	return clamp(score)
}

func (e *Engine) expenseScore(exp domain.ExpenseData, rev domain.RevenueData, f *factors) float64 {
	score := scoreBaseline

	ratio := money.Ratio(exp.TotalExpenses, rev.TotalRevenue)
	switch {
	case ratio > criticalExpenseRatio:
		score -= 30
		f.negative("Expenses consume over 90% of revenue")
		f.recommend("Audit the largest expense categories for cuts")
	case ratio > heavyExpenseRatio:
		score -= 20
		f.negative("Expenses consume over 80% of revenue")
	case ratio < leanExpenseRatio:
		score += 20
		f.positive("Expenses are well below revenue")
	case ratio < fairExpenseRatio:
		score += 10
	}

	switch cats := len(exp.ByCategory); {
	case cats >= diverseExpenseCats:
		score += 10
	case cats <= narrowExpenseCats:
		score -= 10
	}

	opShare := money.Ratio(exp.OperatingExpenses, exp.TotalExpenses)
	switch {
	case opShare < leanOperatingShare:
		score += 10
	case opShare > heavyOperatingShare:
		score -= 10
	}

	return clamp(score)
}

func (e *Engine) cashFlowScore(rev domain.RevenueData, exp domain.ExpenseData, f *factors) float64 {
	score := scoreBaseline

	margin := money.Ratio(rev.TotalRevenue-exp.TotalExpenses, rev.TotalRevenue)
	switch {
	case margin < 0:
		score -= 40
		f.negative("Cash flow is negative")
		f.urgentRec("Reduce expenses or increase revenue")
	case margin < thinMargin:
		score -= 15
		f.negative("Cash-flow margin is under 5%")
	case margin > excellentMargin:
		score += 25
		f.positive("Cash-flow margin is above 30%")
	case margin > goodMargin:
		score += 15
		f.positive("Healthy cash-flow margin")
	case margin > fairMargin:
		score += 5
	}

	if frac, ok := positiveCashFlowFraction(rev.ByPeriod, exp.ByPeriod); ok {
		switch {
		case frac > highConsistency:
			score += 15
			f.positive("Revenue beat expenses in most recent months")
		case frac > fairConsistency:
			score += 5
		case frac < lowConsistency:
			score -= 20
			f.negative("Expenses exceeded revenue in most recent months")
		}
	}

	return clamp(score)
}

func (e *Engine) customerScore(cust domain.CustomerData, f *factors) float64 {
	score := scoreBaseline

	newRate := money.Ratio(float64(cust.NewCustomers), float64(cust.TotalCustomers))
	switch {
	case newRate > fastNewCustomerRate:
		score += 20
		f.positive("Fast new-customer growth")
	case newRate > goodNewCustomerRate:
		score += 10
	case newRate < slowNewCustomerRate:
		score -= 10
	}

	switch ltv := cust.LifetimeValue; {
	case ltv > highLifetimeValue:
		score += 15
		f.positive("High customer lifetime value")
	case ltv > goodLifetimeValue:
		score += 10
	case ltv < lowLifetimeValue:
		score -= 10
	}

	// Churn is held as a fraction on CustomerData; the thresholds here are
	// expressed in percent.
	churnPct := cust.ChurnRate * 100
	switch {
	case churnPct > highChurnPct:
		score -= 25
		f.negative("High customer churn")
		f.recommend("Invest in retention before acquisition")
	case churnPct > elevatedChurnPct:
		score -= 15
		f.negative("Elevated customer churn")
	case churnPct < lowChurnPct:
		score += 15
	case churnPct < fairChurnPct:
		score += 5
	}

	return clamp(score)
}

func (e *Engine) operationsScore(prod domain.ProductData, f *factors) float64 {
	score := scoreBaseline

	switch n := prod.TotalProducts; {
	case n >= diverseProductCount:
		score += 15
		f.positive("Diversified product catalogue")
	case n >= severalProductCount:
		score += 10
	case n == singleProductCount:
		score -= 15
	}

	if share, ok := topProductShare(prod); ok {
		switch {
		case share < diversifiedTopShare:
			score += 10
		case share > concentratedTopShare:
			score -= 15
			f.negative("Revenue is concentrated in a single product")
			f.recommend("Diversify the product mix")
		}
	}

	return clamp(score)
}

// positiveCashFlowFraction looks at up to the last cashFlowConsistencyWindow
// aligned monthly periods and returns the fraction where revenue exceeded
// expenses. ok is false when no period exists on either side.
func positiveCashFlowFraction(revByPeriod, expByPeriod map[string]float64) (float64, bool) {
	seen := map[string]bool{}
	for k := range revByPeriod {
		seen[k] = true
	}
	for k := range expByPeriod {
		seen[k] = true
	}
	if len(seen) == 0 {
		return 0, false
	}

	periods := make([]string, 0, len(seen))
	for k := range seen {
		periods = append(periods, k)
	}
	sort.Strings(periods)
	if len(periods) > cashFlowConsistencyWindow {
		periods = periods[len(periods)-cashFlowConsistencyWindow:]
	}

	positive := 0
	for _, p := range periods {
		if revByPeriod[p] > expByPeriod[p] {
			positive++
		}
	}
	return float64(positive) / float64(len(periods)), true
}

func topProductShare(prod domain.ProductData) (float64, bool) {
	if len(prod.TopProducts) == 0 {
		return 0, false
	}
	var total float64
	for _, p := range prod.TopProducts {
		total += p.Revenue
	}
	if total == 0 {
		return 0, false
	}
	return prod.TopProducts[0].Revenue / total, true
}

func gradeFor(overall float64) domain.Grade {
	switch {
	case overall >= GradeABound:
		return domain.GradeA
	case overall >= GradeBBound:
		return domain.GradeB
	case overall >= GradeCBound:
		return domain.GradeC
	case overall >= GradeDBound:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// factors accumulates qualitative findings while the categories score.
// urgent recommendations go to the front of the list.
type factors struct {
	pos    []string
	neg    []string
	recs   []string
	urgent []string
}

func (f *factors) positive(msg string)  { f.pos = append(f.pos, msg) }
func (f *factors) negative(msg string)  { f.neg = append(f.neg, msg) }
func (f *factors) recommend(msg string) { f.recs = append(f.recs, msg) }

func (f *factors) urgentRec(msg string) { f.urgent = append(f.urgent, msg) }

func (f *factors) build() domain.HealthFactors {
	return domain.HealthFactors{
		Positive:        f.pos,
		Negative:        f.neg,
		Recommendations: append(append([]string{}, f.urgent...), f.recs...),
	}
}
