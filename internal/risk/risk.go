// Package risk computes four independent 0-100 risk factors (higher is
// worse) and an overall level from their unweighted average.
package risk

import (
	"math"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/money"
)

// Fixed calibration for the factor buckets. The customer-concentration
// factor is a coarse proxy on the head count, not a true concentration
// measure such as Gini or HHI.
const (
	negativeCashFlowRisk = 90

	thinMargin = 0.05
	lowMargin  = 0.10
	fairMargin = 0.20

	tinyCustomerBase  = 5
	smallCustomerBase = 10
	midCustomerBase   = 20

	criticalExpenseRatio = 0.90
	heavyExpenseRatio    = 0.80
	highExpenseRatio     = 0.70
	fairExpenseRatio     = 0.60

	concentratedTopShare = 0.70
	skewedTopShare       = 0.50
	lowRecurringShare    = 0.30
	fairRecurringShare   = 0.50

	lowLevelBound    = 25
	mediumLevelBound = 50
	highLevelBound   = 75

	recommendationGate       = 60
	strictRecommendationGate = 70
)

// Assessor computes risk factors from the canonical aggregates.
type Assessor struct{}

// NewAssessor returns a risk assessor.
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess computes the four factors, the averaged level, and the gated
// recommendations. It is total: any input, including all-zero aggregates,
// produces a defined assessment.
func (a *Assessor) Assess(rev domain.RevenueData, exp domain.ExpenseData, cust domain.CustomerData, prod domain.ProductData) domain.RiskAssessment {
	r := domain.RiskAssessment{
		CashFlowRisk:          cashFlowRisk(rev, exp),
		CustomerConcentration: concentrationRisk(cust),
		ExpenseRisk:           expenseRisk(rev, exp),
		RevenueRisk:           revenueRisk(rev, prod),
	}

	average := (r.CashFlowRisk + r.CustomerConcentration + r.ExpenseRisk + r.RevenueRisk) / 4
	r.Level = levelFor(average)
	r.Recommendations = recommendationsFor(r)
	return r
}

// cashFlowRisk treats any negative net cash flow as near-critical
// regardless of how thin or deep the deficit is.
func cashFlowRisk(rev domain.RevenueData, exp domain.ExpenseData) float64 {
	net := rev.TotalRevenue - exp.TotalExpenses
	if net < 0 {
		return negativeCashFlowRisk
	}
	margin := money.Ratio(net, rev.TotalRevenue)
	switch {
	case margin < thinMargin:
		return 70
	case margin < lowMargin:
		return 50
	case margin < fairMargin:
		return 30
	default:
		return 10
	}
}

func concentrationRisk(cust domain.CustomerData) float64 {
	switch n := cust.TotalCustomers; {
	case n < tinyCustomerBase:
		return 80
	case n < smallCustomerBase:
		return 60
	case n < midCustomerBase:
		return 40
	default:
		return 20
	}
}

// expenseRisk forces the ceiling when there is no revenue at all: spending
// against zero income is the riskiest posture there is.
func expenseRisk(rev domain.RevenueData, exp domain.ExpenseData) float64 {
	if rev.TotalRevenue == 0 {
		return 100
	}
	ratio := exp.TotalExpenses / rev.TotalRevenue
	switch {
	case ratio > criticalExpenseRatio:
		return 90
	case ratio > heavyExpenseRatio:
		return 70
	case ratio > highExpenseRatio:
		return 50
	case ratio > fairExpenseRatio:
		return 30
	default:
		return 10
	}
}

// revenueRisk is additive over concentration and recurring-share findings,
// capped at 100.
func revenueRisk(rev domain.RevenueData, prod domain.ProductData) float64 {
	var risk float64

	if len(prod.TopProducts) > 0 {
		share := money.Ratio(prod.TopProducts[0].Revenue, rev.TotalRevenue)
		switch {
		case share > concentratedTopShare:
			risk += 40
		case share > skewedTopShare:
			risk += 20
		}
	}

	recurring := money.Ratio(rev.RecurringRevenue, rev.TotalRevenue)
	switch {
	case recurring < lowRecurringShare:
		risk += 30
	case recurring < fairRecurringShare:
		risk += 15
	}

	return math.Min(risk, 100)
}

func levelFor(average float64) domain.RiskLevel {
	switch {
	case average < lowLevelBound:
		return domain.RiskLow
	case average < mediumLevelBound:
		return domain.RiskMedium
	case average < highLevelBound:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}

// recommendationsFor emits at most one recommendation per factor, gated on
// that factor's severity.
func recommendationsFor(r domain.RiskAssessment) []string {
	var recs []string
	if r.CashFlowRisk > strictRecommendationGate {
		recs = append(recs, "Build a cash buffer and cut discretionary spending")
	}
	if r.CustomerConcentration > recommendationGate {
		recs = append(recs, "Broaden the customer base to reduce dependence on a few buyers")
	}
	if r.ExpenseRisk > strictRecommendationGate {
		recs = append(recs, "Reduce the expense ratio before it erodes the margin entirely")
	}
	if r.RevenueRisk > recommendationGate {
		recs = append(recs, "Diversify revenue streams and grow the recurring share")
	}
	return recs
}
