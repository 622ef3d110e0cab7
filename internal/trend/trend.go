// Package trend classifies the direction of each metric family by comparing
// the most recent three-period average against the prior three periods,
// shrinking both windows symmetrically on shorter histories.
package trend

import (
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/money"
)

const (
	comparisonWindow = 3

	// A metric must move more than 5% between windows to leave "stable".
	// Cash flow is a difference of differences and noisier, so it gets a
	// wider band.
	changeBand         = 0.05
	cashFlowChangeBand = 0.10
)

// confidenceSteps is a stepped function of transaction volume. This is
// arbitrary calibration rather than anything derived from variance; treat
// the value as a coarse hint, not a statistical confidence interval.
var confidenceSteps = []struct {
	below      int
	confidence float64
}{
	{10, 30},
	{50, 60},
	{100, 80},
}

const confidenceCeiling = 90

// Analyzer classifies period-over-period movement.
type Analyzer struct{}

// NewAnalyzer returns a trend analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies revenue, expenses, cash flow and customers
// independently, derives confidence from the transaction count, and
// generates rule-based insight text from the pairwise combinations.
func (a *Analyzer) Analyze(rev domain.RevenueData, exp domain.ExpenseData, cust domain.CustomerData, transactionCount int) domain.TrendAnalysis {
	cashFlow := map[string]float64{}
	for k, v := range rev.ByPeriod {
		cashFlow[k] = v
	}
	for k, v := range exp.ByPeriod {
		cashFlow[k] -= v
	}

	customers := map[string]float64{}
	for k, v := range cust.ByPeriod {
		customers[k] = float64(v)
	}

	t := domain.TrendAnalysis{
		Revenue:    classify(rev.ByPeriod, changeBand),
		Expenses:   classify(exp.ByPeriod, changeBand),
		CashFlow:   classify(cashFlow, cashFlowChangeBand),
		Customers:  classify(customers, changeBand),
		Confidence: confidenceFor(transactionCount),
	}
	t.Insights = insightsFor(t)
	return t
}

// classify compares symmetric windows over the period series. Fewer than
// two periods means there is nothing to compare: stable by default.
func classify(byPeriod map[string]float64, band float64) domain.TrendDirection {
	recent, prior, ok := domain.WindowAverages(byPeriod, comparisonWindow)
	if !ok {
		return domain.TrendStable
	}
	change := money.Ratio(recent-prior, prior)
	switch {
	case change > band:
		return domain.TrendIncreasing
	case change < -band:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

func confidenceFor(transactionCount int) float64 {
	for _, step := range confidenceSteps {
		if transactionCount < step.below {
			return step.confidence
		}
	}
	return confidenceCeiling
}

// insightsFor pairs the four classifications into fixed statements. This is
// rule-based text assembly, not generation.
func insightsFor(t domain.TrendAnalysis) []string {
	var insights []string

	switch {
	case t.Revenue == domain.TrendIncreasing && t.Expenses != domain.TrendIncreasing:
		insights = append(insights, "Revenue is growing while expenses stay under control - excellent trend")
	case t.Revenue == domain.TrendIncreasing && t.Expenses == domain.TrendIncreasing:
		insights = append(insights, "Revenue and expenses are rising together - watch that margins hold")
	case t.Revenue == domain.TrendDecreasing:
		insights = append(insights, "Revenue is declining - review pricing and sales activity")
	}

	if t.Expenses == domain.TrendIncreasing && t.Revenue != domain.TrendIncreasing {
		insights = append(insights, "Expenses are rising without matching revenue growth")
	}

	switch t.CashFlow {
	case domain.TrendIncreasing:
		insights = append(insights, "Cash flow is improving")
	case domain.TrendDecreasing:
		insights = append(insights, "Cash flow is deteriorating - monitor the runway")
	}

	switch t.Customers {
	case domain.TrendIncreasing:
		insights = append(insights, "The customer base is growing")
	case domain.TrendDecreasing:
		insights = append(insights, "Fewer customers are active than before - consider re-engagement")
	}

	return insights
}
