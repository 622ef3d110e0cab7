package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
)

func series(values ...float64) map[string]float64 {
	months := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}
	m := map[string]float64{}
	for i, v := range values {
		m[months[i]] = v
	}
	return m
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		data map[string]float64
		band float64
		want domain.TrendDirection
	}{
		{"clear growth", series(100, 100, 100, 150, 150, 150), changeBand, domain.TrendIncreasing},
		{"clear decline", series(150, 150, 150, 100, 100, 100), changeBand, domain.TrendDecreasing},
		{"within the band", series(100, 100, 100, 102, 101, 100), changeBand, domain.TrendStable},
		{"two periods of growth", series(100, 1000), changeBand, domain.TrendIncreasing},
		{"three periods of growth", series(100, 100, 1000), changeBand, domain.TrendIncreasing},
		{"four periods of decline", series(200, 200, 100, 100), changeBand, domain.TrendDecreasing},
		{"single period defaults to stable", series(100), changeBand, domain.TrendStable},
		{"no data defaults to stable", nil, changeBand, domain.TrendStable},
		{"wide band absorbs an 8% move", series(100, 100, 100, 108, 108, 108), cashFlowChangeBand, domain.TrendStable},
		{"narrow band flags an 8% move", series(100, 100, 100, 108, 108, 108), changeBand, domain.TrendIncreasing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.data, tt.band))
		})
	}
}

func TestConfidenceSteps(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 30},
		{9, 30},
		{10, 60},
		{49, 60},
		{50, 80},
		{99, 80},
		{100, 90},
		{5000, 90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, confidenceFor(tt.count), "count %d", tt.count)
	}
}

func TestAnalyze_ExcellentTrendInsight(t *testing.T) {
	rev := domain.RevenueData{ByPeriod: series(100, 100, 100, 200, 200, 200)}
	exp := domain.ExpenseData{ByPeriod: series(50, 50, 50, 50, 50, 50)}

	result := NewAnalyzer().Analyze(rev, exp, domain.CustomerData{}, 120)
	assert.Equal(t, domain.TrendIncreasing, result.Revenue)
	assert.Equal(t, domain.TrendStable, result.Expenses)
	assert.Equal(t, 90.0, result.Confidence)
	assert.Contains(t, result.Insights, "Revenue is growing while expenses stay under control - excellent trend")
}

func TestAnalyze_CashFlowIsDifferenceOfSeries(t *testing.T) {
	// Revenue flat, expenses falling: cash flow improves.
	rev := domain.RevenueData{ByPeriod: series(100, 100, 100, 100, 100, 100)}
	exp := domain.ExpenseData{ByPeriod: series(80, 80, 80, 40, 40, 40)}

	result := NewAnalyzer().Analyze(rev, exp, domain.CustomerData{}, 30)
	assert.Equal(t, domain.TrendIncreasing, result.CashFlow)
	assert.Contains(t, result.Insights, "Cash flow is improving")
}

func TestAnalyze_CustomerTrendFromCounts(t *testing.T) {
	cust := domain.CustomerData{ByPeriod: map[string]int{
		"2024-01": 10, "2024-02": 10, "2024-03": 10,
		"2024-04": 4, "2024-05": 4, "2024-06": 4,
	}}
	result := NewAnalyzer().Analyze(domain.RevenueData{}, domain.ExpenseData{}, cust, 12)
	assert.Equal(t, domain.TrendDecreasing, result.Customers)
	assert.Contains(t, result.Insights, "Fewer customers are active than before - consider re-engagement")
}

func TestAnalyze_EmptyInput(t *testing.T) {
	result := NewAnalyzer().Analyze(domain.RevenueData{}, domain.ExpenseData{}, domain.CustomerData{}, 0)
	assert.Equal(t, domain.TrendStable, result.Revenue)
	assert.Equal(t, domain.TrendStable, result.Expenses)
	assert.Equal(t, domain.TrendStable, result.CashFlow)
	assert.Equal(t, domain.TrendStable, result.Customers)
	assert.Equal(t, 30.0, result.Confidence)
}
