package domain

import "time"

// Grade is the letter grade derived from the overall health score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// CategoryScores holds the five sub-scores, each clamped to [0,100].
type CategoryScores struct {
	Revenue    float64 `json:"revenue"`
	Expenses   float64 `json:"expenses"`
	CashFlow   float64 `json:"cash_flow"`
	Customers  float64 `json:"customers"`
	Operations float64 `json:"operations"`
}

// HealthFactors are the qualitative findings behind a score.
type HealthFactors struct {
	Positive        []string `json:"positive"`
	Negative        []string `json:"negative"`
	Recommendations []string `json:"recommendations"`
}

// FinancialHealthScore is the weighted 0-100 composite of the five category
// sub-scores, with its letter grade and qualitative factors.
type FinancialHealthScore struct {
	Overall    float64        `json:"overall"`
	Grade      Grade          `json:"grade"`
	Categories CategoryScores `json:"categories"`
	Factors    HealthFactors  `json:"factors"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TrendDirection classifies a metric's movement between adjacent windows.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// TrendAnalysis classifies each metric family independently and carries a
// volume-derived confidence value plus rule-generated insight text.
type TrendAnalysis struct {
	Revenue    TrendDirection `json:"revenue"`
	Expenses   TrendDirection `json:"expenses"`
	CashFlow   TrendDirection `json:"cash_flow"`
	Customers  TrendDirection `json:"customers"`
	Confidence float64        `json:"confidence"`
	Insights   []string       `json:"insights"`
}

// RiskLevel summarizes the four risk factors.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskAssessment holds four independent 0-100 factors (higher is worse),
// the level derived from their unweighted average, and gated
// recommendations.
type RiskAssessment struct {
	CashFlowRisk          float64   `json:"cash_flow_risk"`
	CustomerConcentration float64   `json:"customer_concentration_risk"`
	ExpenseRisk           float64   `json:"expense_risk"`
	RevenueRisk           float64   `json:"revenue_risk"`
	Level                 RiskLevel `json:"level"`
	Recommendations       []string  `json:"recommendations"`
}

// ConfidenceLevel grades how trustworthy downstream insights are.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// SourceProfile is the Source Profiler's per-source data-quality summary.
// All metrics are 0-100.
type SourceProfile struct {
	Source           Source  `json:"source"`
	Quality          float64 `json:"quality"`
	Coverage         float64 `json:"coverage"`
	Completeness     float64 `json:"completeness"`
	Recency          float64 `json:"recency"`
	Accuracy         float64 `json:"accuracy"`
	TransactionCount int     `json:"transaction_count"`
}

// AdaptiveInsightStrategy says which source to trust, what kinds of insight
// it can support, and at what confidence.
type AdaptiveInsightStrategy struct {
	PrimarySource     Source          `json:"primary_source"`
	SecondarySources  []Source        `json:"secondary_sources"`
	AvailableInsights []string        `json:"available_insights"`
	Confidence        ConfidenceLevel `json:"confidence"`
	Limitations       []string        `json:"limitations"`
	Recommendations   []string        `json:"recommendations"`
}
