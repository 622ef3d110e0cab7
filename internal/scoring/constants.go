package scoring

// Category weights for the overall score. They must sum to exactly 1.0; a
// dedicated test guards the invariant.
const (
	WeightRevenue    = 0.25
	WeightExpenses   = 0.25
	WeightCashFlow   = 0.25
	WeightCustomers  = 0.15
	WeightOperations = 0.10
)

// Grade boundaries on the overall score.
const (
	GradeABound = 80
	GradeBBound = 60
	GradeCBound = 40
	GradeDBound = 20
)

// Every sub-score starts here and moves up or down by the adjustments
// below, then clamps to [0,100].
const scoreBaseline = 100.0

// Scoring thresholds. All of these are fixed business calibration with no
// statistical derivation; they are named so recalibration never touches the
// scoring logic itself.
const (
	// Revenue: growth of the recent three-period average over the prior
	// three-period average.
	growthWindow       = 3
	strongGrowthRate   = 0.10
	strongDeclineRate  = -0.10
	highRecurringShare = 0.70
	goodRecurringShare = 0.50
	lowRecurringShare  = 0.30
	diverseRevenueCats = 3
	singleRevenueCat   = 1

	// Expenses: total expenses over total revenue.
	leanExpenseRatio     = 0.50
	fairExpenseRatio     = 0.70
	heavyExpenseRatio    = 0.80
	criticalExpenseRatio = 0.90
	diverseExpenseCats   = 5
	narrowExpenseCats    = 2
	leanOperatingShare   = 0.60
	heavyOperatingShare  = 0.80

	// Cash flow: (revenue - expenses) / revenue, plus how often monthly
	// revenue beat monthly expenses over the consistency window.
	excellentMargin           = 0.30
	goodMargin                = 0.20
	fairMargin                = 0.10
	thinMargin                = 0.05
	cashFlowConsistencyWindow = 6
	highConsistency           = 0.8
	fairConsistency           = 0.6
	lowConsistency            = 0.4

	// Customers.
	fastNewCustomerRate = 0.20
	goodNewCustomerRate = 0.10
	slowNewCustomerRate = 0.05
	highLifetimeValue   = 1000.0
	goodLifetimeValue   = 500.0
	lowLifetimeValue    = 100.0
	lowChurnPct         = 5.0
	fairChurnPct        = 10.0
	elevatedChurnPct    = 15.0
	highChurnPct        = 20.0

	// Operations.
	diverseProductCount  = 5
	severalProductCount  = 3
	singleProductCount   = 1
	diversifiedTopShare  = 0.30
	concentratedTopShare = 0.70
)
