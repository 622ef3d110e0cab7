// Package insights wires the profiler, adapters, scoring, trend, risk and
// strategy stages into one pass over a transaction snapshot. It is the
// single entry point host layers call; everything below it is pure and
// allocation-fresh per invocation, so concurrent calls need no
// coordination as long as callers hand in snapshots they do not mutate.
package insights

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/adapter"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/profiler"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/risk"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/scoring"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/strategy"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/trend"
)

// Report bundles every result computed from one snapshot. The HTTP layer
// serializes it as-is; the prompt-construction layer picks numeric fields
// out of it.
type Report struct {
	ID          string                         `json:"id"`
	GeneratedAt time.Time                      `json:"generated_at"`
	View        domain.Source                  `json:"view"`
	Revenue     domain.RevenueData             `json:"revenue"`
	Expenses    domain.ExpenseData             `json:"expenses"`
	Customers   domain.CustomerData            `json:"customers"`
	Products    domain.ProductData             `json:"products"`
	Health      domain.FinancialHealthScore    `json:"health"`
	Trends      domain.TrendAnalysis           `json:"trends"`
	Risk        domain.RiskAssessment          `json:"risk"`
	Strategy    domain.AdaptiveInsightStrategy `json:"strategy"`
	Profiles    []domain.SourceProfile         `json:"profiles"`
}

// Analyzer runs the full analysis pass.
type Analyzer struct {
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
	extractor adapter.NameExtractor
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithClock fixes the reference time, pinning the 30/90-day windows and
// report timestamps. Tests use it; production keeps the wall clock.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithIDSource replaces the report id generator.
func WithIDSource(newID func() string) Option {
	return func(a *Analyzer) { a.newID = newID }
}

// WithExtractor replaces the manual adapter's name-extraction strategy.
func WithExtractor(e adapter.NameExtractor) Option {
	return func(a *Analyzer) { a.extractor = e }
}

// NewAnalyzer builds an analyzer logging through log.
func NewAnalyzer(log zerolog.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
		extractor: adapter.NewPatternExtractor(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze profiles the snapshot, picks or composes the adapter view,
// computes the canonical aggregates, and derives score, trends, risk and
// strategy. It never fails: an empty snapshot produces a zero-valued
// report.
func (a *Analyzer) Analyze(txs []domain.Transaction, orders []domain.Order) Report {
	now := a.now()
	log := a.log.With().Int("transactions", len(txs)).Int("orders", len(orders)).Logger()

	profiles := profiler.New(now).Profile(txs)
	log.Debug().Int("sources", len(profiles)).Msg("profiled snapshot")

	view, viewSource := a.selectView(txs, orders, now)
	log.Debug().Str("view", string(viewSource)).Msg("selected adapter view")

	revenue := view.Revenue()
	expenses := view.Expenses()
	customers := view.Customers()
	products := view.Products()

	health := scoring.NewEngine(now).Score(revenue, expenses, customers, products)
	trends := trend.NewAnalyzer().Analyze(revenue, expenses, customers, len(txs))
	riskResult := risk.NewAssessor().Assess(revenue, expenses, customers, products)
	strat := strategy.NewSelector().Select(profiles)

	log.Info().
		Float64("health", health.Overall).
		Str("grade", string(health.Grade)).
		Str("risk", string(riskResult.Level)).
		Str("primary_source", string(strat.PrimarySource)).
		Msg("analysis complete")

	return Report{
		ID:          a.newID(),
		GeneratedAt: now,
		View:        viewSource,
		Revenue:     revenue,
		Expenses:    expenses,
		Customers:   customers,
		Products:    products,
		Health:      health,
		Trends:      trends,
		Risk:        riskResult,
		Strategy:    strat,
		Profiles:    profiles,
	}
}

// selectView builds one adapter per available source and composes them when
// more than one has data. With no data at all, an empty manual adapter
// stands in so every downstream stage still runs.
func (a *Analyzer) selectView(txs []domain.Transaction, orders []domain.Order, now time.Time) (adapter.SourceAdapter, domain.Source) {
	manual := adapter.NewManualAdapterWithExtractor(txs, now, a.extractor)
	platform := adapter.NewPlatformAdapter(txs, orders, now)

	var available []adapter.SourceAdapter
	if manual.Available() {
		available = append(available, manual)
	}
	if platform.Available() {
		available = append(available, platform)
	}

	switch len(available) {
	case 0:
		return manual, domain.SourceManual
	case 1:
		if s, ok := available[0].(adapter.Source); ok {
			return available[0], s.Source()
		}
		return available[0], domain.SourceManual
	default:
		return adapter.NewCombinedAdapter(available...), domain.SourceCombined
	}
}
