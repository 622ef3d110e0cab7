// Package strategy selects which data source downstream insights should
// trust, at what confidence, and with which stated limitations.
package strategy

import (
	"math"
	"sort"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
)

// Primary-source selection weights over the profiled metrics.
const (
	weightQuality      = 0.4
	weightCoverage     = 0.3
	weightCompleteness = 0.3
)

// Confidence bounds on the averaged quality and coverage of all profiled
// sources. The average is deliberate: one strong source does not make the
// whole picture trustworthy.
const (
	highConfidenceBound   = 80
	mediumConfidenceBound = 60
)

// Limitation and recommendation thresholds checked against the primary
// profile.
const (
	lowCoverageBound     = 50
	lowQualityBound      = 70
	lowCompletenessBound = 80
	staleRecencyBound    = 60
)

// baseInsights are always available regardless of the primary source.
var baseInsights = []string{
	"cash-flow-analysis",
	"basic-financial-metrics",
}

// variantInsights maps the primary-source variant onto the insight types it
// can support.
var variantInsights = map[domain.Source][]string{
	domain.SourceManual: {
		"custom-analysis",
		"flexible-reporting",
	},
	domain.SourcePlatform: {
		"e-commerce-performance",
		"customer-behavior",
		"product-analytics",
		"sales-trends",
	},
	domain.SourceCombined: {
		"comprehensive-analysis",
		"cross-platform-insights",
	},
}

// variantCaveats are fixed limitations inherent to a source variant.
var variantCaveats = map[domain.Source]string{
	domain.SourceManual:   "Manual entry may have inconsistencies",
	domain.SourcePlatform: "Platform data excludes activity outside the connected platform",
	domain.SourceCombined: "Cross-source customer counts are approximate without a shared identity key",
}

// Selector picks a primary source from profiled candidates.
type Selector struct{}

// NewSelector returns a strategy selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Select ranks the profiled sources by weighted score. When more than one
// source is observed, a synthesized combined profile competes too, since a
// composite view usually covers more than any single source. Confidence is
// always computed over the observed profiles, not the synthesized one.
func (s *Selector) Select(profiles []domain.SourceProfile) domain.AdaptiveInsightStrategy {
	if len(profiles) == 0 {
		return domain.AdaptiveInsightStrategy{
			Confidence:        domain.ConfidenceLow,
			AvailableInsights: append([]string{}, baseInsights...),
			Limitations:       []string{"No transaction data to profile"},
			Recommendations:   []string{"Connect a data source to unlock insights"},
		}
	}

	candidates := make([]domain.SourceProfile, len(profiles))
	copy(candidates, profiles)
	if len(profiles) > 1 {
		candidates = append(candidates, synthesizeCombined(profiles))
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return weightedScore(candidates[i]) > weightedScore(candidates[j])
	})

	primary := candidates[0]
	secondaries := make([]domain.Source, 0, len(candidates)-1)
	for _, c := range candidates[1:] {
		if c.Source == domain.SourceCombined {
			continue
		}
		if c.Source != primary.Source {
			secondaries = append(secondaries, c.Source)
		}
	}

	return domain.AdaptiveInsightStrategy{
		PrimarySource:     primary.Source,
		SecondarySources:  secondaries,
		AvailableInsights: insightsFor(primary.Source),
		Confidence:        confidenceFor(profiles),
		Limitations:       limitationsFor(primary),
		Recommendations:   recommendationsFor(primary, len(profiles)),
	}
}

func weightedScore(p domain.SourceProfile) float64 {
	return weightQuality*p.Quality + weightCoverage*p.Coverage + weightCompleteness*p.Completeness
}

// synthesizeCombined models the composite view over every observed source:
// coverage adds up (capped at 100) while the quality metrics average.
func synthesizeCombined(profiles []domain.SourceProfile) domain.SourceProfile {
	combined := domain.SourceProfile{Source: domain.SourceCombined}
	for _, p := range profiles {
		combined.Quality += p.Quality
		combined.Coverage += p.Coverage
		combined.Completeness += p.Completeness
		combined.Recency = math.Max(combined.Recency, p.Recency)
		combined.Accuracy += p.Accuracy
		combined.TransactionCount += p.TransactionCount
	}
	n := float64(len(profiles))
	combined.Quality = math.Round(combined.Quality / n)
	combined.Completeness = math.Round(combined.Completeness / n)
	combined.Accuracy = math.Round(combined.Accuracy / n)
	combined.Coverage = math.Min(combined.Coverage, 100)
	return combined
}

func insightsFor(primary domain.Source) []string {
	insights := append([]string{}, baseInsights...)
	return append(insights, variantInsights[primary]...)
}

func confidenceFor(profiles []domain.SourceProfile) domain.ConfidenceLevel {
	var sum float64
	for _, p := range profiles {
		sum += (p.Quality + p.Coverage) / 2
	}
	avg := sum / float64(len(profiles))
	switch {
	case avg >= highConfidenceBound:
		return domain.ConfidenceHigh
	case avg >= mediumConfidenceBound:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func limitationsFor(primary domain.SourceProfile) []string {
	var limits []string
	if primary.Coverage < lowCoverageBound {
		limits = append(limits, "Primary source covers under half of the transaction history")
	}
	if primary.Quality < lowQualityBound {
		limits = append(limits, "Primary source data quality is below the reliable threshold")
	}
	if primary.Completeness < lowCompletenessBound {
		limits = append(limits, "Primary source records are missing fields that sharpen insights")
	}
	if caveat, ok := variantCaveats[primary.Source]; ok {
		limits = append(limits, caveat)
	}
	return limits
}

func recommendationsFor(primary domain.SourceProfile, observedSources int) []string {
	var recs []string
	if observedSources == 1 {
		recs = append(recs, "Connect an additional data source for a fuller picture")
	}
	if primary.Completeness < lowCompletenessBound {
		recs = append(recs, "Fill in categories and descriptions on existing records")
	}
	if primary.Recency < staleRecencyBound {
		recs = append(recs, "Record or sync recent transactions; the data is going stale")
	}
	return recs
}
