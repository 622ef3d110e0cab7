package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
)

func profile(source domain.Source, quality, coverage, completeness float64) domain.SourceProfile {
	return domain.SourceProfile{
		Source:       source,
		Quality:      quality,
		Coverage:     coverage,
		Completeness: completeness,
		Recency:      80,
		Accuracy:     quality,
	}
}

func TestSelect_SingleStrongSource(t *testing.T) {
	result := NewSelector().Select([]domain.SourceProfile{
		profile(domain.SourcePlatform, 90, 90, 95),
	})
	assert.Equal(t, domain.SourcePlatform, result.PrimarySource)
	assert.Empty(t, result.SecondarySources)
	assert.Equal(t, domain.ConfidenceHigh, result.Confidence)
	assert.Contains(t, result.AvailableInsights, "cash-flow-analysis")
	assert.Contains(t, result.AvailableInsights, "product-analytics")
	assert.NotContains(t, result.AvailableInsights, "custom-analysis")
	assert.Contains(t, result.Recommendations, "Connect an additional data source for a fuller picture")
}

func TestSelect_WeightedScorePicksPrimary(t *testing.T) {
	// Manual wins on quality but platform's coverage and completeness
	// outweigh it: 0.4*70+0.3*80+0.3*90 = 79 vs 0.4*85+0.3*40+0.3*60 = 64.
	manual := profile(domain.SourceManual, 85, 40, 60)
	platform := profile(domain.SourcePlatform, 70, 80, 90)

	result := NewSelector().Select([]domain.SourceProfile{manual, platform})
	if result.PrimarySource == domain.SourceCombined {
		// The synthesized composite may outrank both; the observed
		// sources must then rank platform over manual as secondaries.
		require.Equal(t, []domain.Source{domain.SourcePlatform, domain.SourceManual}, result.SecondarySources)
		return
	}
	assert.Equal(t, domain.SourcePlatform, result.PrimarySource)
}

func TestSelect_CombinedOutranksWhenCoverageAdds(t *testing.T) {
	manual := profile(domain.SourceManual, 80, 50, 80)
	platform := profile(domain.SourcePlatform, 80, 50, 80)

	result := NewSelector().Select([]domain.SourceProfile{manual, platform})
	// Combined candidate: quality 80, coverage 100, completeness 80 -> 86
	// against 71 for either single source.
	assert.Equal(t, domain.SourceCombined, result.PrimarySource)
	assert.Contains(t, result.AvailableInsights, "comprehensive-analysis")
	assert.Contains(t, result.AvailableInsights, "cross-platform-insights")
	assert.Contains(t, result.Limitations, "Cross-source customer counts are approximate without a shared identity key")
	assert.Len(t, result.SecondarySources, 2)
}

func TestSelect_ConfidenceUsesAverageNotMax(t *testing.T) {
	strong := profile(domain.SourceManual, 90, 90, 90)
	alsoStrong := profile(domain.SourcePlatform, 90, 90, 90)

	result := NewSelector().Select([]domain.SourceProfile{strong, alsoStrong})
	assert.Equal(t, domain.ConfidenceHigh, result.Confidence)

	// Dropping one source's coverage to 40 pulls the average down to
	// ((90+90)/2 + (90+40)/2) / 2 = 77.5: medium, even though the best
	// source is untouched.
	weaker := profile(domain.SourcePlatform, 90, 40, 90)
	result = NewSelector().Select([]domain.SourceProfile{strong, weaker})
	assert.Equal(t, domain.ConfidenceMedium, result.Confidence)
}

func TestSelect_LimitationsFromPrimaryProfile(t *testing.T) {
	result := NewSelector().Select([]domain.SourceProfile{
		profile(domain.SourceManual, 60, 40, 70),
	})
	require.Len(t, result.Limitations, 4)
	assert.Contains(t, result.Limitations, "Manual entry may have inconsistencies")
	assert.Equal(t, domain.ConfidenceLow, result.Confidence)
}

func TestSelect_StaleRecencyRecommendation(t *testing.T) {
	fresh := profile(domain.SourceManual, 90, 90, 90)
	result := NewSelector().Select([]domain.SourceProfile{fresh})
	assert.NotContains(t, result.Recommendations, "Record or sync recent transactions; the data is going stale")

	stale := fresh
	stale.Recency = staleRecencyBound - 1
	result = NewSelector().Select([]domain.SourceProfile{stale})
	assert.Contains(t, result.Recommendations, "Record or sync recent transactions; the data is going stale")
}

func TestSelect_EmptyProfiles(t *testing.T) {
	result := NewSelector().Select(nil)
	assert.Equal(t, domain.Source(""), result.PrimarySource)
	assert.Equal(t, domain.ConfidenceLow, result.Confidence)
	assert.Equal(t, baseInsights, result.AvailableInsights)
	assert.NotEmpty(t, result.Limitations)
}
