// Package profiler computes per-source data-quality metrics from a
// transaction snapshot. Malformed rows (non-finite amounts, far-future
// dates) are not errors anywhere in this core; they surface here as a lower
// accuracy metric instead.
package profiler

import (
	"math"
	"sort"
	"time"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
)

const (
	// futureSkewAllowance is how far past "now" a transaction date may sit
	// before it counts against accuracy. Covers clock skew between the
	// store and its writers.
	futureSkewAllowance = 48 * time.Hour

	// completenessFieldCount is the number of optional-but-expected fields
	// checked per transaction.
	completenessFieldCount = 4
)

// recencySteps maps staleness of the latest transaction onto a 0-100
// recency score. Fixed calibration, not statistically derived.
var recencySteps = []struct {
	maxAge time.Duration
	score  float64
}{
	{7 * 24 * time.Hour, 100},
	{30 * 24 * time.Hour, 80},
	{90 * 24 * time.Hour, 60},
	{180 * 24 * time.Hour, 40},
}

const recencyFloor = 20

// Profiler scores each observed source in a snapshot.
type Profiler struct {
	now time.Time
}

// New returns a profiler anchored at the given reference time.
func New(now time.Time) *Profiler {
	return &Profiler{now: now}
}

// Profile groups the snapshot by source tag and scores each group. Sources
// come back sorted by tag so output is deterministic.
func (p *Profiler) Profile(txs []domain.Transaction) []domain.SourceProfile {
	bySource := map[domain.Source][]domain.Transaction{}
	for _, t := range txs {
		bySource[t.Source] = append(bySource[t.Source], t)
	}

	profiles := make([]domain.SourceProfile, 0, len(bySource))
	for source, group := range bySource {
		profiles = append(profiles, p.scoreSource(source, group, len(txs)))
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Source < profiles[j].Source
	})
	return profiles
}

func (p *Profiler) scoreSource(source domain.Source, txs []domain.Transaction, snapshotSize int) domain.SourceProfile {
	var filledFields, validRows int
	var latest time.Time

	for _, t := range txs {
		if t.ID != "" {
			filledFields++
		}
		if t.Description != "" {
			filledFields++
		}
		if t.Category != "" {
			filledFields++
		}
		if t.Currency != "" {
			filledFields++
		}
		if rowValid(t, p.now) {
			validRows++
		}
		if t.Date.After(latest) {
			latest = t.Date
		}
	}

	completeness := 100 * float64(filledFields) / float64(len(txs)*completenessFieldCount)
	coverage := 100 * float64(len(txs)) / float64(snapshotSize)
	accuracy := 100 * float64(validRows) / float64(len(txs))
	recency := recencyScore(p.now.Sub(latest))

	return domain.SourceProfile{
		Source:           source,
		Completeness:     math.Round(completeness),
		Coverage:         math.Round(coverage),
		Recency:          recency,
		Accuracy:         math.Round(accuracy),
		Quality:          math.Round((completeness + recency + accuracy) / 3),
		TransactionCount: len(txs),
	}
}

func rowValid(t domain.Transaction, now time.Time) bool {
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return false
	}
	if t.Date.IsZero() {
		return false
	}
	if t.Date.After(now.Add(futureSkewAllowance)) {
		return false
	}
	return true
}

func recencyScore(age time.Duration) float64 {
	for _, step := range recencySteps {
		if age <= step.maxAge {
			return step.score
		}
	}
	return recencyFloor
}
