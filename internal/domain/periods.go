package domain

import (
	"sort"
	"time"
)

// periodLayout keys aggregates by calendar month. The format sorts
// lexicographically in chronological order, which the window helpers rely on.
const periodLayout = "2006-01"

// PeriodKey returns the calendar-month bucket a timestamp falls into.
func PeriodKey(t time.Time) string {
	return t.Format(periodLayout)
}

// SortedPeriods returns the period keys of a by-period map in chronological
// order.
func SortedPeriods(byPeriod map[string]float64) []string {
	keys := make([]string, 0, len(byPeriod))
	for k := range byPeriod {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WindowAverages splits the by-period series into the most recent window of
// up to n periods and the symmetric window before it, and returns the mean
// of each. The window shrinks on short histories so both sides stay the
// same size; any series with at least two periods compares. ok is false
// only when there is nothing to compare against.
func WindowAverages(byPeriod map[string]float64, n int) (recent, prior float64, ok bool) {
	keys := SortedPeriods(byPeriod)
	if len(keys) < 2 || n <= 0 {
		return 0, 0, false
	}

	if half := len(keys) / 2; n > half {
		n = half
	}
	cut := len(keys) - n

	return mean(byPeriod, keys[cut:]), mean(byPeriod, keys[cut-n:cut]), true
}

func mean(byPeriod map[string]float64, keys []string) float64 {
	if len(keys) == 0 {
		return 0
	}
	var sum float64
	for _, k := range keys {
		sum += byPeriod[k]
	}
	return sum / float64(len(keys))
}
