package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2024-06", PeriodKey(time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01", PeriodKey(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSortedPeriods(t *testing.T) {
	keys := SortedPeriods(map[string]float64{"2024-03": 1, "2023-12": 2, "2024-01": 3})
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-03"}, keys)
}

func TestWindowAverages(t *testing.T) {
	t.Run("symmetric full windows", func(t *testing.T) {
		byPeriod := map[string]float64{
			"2024-01": 100, "2024-02": 200, "2024-03": 300,
			"2024-04": 400, "2024-05": 500, "2024-06": 600,
		}
		recent, prior, ok := WindowAverages(byPeriod, 3)
		assert.True(t, ok)
		assert.Equal(t, 500.0, recent)
		assert.Equal(t, 200.0, prior)
	})

	t.Run("four periods shrink to symmetric pairs", func(t *testing.T) {
		byPeriod := map[string]float64{
			"2024-03": 90,
			"2024-04": 100, "2024-05": 100, "2024-06": 100,
		}
		recent, prior, ok := WindowAverages(byPeriod, 3)
		assert.True(t, ok)
		assert.Equal(t, 100.0, recent)
		assert.Equal(t, 95.0, prior)
	})

	t.Run("two periods compare one on one", func(t *testing.T) {
		byPeriod := map[string]float64{"2024-05": 100, "2024-06": 1000}
		recent, prior, ok := WindowAverages(byPeriod, 3)
		assert.True(t, ok)
		assert.Equal(t, 1000.0, recent)
		assert.Equal(t, 100.0, prior)
	})

	t.Run("three periods drop the oldest", func(t *testing.T) {
		byPeriod := map[string]float64{"2024-04": 50, "2024-05": 100, "2024-06": 1000}
		recent, prior, ok := WindowAverages(byPeriod, 3)
		assert.True(t, ok)
		assert.Equal(t, 1000.0, recent)
		assert.Equal(t, 100.0, prior)
	})

	t.Run("single period has nothing to compare", func(t *testing.T) {
		_, _, ok := WindowAverages(map[string]float64{"2024-06": 100}, 3)
		assert.False(t, ok)
	})

	t.Run("empty series", func(t *testing.T) {
		_, _, ok := WindowAverages(nil, 3)
		assert.False(t, ok)
	})
}
