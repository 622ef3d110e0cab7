package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	t.Run("exact cents over many additions", func(t *testing.T) {
		var s Sum
		for i := 0; i < 1000; i++ {
			s.Add(0.1)
		}
		assert.Equal(t, 100.0, s.Value())
	})

	t.Run("zero value sum is zero", func(t *testing.T) {
		var s Sum
		assert.Equal(t, 0.0, s.Value())
	})

	t.Run("negative amounts", func(t *testing.T) {
		var s Sum
		s.Add(10.55)
		s.Add(-0.55)
		assert.Equal(t, 10.0, s.Value())
	})
}

func TestBucketKey(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		same bool
	}{
		{"identical amounts", 99.99, 99.99, true},
		{"sub-cent difference rounds together", 100.001, 100.002, true},
		{"full cent apart", 100.00, 100.01, false},
		{"dollar apart", 100.0, 101.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, BucketKey(tt.a), BucketKey(tt.b))
			} else {
				assert.NotEqual(t, BucketKey(tt.a), BucketKey(tt.b))
			}
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.5, Ratio(1, 2))
	assert.Equal(t, 0.0, Ratio(1, 0), "zero denominator must yield 0, not Inf")
	assert.Equal(t, 0.0, Ratio(0, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.57, Round2(10.565))
	assert.Equal(t, -3.33, Round2(-3.334))
}
