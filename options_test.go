package longset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Options(t *testing.T) {
	t.Run("Capacity", func(t *testing.T) {
		s := newTestSet(t, WithCapacity(100))
		assert.Equal(t, 100, s.Capacity())
		assert.Equal(t, 130, s.Threshold())
	})

	t.Run("LoadFactor", func(t *testing.T) {
		s := newTestSet(t, WithLoadFactor(0.75))
		assert.Equal(t, 12, s.Threshold())
	})

	t.Run("NilOptionsIgnored", func(t *testing.T) {
		s := newTestSet(t, nil, WithLogger(nil), WithMetricsCollector(nil))
		assert.True(t, s.Add(1))
		assert.True(t, s.Remove(1))
	})

	t.Run("InvalidCapacity", func(t *testing.T) {
		for _, c := range []int{0, -16} {
			_, err := New(WithCapacity(c))
			require.ErrorIs(t, err, ErrInvalidCapacity)
		}
	})

	t.Run("InvalidLoadFactor", func(t *testing.T) {
		for _, f := range []float32{0, -0.5, float32(math.NaN()), float32(math.Inf(1))} {
			_, err := New(WithLoadFactor(f))
			require.ErrorIs(t, err, ErrInvalidLoadFactor)
		}
	})

	t.Run("NilHasher", func(t *testing.T) {
		_, err := New(WithHasher(nil))
		require.ErrorIs(t, err, ErrNilHasher)
	})
}
