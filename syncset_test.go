package longset

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSyncSet(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s, err := NewSync()
		require.NoError(t, err)

		assert.Equal(t, DefaultCapacity, s.Capacity())
		assert.Equal(t, DefaultLoadFactor, s.LoadFactor())
		assert.Equal(t, 21, s.Threshold())
	})

	t.Run("WithCapacity", func(t *testing.T) {
		s, err := NewSync(WithCapacity(100))
		require.NoError(t, err)
		assert.Equal(t, 100, s.Capacity())
	})

	t.Run("InvalidCapacity", func(t *testing.T) {
		_, err := NewSync(WithCapacity(0))
		require.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("Delegates", func(t *testing.T) {
		s, err := NewSync()
		require.NoError(t, err)

		assert.True(t, s.Add(1))
		assert.False(t, s.Add(1))
		assert.Equal(t, 2, s.AddAll(2, 3, 1))
		assert.True(t, s.Contains(2))
		assert.True(t, s.Remove(2))
		assert.False(t, s.Remove(2))
		assert.ElementsMatch(t, []int64{1, 3}, s.Keys())
		assert.Equal(t, 2, s.Len())

		var seen []int64
		for k := range s.All() {
			seen = append(seen, k)
			s.Add(k + 100) // must not deadlock
		}
		assert.ElementsMatch(t, []int64{1, 3}, seen)
		assert.Equal(t, 4, s.Len())

		require.NoError(t, s.SetLoadFactor(2))
		require.NoError(t, s.SetCapacity(8))
		assert.Equal(t, 16, s.Threshold())
		require.NoError(t, s.ReserveRoom(10))
		assert.Equal(t, 26, s.Capacity())
		require.ErrorIs(t, s.SetCapacity(-1), ErrInvalidCapacity)
		require.ErrorIs(t, s.ReserveRoom(0), ErrInvalidCapacity)
		require.ErrorIs(t, s.SetLoadFactor(0), ErrInvalidLoadFactor)

		st := s.Stats()
		assert.Equal(t, 4, st.Len)
		assert.Equal(t, 26, st.Capacity)

		s.Clear()
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Keys())
	})

	t.Run("Snapshot", func(t *testing.T) {
		s, err := NewSync()
		require.NoError(t, err)
		s.AddAll(1, 2)

		snap := s.Snapshot()
		s.Add(3)

		assert.ElementsMatch(t, []int64{1, 2}, snap.Keys())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("Bitmap", func(t *testing.T) {
		s, err := NewSync()
		require.NoError(t, err)

		assert.Equal(t, 3, s.AddBitmap(roaring64.BitmapOf(1, 2, 3)))
		assert.Equal(t, uint64(3), s.Bitmap().GetCardinality())
	})
}

func TestSyncSet_Concurrent(t *testing.T) {
	for name, h := range map[string]Hasher{"fold": Fold, "xxhash": XXHash, "murmur3": Murmur3} {
		t.Run(name, func(t *testing.T) {
			testSyncSetConcurrent(t, h)
		})
	}
}

func testSyncSetConcurrent(t *testing.T, h Hasher) {
	s, err := NewSync(WithHasher(h))
	require.NoError(t, err)

	const (
		workers = 8
		perWork = 5000
	)

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			base := int64(w * perWork)
			for i := range int64(perWork) {
				s.Add(base + i)
				s.Contains(base + i)
				_ = s.Len()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, workers*perWork, s.Len())
	for k := range int64(workers * perWork) {
		require.True(t, s.Contains(k), "key %d", k)
	}

	// Remove the odd keys concurrently while readers poll Len.
	g = errgroup.Group{}
	for w := range workers {
		g.Go(func() error {
			base := int64(w * perWork)
			for i := int64(1); i < perWork; i += 2 {
				s.Remove(base + i)
			}
			return nil
		})
	}
	g.Go(func() error {
		last := s.Len()
		for range 1000 {
			n := s.Len()
			assert.LessOrEqual(t, n, last, "Len must not increase while only removing")
			last = n
		}
		return nil
	})
	require.NoError(t, g.Wait())

	assert.Equal(t, workers*perWork/2, s.Len())
	assert.Len(t, s.Keys(), workers*perWork/2)
}
