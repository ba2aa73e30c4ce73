package longset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, uint32(0), Fold(0))
	assert.Equal(t, uint32(42), Fold(42))
	assert.Equal(t, uint32(1), Fold(1<<32))
	assert.Equal(t, uint32(0), Fold(1<<32|1))
	assert.Equal(t, uint32(0), Fold(-1)) // 0xffffffff ^ 0xffffffff
	assert.Equal(t, uint32(0x80000000), Fold(math.MinInt64))
	assert.Equal(t, uint32(0x80000000), Fold(math.MaxInt64)) // 0x7fffffff ^ 0xffffffff
}

func TestBucketIndex(t *testing.T) {
	assert.Equal(t, 0, bucketIndex(Fold(0), 16))
	assert.Equal(t, 5, bucketIndex(Fold(21), 16))

	// The sign bit is cleared before the modulo.
	assert.Equal(t, 0, bucketIndex(Fold(math.MinInt64), 16))
	assert.Equal(t, int(0x7fffffff%13), bucketIndex(0xffffffff, 13))

	for _, k := range []int64{-1, math.MinInt64, math.MaxInt64, -12345678901} {
		for _, c := range []int{1, 3, 16, 1 << 20} {
			idx := bucketIndex(Fold(k), c)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, c)
		}
	}
}

func TestHashers(t *testing.T) {
	for name, h := range map[string]Hasher{"xxhash": XXHash, "murmur3": Murmur3} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, h(123456789), h(123456789))

			// Keys that differ only in high bits still spread over buckets.
			used := map[int]struct{}{}
			for i := range int64(64) {
				used[bucketIndex(h(i<<48), 64)] = struct{}{}
			}
			assert.Greater(t, len(used), 16)
		})
	}
}
