package longset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// Hasher reduces a key to 32 bits. The set clears the sign bit of the result
// and takes it modulo the capacity to pick a bucket.
type Hasher func(key int64) uint32

// Fold XORs the upper and lower 32 bits of the key. It is the default.
func Fold(key int64) uint32 {
	return uint32(uint64(key)>>32) ^ uint32(key)
}

// XXHash hashes the little-endian bytes of the key with xxHash64 and folds the
// result to 32 bits.
func XXHash(key int64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return Fold(int64(xxhash.Sum64(buf[:])))
}

// Murmur3 hashes the little-endian bytes of the key with MurmurHash3 (x86, 32 bit).
func Murmur3(key int64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return murmur3.Sum32(buf[:])
}

// bucketIndex maps a hash onto [0, capacity).
func bucketIndex(h uint32, capacity int) int {
	return int(uint64(h&0x7fffffff) % uint64(capacity))
}
