// Package longset provides a hash set specialized for int64 keys.
//
// Keys are stored unboxed in bucket chains backed by a single node arena, so
// a set of millions of object IDs, timestamps or handles costs one small
// node per key and one uint32 per bucket, with no per-key heap allocation
// once the arena has grown.
//
// # Quick Start
//
//	s, _ := longset.New()
//	s.Add(42)
//	s.Add(-7)
//	s.Contains(42) // true
//	s.Remove(42)   // true
//	s.Len()        // 1
//
// # Growth
//
// A set starts with DefaultCapacity buckets and grows by doubling once it
// holds more than Threshold keys, where
//
//	threshold = floor(capacity*loadFactor + 0.5)
//
// computed in float32. With the defaults (16 buckets, load factor 1.3) the
// threshold is 21: the 22nd distinct key doubles the table to 32 buckets
// before Add returns. The table never shrinks on Remove; SetCapacity may be
// called explicitly to resize in either direction.
//
// When the number of keys is known up front, ReserveRoom sizes the table once
// and avoids intermediate rehashes:
//
//	s.ReserveRoom(1_000_000)
//
// # Hashing
//
// The default Fold hash XORs the two 32-bit halves of the key. XXHash and
// Murmur3 are available through WithHasher for keys with poor low-bit
// entropy.
//
// # Concurrency
//
// Set is not safe for concurrent use. SyncSet wraps a Set with one mutex held
// for the duration of every operation. SyncSet.Len does not take the lock and
// reads an atomic counter instead.
//
// Build with -tags deadlock to run SyncSet on a deadlock-detecting mutex.
//
// # Errors
//
// Only configuration can fail: a non-positive capacity returns
// ErrInvalidCapacity, a non-positive or non-finite load factor returns
// ErrInvalidLoadFactor. Adding a duplicate or removing an absent key is
// reported through the boolean result.
package longset
