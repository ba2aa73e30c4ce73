package longset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/longset/internal/syncutil"
)

// SyncSet is a Set guarded by a single mutex.
//
// Every operation holds the lock for its whole duration, so operations are
// fully serialized. Len is the exception: it reads an atomic counter and
// never blocks, which means it may observe the value from just before or just
// after a concurrent Add or Remove.
type SyncSet struct {
	mu  syncutil.Mutex
	set *Set
}

// NewSync creates an empty synchronized set. It accepts the same options as New.
func NewSync(optFns ...Option) (*SyncSet, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return &SyncSet{set: newSet(o)}, nil
}

// Contains reports whether key is in the set.
func (s *SyncSet) Contains(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Contains(key)
}

// Add inserts key and reports whether it was new.
func (s *SyncSet) Add(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Add(key)
}

// AddAll inserts every key under a single lock acquisition and returns how
// many were new.
func (s *SyncSet) AddAll(keys ...int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.AddAll(keys...)
}

// Remove deletes key and reports whether it was present.
func (s *SyncSet) Remove(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Remove(key)
}

// Keys returns all keys in no particular order.
func (s *SyncSet) Keys() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Keys()
}

// All iterates over a snapshot of the keys taken when iteration starts.
// The lock is not held while yielding, so the loop body may call back into s.
func (s *SyncSet) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, k := range s.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clear removes all keys.
func (s *SyncSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set.Clear()
}

// Len returns the number of keys without taking the lock.
func (s *SyncSet) Len() int {
	return s.set.Len()
}

// Capacity returns the number of buckets.
func (s *SyncSet) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Capacity()
}

// LoadFactor returns the current load factor.
func (s *SyncSet) LoadFactor() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.LoadFactor()
}

// Threshold returns the number of keys above which the next Add grows the table.
func (s *SyncSet) Threshold() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Threshold()
}

// SetCapacity rebuilds the table with newCapacity buckets.
func (s *SyncSet) SetCapacity(newCapacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.SetCapacity(newCapacity)
}

// ReserveRoom sizes the table for about expected keys.
func (s *SyncSet) ReserveRoom(expected int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.ReserveRoom(expected)
}

// SetLoadFactor changes the load factor used by the next rehash.
func (s *SyncSet) SetLoadFactor(loadFactor float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.SetLoadFactor(loadFactor)
}

// Stats reports the table shape.
func (s *SyncSet) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Stats()
}

// Bitmap returns the keys as a 64-bit Roaring bitmap.
func (s *SyncSet) Bitmap() *roaring64.Bitmap {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Bitmap()
}

// AddBitmap adds every value of rb and returns how many keys were new.
func (s *SyncSet) AddBitmap(rb *roaring64.Bitmap) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.AddBitmap(rb)
}

// Snapshot returns an unsynchronized deep copy of the current contents.
func (s *SyncSet) Snapshot() *Set {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Clone()
}
