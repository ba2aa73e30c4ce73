package longset

import (
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/hupe1980/longset/internal/chain"
)

// Interface is the method set shared by Set and SyncSet.
type Interface interface {
	Contains(key int64) bool
	Add(key int64) bool
	AddAll(keys ...int64) int
	Remove(key int64) bool
	Keys() []int64
	All() iter.Seq[int64]
	Clear()
	Len() int
	Capacity() int
	LoadFactor() float32
	Threshold() int
	SetCapacity(newCapacity int) error
	ReserveRoom(expected int) error
	SetLoadFactor(loadFactor float32) error
	Stats() Stats
}

var (
	_ Interface = (*Set)(nil)
	_ Interface = (*SyncSet)(nil)
)

// Set is a hash set of int64 keys using separate chaining.
//
// A Set is not safe for concurrent use. Use SyncSet, or guard every call
// with an external lock.
type Set struct {
	capacity   int
	table      []uint32 // bucket heads, chain.Nil when empty
	nodes      *chain.Arena
	size       atomic.Int64
	loadFactor float32
	threshold  int
	hash       Hasher

	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty set. Without options it has DefaultCapacity buckets
// and DefaultLoadFactor.
func New(optFns ...Option) (*Set, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return newSet(o), nil
}

func newSet(o options) *Set {
	return &Set{
		capacity:   o.capacity,
		table:      make([]uint32, o.capacity),
		nodes:      chain.NewArena(o.capacity),
		loadFactor: o.loadFactor,
		threshold:  thresholdFor(o.capacity, o.loadFactor),
		hash:       o.hasher,
		metrics:    o.metricsCollector,
		logger:     o.logger,
	}
}

// thresholdFor returns floor(capacity*loadFactor + 0.5) in float32.
// The explicit conversion rounds the product before the addition so that no
// platform fuses the two into one multiply-add.
func thresholdFor(capacity int, loadFactor float32) int {
	return int(float32(float32(capacity)*loadFactor) + 0.5)
}

// reserveCapacity returns floor(expected*loadFactor*1.3 + 0.5) in float32.
func reserveCapacity(expected int, loadFactor float32) int {
	return int(float32(float32(float32(expected)*loadFactor)*1.3) + 0.5)
}

func (s *Set) index(key int64, capacity int) int {
	return bucketIndex(s.hash(key), capacity)
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key int64) bool {
	for h := s.table[s.index(key, s.capacity)]; h != chain.Nil; h = s.nodes.Next(h) {
		if s.nodes.Key(h) == key {
			return true
		}
	}
	return false
}

// Add inserts key and reports whether it was new.
//
// When the number of keys exceeds the threshold, Add doubles the capacity
// and rehashes every key before returning.
func (s *Set) Add(key int64) bool {
	idx := s.index(key, s.capacity)
	head := s.table[idx]

	for h := head; h != chain.Nil; h = s.nodes.Next(h) {
		if s.nodes.Key(h) == key {
			s.metrics.RecordAdd(false)
			return false
		}
	}

	s.table[idx] = s.nodes.Alloc(key, head)
	if s.size.Add(1) > int64(s.threshold) {
		s.rehash(2 * s.capacity)
	}

	s.metrics.RecordAdd(true)
	return true
}

// AddAll inserts every key and returns how many were new.
func (s *Set) AddAll(keys ...int64) int {
	added := 0
	for _, k := range keys {
		if s.Add(k) {
			added++
		}
	}
	return added
}

// Remove deletes key and reports whether it was present. The capacity is
// never reduced.
func (s *Set) Remove(key int64) bool {
	idx := s.index(key, s.capacity)
	prev := chain.Nil

	for h := s.table[idx]; h != chain.Nil; h = s.nodes.Next(h) {
		if s.nodes.Key(h) != key {
			prev = h
			continue
		}

		next := s.nodes.Next(h)
		if prev == chain.Nil {
			s.table[idx] = next
		} else {
			s.nodes.SetNext(prev, next)
		}
		s.nodes.Release(h)
		s.size.Add(-1)

		s.metrics.RecordRemove(true)
		return true
	}

	s.metrics.RecordRemove(false)
	return false
}

// Keys returns all keys in no particular order.
func (s *Set) Keys() []int64 {
	keys := make([]int64, 0, s.Len())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// All returns an iterator over the keys in no particular order.
// The set must not be modified while iterating.
func (s *Set) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, head := range s.table {
			for h := head; h != chain.Nil; h = s.nodes.Next(h) {
				if !yield(s.nodes.Key(h)) {
					return
				}
			}
		}
	}
}

// Clear removes all keys. Capacity and threshold are kept.
func (s *Set) Clear() {
	clear(s.table)
	s.nodes.Reset()
	s.size.Store(0)
}

// Len returns the number of keys.
func (s *Set) Len() int {
	return int(s.size.Load())
}

// Capacity returns the number of buckets.
func (s *Set) Capacity() int {
	return s.capacity
}

// LoadFactor returns the current load factor.
func (s *Set) LoadFactor() float32 {
	return s.loadFactor
}

// Threshold returns the number of keys above which the next Add grows the table.
func (s *Set) Threshold() int {
	return s.threshold
}

// SetCapacity rebuilds the table with newCapacity buckets. Existing nodes are
// relinked, not copied. Smaller capacities are accepted.
func (s *Set) SetCapacity(newCapacity int) error {
	if newCapacity <= 0 {
		err := fmt.Errorf("%w: %d", ErrInvalidCapacity, newCapacity)
		s.logger.LogRejected("set_capacity", err)
		return err
	}
	s.rehash(newCapacity)
	return nil
}

// ReserveRoom sizes the table for about expected keys, aiming at a steady
// load of roughly 0.6 so that inserting them does not trigger a rehash.
func (s *Set) ReserveRoom(expected int) error {
	capacity := reserveCapacity(expected, s.loadFactor)
	if capacity <= 0 {
		err := fmt.Errorf("%w: %d (reserving room for %d keys)", ErrInvalidCapacity, capacity, expected)
		s.logger.LogRejected("reserve_room", err)
		return err
	}
	s.rehash(capacity)
	return nil
}

// SetLoadFactor changes the load factor. The threshold is recomputed at the
// next rehash; the table is not rebuilt.
func (s *Set) SetLoadFactor(loadFactor float32) error {
	if err := validateLoadFactor(loadFactor); err != nil {
		s.logger.LogRejected("set_load_factor", err)
		return err
	}
	s.loadFactor = loadFactor
	return nil
}

// Clone returns a deep copy with the same capacity, load factor, hasher,
// logger and metrics collector.
func (s *Set) Clone() *Set {
	c := &Set{
		capacity:   s.capacity,
		table:      make([]uint32, len(s.table)),
		nodes:      s.nodes.Clone(),
		loadFactor: s.loadFactor,
		threshold:  s.threshold,
		hash:       s.hash,
		metrics:    s.metrics,
		logger:     s.logger,
	}
	copy(c.table, s.table)
	c.size.Store(s.size.Load())
	return c
}

func (s *Set) rehash(newCapacity int) {
	start := time.Now()
	oldCapacity := s.capacity

	table := make([]uint32, newCapacity)
	for _, head := range s.table {
		h := head
		for h != chain.Nil {
			next := s.nodes.Next(h)
			idx := s.index(s.nodes.Key(h), newCapacity)
			s.nodes.SetNext(h, table[idx])
			table[idx] = h
			h = next
		}
	}

	s.table = table
	s.capacity = newCapacity
	s.threshold = thresholdFor(newCapacity, s.loadFactor)

	d := time.Since(start)
	s.metrics.RecordRehash(oldCapacity, newCapacity, d)
	s.logger.LogRehash(oldCapacity, newCapacity, s.Len(), d)
}
