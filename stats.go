package longset

import "github.com/hupe1980/longset/internal/chain"

// Stats describes the shape of a set's table.
type Stats struct {
	Len          int
	Capacity     int
	Threshold    int
	LoadFactor   float32
	UsedBuckets  int // buckets holding at least one key
	LongestChain int
}

// Load returns the ratio of keys to buckets.
func (st Stats) Load() float64 {
	return float64(st.Len) / float64(st.Capacity)
}

// Stats walks every bucket and reports the table shape. It is O(capacity+len).
func (s *Set) Stats() Stats {
	st := Stats{
		Len:        s.Len(),
		Capacity:   s.capacity,
		Threshold:  s.threshold,
		LoadFactor: s.loadFactor,
	}

	for _, head := range s.table {
		if head == chain.Nil {
			continue
		}
		st.UsedBuckets++

		n := 0
		for h := head; h != chain.Nil; h = s.nodes.Next(h) {
			n++
		}
		st.LongestChain = max(st.LongestChain, n)
	}
	return st
}
