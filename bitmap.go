package longset

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Bitmap returns the keys as a 64-bit Roaring bitmap. Keys are stored as
// their two's-complement uint64 value, so negative keys sort after positive ones.
func (s *Set) Bitmap() *roaring64.Bitmap {
	rb := roaring64.New()
	for k := range s.All() {
		rb.Add(uint64(k))
	}
	return rb
}

// AddBitmap adds every value of rb, read back as int64, and returns how many
// keys were new. The table is grown once up front when the result would not
// fit below the current threshold.
func (s *Set) AddBitmap(rb *roaring64.Bitmap) int {
	if want := s.Len() + int(rb.GetCardinality()); want > s.threshold {
		if c := reserveCapacity(want, s.loadFactor); c > s.capacity {
			s.rehash(c)
		}
	}

	added := 0
	it := rb.Iterator()
	for it.HasNext() {
		if s.Add(int64(it.Next())) {
			added++
		}
	}
	return added
}
