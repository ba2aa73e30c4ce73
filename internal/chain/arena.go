package chain

import (
	"fmt"
	"math"
)

// Nil is the handle of "no node".
const Nil uint32 = 0

// maxHandle is the largest handle Alloc hands out.
var maxHandle = uint64(math.MaxUint32)

type node struct {
	key  int64
	next uint32
}

// Arena stores chain nodes addressed by handle.
type Arena struct {
	nodes []node
	free  uint32 // head of the free list
	live  int
}

// NewArena creates an arena with room for sizeHint nodes before the first grow.
func NewArena(sizeHint int) *Arena {
	if sizeHint < 0 {
		sizeHint = 0
	}
	nodes := make([]node, 1, sizeHint+1) // slot 0 backs Nil
	return &Arena{nodes: nodes}
}

// Alloc stores key in a node linked to next and returns its handle.
// It panics once every uint32 handle is in use.
func (a *Arena) Alloc(key int64, next uint32) uint32 {
	a.live++

	if h := a.free; h != Nil {
		a.free = a.nodes[h].next
		a.nodes[h] = node{key: key, next: next}
		return h
	}

	if uint64(len(a.nodes)) > maxHandle {
		a.live--
		panic(fmt.Sprintf("chain: arena exhausted at %d nodes", a.live))
	}
	a.nodes = append(a.nodes, node{key: key, next: next})
	return uint32(len(a.nodes) - 1)
}

// Release returns the node to the free list. The caller must have unlinked it.
func (a *Arena) Release(h uint32) {
	a.nodes[h] = node{next: a.free}
	a.free = h
	a.live--
}

// Key returns the key stored at h.
func (a *Arena) Key(h uint32) int64 {
	return a.nodes[h].key
}

// Next returns the handle following h in its chain.
func (a *Arena) Next(h uint32) uint32 {
	return a.nodes[h].next
}

// SetNext relinks h so that next follows it.
func (a *Arena) SetNext(h, next uint32) {
	a.nodes[h].next = next
}

// Live returns the number of allocated, unreleased nodes.
func (a *Arena) Live() int {
	return a.live
}

// Reset drops every node but keeps the backing storage for reuse.
func (a *Arena) Reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.free = Nil
	a.live = 0
}

// Clone returns an independent copy of the arena. Handles stay valid in the
// copy.
func (a *Arena) Clone() *Arena {
	nodes := make([]node, len(a.nodes), cap(a.nodes))
	copy(nodes, a.nodes)
	return &Arena{nodes: nodes, free: a.free, live: a.live}
}
