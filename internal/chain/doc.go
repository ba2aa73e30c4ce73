// Package chain provides the node storage behind the bucket chains of a
// longset table.
//
// Nodes live in a single growable slice and are addressed by uint32 handles.
// Handle 0 (Nil) is reserved and means "no node", so an empty bucket and the
// end of a chain are both represented by Nil.
//
// # Ownership
//
// Every live node is owned by exactly one chain: either a bucket slot holds its
// handle, or the next link of the preceding node does. Released nodes are
// threaded onto a free list through the same next link and are reused by later
// allocations, so a table that adds and removes at a steady rate stops
// allocating once the arena reaches its high-water mark.
//
// An Arena is not safe for concurrent use.
package chain
