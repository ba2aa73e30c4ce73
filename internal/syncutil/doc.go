// Package syncutil provides the mutex used by longset.SyncSet.
//
// Building with the deadlock tag swaps in github.com/sasha-s/go-deadlock,
// which reports lock-order inversions and locks held for too long:
//
//	go test -tags deadlock ./...
package syncutil
