//go:build !deadlock

package syncutil

import "sync"

// Mutex is a sync.Mutex in regular builds.
type Mutex struct {
	sync.Mutex
}
