//go:build deadlock

package syncutil

import "github.com/sasha-s/go-deadlock"

// Mutex is a deadlock-detecting mutex in builds tagged deadlock.
type Mutex struct {
	deadlock.Mutex
}
