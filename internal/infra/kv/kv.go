// Package kv is the persistence port of the application: a named-slot
// key-value store holding one encoded record list per key, the same contract
// the browser version of the system had with localStorage.
package kv

import "context"

// Store reads and writes whole values under a named key. Writes replace the
// previous value entirely, there are no partial updates.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
