package util

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewULID returns a lexically sortable, unique run identifier.
// The monotonic entropy source is shared, so it is guarded by a mutex.
func NewULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// IsULID reports whether s is a well-formed ULID, so callers can reject
// garbage ids before touching the cache.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
