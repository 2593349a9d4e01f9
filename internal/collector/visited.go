package collector

import (
	"sync"
	"sync/atomic"

	"media-collector/internal/pathnorm"
)

// VisitedSet records which identities have been claimed during one
// invocation. It is safe for concurrent use.
type VisitedSet struct {
	m sync.Map
	n atomic.Int64
}

// NewVisitedSet returns an empty set.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{}
}

// Claim inserts id if absent and reports whether this call inserted it.
// Exactly one of any number of concurrent callers for the same id gets true.
func (v *VisitedSet) Claim(id pathnorm.Identity) bool {
	_, loaded := v.m.LoadOrStore(id.Key(), struct{}{})
	if !loaded {
		v.n.Add(1)
	}
	return !loaded
}

// Len returns the number of claimed identities.
func (v *VisitedSet) Len() int {
	return int(v.n.Load())
}
