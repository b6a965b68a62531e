package signpostz

import "sync/atomic"

// IDSource hands out marker ids that are unique within the source and
// never collide with the reserved sentinels. Safe for concurrent use.
//
// Ids only need to be unique among markers that can overlap in time, so a
// process-wide counter is more than enough; use separate sources when
// distinct subsystems want independent id spaces.
type IDSource struct {
	next atomic.Uint64
}

// Next returns the next non-reserved id.
func (s *IDSource) Next() uint64 {
	for {
		id := s.next.Add(1)
		if id != IDNull && id != IDInvalid {
			return id
		}
	}
}

// defaultIDs backs the package-level NextID.
var defaultIDs IDSource

// NextID returns a process-unique, non-reserved marker id. Prefer fixed
// ids declared next to their names when markers are known statically; use
// NextID for intervals created dynamically, where uniqueness among
// overlapping intervals is what matters.
func NextID() uint64 {
	return defaultIDs.Next()
}
