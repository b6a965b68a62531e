// Package integration exercises signpostz end to end against the Recorder
// backend: marker pairing under concurrency, enablement toggling mid-flight,
// and unwinding through panics.
package integration

import (
	"testing"

	"github.com/zoobzio/signpostz"
)

// markerPair identifies one logical interval.
type markerPair struct {
	id   uint64
	name string
}

// verifyPairing fails the test unless every begin marker has exactly one
// end marker with the same (id, name) pair and vice versa.
func verifyPairing(t *testing.T, markers []signpostz.Marker) {
	t.Helper()

	begins := make(map[markerPair]int)
	ends := make(map[markerPair]int)
	for _, m := range markers {
		switch m.Kind {
		case signpostz.KindIntervalBegin:
			begins[markerPair{m.ID, m.Name}]++
		case signpostz.KindIntervalEnd:
			ends[markerPair{m.ID, m.Name}]++
		}
	}

	for p, n := range begins {
		if n != 1 {
			t.Errorf("interval %d %q: expected 1 begin, got %d", p.id, p.name, n)
		}
		if ends[p] != 1 {
			t.Errorf("interval %d %q: expected 1 end, got %d", p.id, p.name, ends[p])
		}
	}
	for p := range ends {
		if begins[p] == 0 {
			t.Errorf("interval %d %q: end without begin", p.id, p.name)
		}
	}
}

// countKind returns how many markers have the given kind.
func countKind(markers []signpostz.Marker, kind signpostz.Kind) int {
	n := 0
	for _, m := range markers {
		if m.Kind == kind {
			n++
		}
	}
	return n
}
