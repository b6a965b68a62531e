package integration

import (
	"sync"
	"testing"

	"github.com/zoobzio/signpostz"
)

// TestToggleUnderLoad flips enablement while workers emit, checking that
// nothing breaks and that whatever was recorded still pairs up or appears
// as a lone begin/end from a toggle boundary.
func TestToggleUnderLoad(t *testing.T) {
	rec := signpostz.NewRecorder()
	logger := signpostz.New(subsystem, signpostz.CategoryPointsOfInterest).WithBackend(rec)

	nameWork := signpostz.MustName("ToggledWork")

	stop := make(chan struct{})
	togglerDone := make(chan struct{})

	// Toggler goroutine flips enablement as fast as it can.
	go func() {
		defer close(togglerDone)
		enabled := true
		for {
			select {
			case <-stop:
				return
			default:
				enabled = !enabled
				rec.SetEnabled(enabled)
			}
		}
	}()

	var workers sync.WaitGroup
	var ids signpostz.IDSource
	numWorkers := 10
	for w := 0; w < numWorkers; w++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for i := 0; i < 200; i++ {
				iv := logger.BeginInterval(ids.Next(), nameWork)
				iv.End()
			}
		}()
	}

	workers.Wait()
	close(stop)
	<-togglerDone

	// A begin or end may be lone when the toggle landed inside an
	// interval, but no (id, name) pair may ever appear twice per side.
	type pair struct {
		id   uint64
		name string
	}
	begins := make(map[pair]int)
	ends := make(map[pair]int)
	for _, m := range rec.Markers() {
		switch m.Kind {
		case signpostz.KindIntervalBegin:
			if begins[pair{m.ID, m.Name}]++; begins[pair{m.ID, m.Name}] > 1 {
				t.Errorf("duplicate begin for id %d", m.ID)
			}
		case signpostz.KindIntervalEnd:
			if ends[pair{m.ID, m.Name}]++; ends[pair{m.ID, m.Name}] > 1 {
				t.Errorf("duplicate end for id %d", m.ID)
			}
		}
	}
}

// TestDisabledWorkloadRecordsNothing runs a full workload against a
// disabled session and expects complete silence.
func TestDisabledWorkloadRecordsNothing(t *testing.T) {
	rec := signpostz.NewRecorder()
	rec.SetEnabled(false)
	logger := signpostz.New(subsystem, signpostz.CategoryPointsOfInterest).WithBackend(rec)

	nameWork := signpostz.MustName("SilentWork")
	nameEvent := signpostz.MustName("SilentEvent")

	var wg sync.WaitGroup
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				logger.EmitEvent(uint64(n*1000+i+1), nameEvent)
				logger.WithInterval(uint64(n*1000+i+1), nameWork, func() {})
			}
		}(w)
	}
	wg.Wait()

	if count := rec.Count(); count != 0 {
		t.Errorf("expected 0 markers while disabled, got %d", count)
	}
	if dropped := rec.DroppedCount(); dropped != 0 {
		t.Errorf("expected 0 drops while disabled, got %d", dropped)
	}
}

// TestBackendSwapIsolation verifies handles stay with the backend that
// created them even after the process backend changes.
func TestBackendSwapIsolation(t *testing.T) {
	recA := signpostz.NewRecorder()
	recB := signpostz.NewRecorder()

	signpostz.SetBackend(recA)
	defer signpostz.SetBackend(nil)

	logger := signpostz.New(subsystem, signpostz.CategoryPointsOfInterest)
	logger.EmitEvent(1, signpostz.MustName("BeforeSwap"))

	signpostz.SetBackend(recB)
	logger.EmitEvent(2, signpostz.MustName("AfterSwap"))

	// The logger resolved against recA; recB never sees its markers.
	if count := recA.Count(); count != 2 {
		t.Errorf("expected both markers on the original backend, got %d", count)
	}
	if count := recB.Count(); count != 0 {
		t.Errorf("expected no markers on the swapped-in backend, got %d", count)
	}

	// A fresh logger binds to the new backend.
	fresh := signpostz.New(subsystem, signpostz.CategoryDynamicTracing)
	fresh.EmitEvent(3, signpostz.MustName("FreshLogger"))
	if count := recB.Count(); count != 1 {
		t.Errorf("expected fresh logger on new backend, got %d markers", count)
	}
}
