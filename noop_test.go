package signpostz

import "testing"

func BenchmarkDisabledEmitEvent(b *testing.B) {
	rec := NewRecorder()
	rec.SetEnabled(false)
	logger := New(testSubsystem, CategoryPointsOfInterest).WithBackend(rec)

	// Resolve the handle outside the loop; the benchmark measures the
	// steady-state disabled path.
	logger.EmitEvent(1, testEvent)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.EmitEvent(1, testEvent)
	}
}

func BenchmarkDisabledInterval(b *testing.B) {
	rec := NewRecorder()
	rec.SetEnabled(false)
	logger := New(testSubsystem, CategoryPointsOfInterest).WithBackend(rec)

	logger.BeginInterval(1, testInterval).End()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iv := logger.BeginInterval(1, testInterval)
		iv.End()
	}
}

func BenchmarkDefaultBackendEmitEvent(b *testing.B) {
	logger := New(testSubsystem, CategoryPointsOfInterest)
	logger.EmitEvent(1, testEvent)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.EmitEvent(1, testEvent)
	}
}

func BenchmarkEnabledEmitEvent(b *testing.B) {
	rec := NewRecorder()
	rec.SetMaxMarkers(1024) // bound the buffer; overflow is counted, not stored
	logger := New(testSubsystem, CategoryPointsOfInterest).WithBackend(rec)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.EmitEvent(1, testEvent)
	}
}

func TestDisabledEmitEventAllocates(t *testing.T) {
	rec := NewRecorder()
	rec.SetEnabled(false)
	logger := New(testSubsystem, CategoryPointsOfInterest).WithBackend(rec)
	logger.EmitEvent(1, testEvent)

	allocs := testing.AllocsPerRun(100, func() {
		logger.EmitEvent(1, testEvent)
	})
	if allocs != 0 {
		t.Errorf("Expected 0 allocations on the disabled path, got %v", allocs)
	}
}
