package vector

import (
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int]()

	// Test initial state
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}
	if v.Reallocations() != 0 {
		t.Errorf("Initial Reallocations = %d, want 0", v.Reallocations())
	}

	for i := 0; i < 5; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatalf("PushBack(%d) = %v", i, err)
		}
	}

	utilization := v.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}

	// Test metrics snapshot
	metrics := v.Metrics()
	if metrics.Size != 5 {
		t.Errorf("Metrics.Size = %d, want 5", metrics.Size)
	}
	if metrics.Capacity != 8 {
		t.Errorf("Metrics.Capacity = %d, want 8", metrics.Capacity)
	}
	if metrics.Spare != 3 {
		t.Errorf("Metrics.Spare = %d, want 3", metrics.Spare)
	}
	if metrics.Reallocations != 4 {
		t.Errorf("Metrics.Reallocations = %d, want 4", metrics.Reallocations)
	}
	if metrics.Utilization != 5.0/8.0 {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, 5.0/8.0)
	}
}

func TestVectorMetricsAfterShrink(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Reserve(12); err != nil {
		t.Fatal(err)
	}
	if v.Utilization() != 0.25 {
		t.Errorf("Utilization after Reserve = %f, want 0.25", v.Utilization())
	}

	if err := v.ShrinkToFit(); err != nil {
		t.Fatal(err)
	}
	if v.Utilization() != 1 {
		t.Errorf("Utilization after ShrinkToFit = %f, want 1", v.Utilization())
	}
	if v.Reallocations() != 2 {
		t.Errorf("Reallocations = %d, want 2", v.Reallocations())
	}

	v.Release()
	if m := v.Metrics(); m.Capacity != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want zero capacity", m)
	}
}

func TestSwapCarriesMetrics(t *testing.T) {
	a := New[int]()
	for i := 0; i < 3; i++ {
		if err := a.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}
	b := New[int]()

	a.Swap(b)
	if b.Reallocations() != 3 {
		t.Errorf("b.Reallocations = %d, want 3", b.Reallocations())
	}
	if a.Reallocations() != 0 {
		t.Errorf("a.Reallocations = %d, want 0", a.Reallocations())
	}
}
