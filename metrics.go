package vector

// Utilization returns the ratio of live elements to allocated slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.Size()) / float64(capacity)
}

// Reallocations returns how many times the vector has moved its elements
// into a new block.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.Size(),
		Capacity:      v.Capacity(),
		Spare:         v.Capacity() - v.Size(),
		Reallocations: v.Reallocations(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Spare         int     // Allocated but unconstructed slots
	Reallocations int     // Successful relocations to a new block
	Utilization   float64 // Ratio of live elements to capacity (0.0-1.0)
}

// AllocatorMetrics contains the accounting kept by a HeapAllocator.
type AllocatorMetrics struct {
	Allocations   int // Blocks handed out
	Deallocations int // Blocks released
	SlotsInUse    int // Slots in blocks not yet released
	Constructed   int // Values placed into slots
	Destroyed     int // Values destroyed in place
}
