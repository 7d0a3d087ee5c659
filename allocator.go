package vector

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Allocator acquires and releases raw slot blocks and moves values in and
// out of individual slots. A Vector performs every allocation, placement and
// teardown through its Allocator.
type Allocator[T any] interface {
	// Allocate returns a block of exactly n raw slots.
	Allocate(n int) ([]T, error)
	// Deallocate releases a block previously returned by Allocate.
	// All live values in it must already be destroyed.
	Deallocate(block []T)
	// Construct places v into a raw slot, making it live.
	Construct(slot *T, v T)
	// Destroy ends the lifetime of the value in slot, returning it to raw.
	Destroy(slot *T)
}

// Cloner is implemented (on the value receiver) by element types whose
// copies must not share state with the original. Vector calls Clone wherever
// a copy of an element is constructed; a Clone error aborts the operation
// with no visible change.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by element types that hold resources which must
// be released when the element is destroyed. Such types should also
// implement Cloner, otherwise every copy shares the resource its source
// releases.
type Destroyer interface {
	Destroy()
}

// HeapAllocator allocates slot blocks from the Go heap and keeps a running
// account of blocks and slots so leaks are observable.
// Not goroutine-safe.
type HeapAllocator[T any] struct {
	allocations   int
	deallocations int
	slotsInUse    int
	constructed   int
	destroyed     int
}

// NewHeapAllocator creates a HeapAllocator with zeroed accounting.
func NewHeapAllocator[T any]() *HeapAllocator[T] {
	return &HeapAllocator[T]{}
}

// maxSlots is the largest block of T the heap could address.
func maxSlots[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// Allocate returns n zeroed slots. Returns ErrInvalidArgument if n <= 0 and
// ErrAllocation if n slots of T cannot be addressed.
func (h *HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, invalidArgument("allocate %d slots", n)
	}
	if n > maxSlots[T]() {
		return nil, errors.Wrapf(ErrAllocation, "%d slots exceed addressable limit %d", n, maxSlots[T]())
	}
	h.allocations++
	h.slotsInUse += n
	return make([]T, n), nil
}

// Deallocate returns the block to the runtime.
func (h *HeapAllocator[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	h.deallocations++
	h.slotsInUse -= len(block)
}

// Construct stores v in slot.
func (h *HeapAllocator[T]) Construct(slot *T, v T) {
	*slot = v
	h.constructed++
}

// Destroy runs the element's Destroy hook, if any, and zeroes the slot so
// the garbage collector can reclaim anything it referenced.
func (h *HeapAllocator[T]) Destroy(slot *T) {
	runDestroy(slot)
	var zero T
	*slot = zero
	h.destroyed++
}

// Metrics returns a snapshot of the allocator's accounting.
func (h *HeapAllocator[T]) Metrics() AllocatorMetrics {
	return AllocatorMetrics{
		Allocations:   h.allocations,
		Deallocations: h.deallocations,
		SlotsInUse:    h.slotsInUse,
		Constructed:   h.constructed,
		Destroyed:     h.destroyed,
	}
}

// LiveBlocks returns the number of blocks allocated but not yet released.
func (h *HeapAllocator[T]) LiveBlocks() int {
	return h.allocations - h.deallocations
}

// LiveValues returns the number of values constructed but not yet destroyed.
func (h *HeapAllocator[T]) LiveValues() int {
	return h.constructed - h.destroyed
}
