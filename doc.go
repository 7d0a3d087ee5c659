// Package vector implements a generic dynamic array for Go.
//
// # Overview
//
// A Vector owns a single contiguous block of slots. The first Size() slots
// hold live elements; the remaining Capacity()-Size() slots are allocated but
// raw. Appending to a full vector moves every element into a block of twice
// the capacity (minimum 1), so PushBack is amortized O(1).
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	// Reserve up front when the final size is known
//	if err := v.Reserve(100); err != nil {
//		return err
//	}
//	for i := 0; i < 100; i++ {
//		v.PushBack(i)
//	}
//
//	// Bounds-checked access
//	x, err := v.At(42)
//
//	// Positions are offsets from the front
//	pos, err := v.Insert(10, -1)
//	_, err = v.Erase(pos)
//
// # Element Lifetimes
//
// All allocation and slot lifecycle transitions go through an Allocator:
// Allocate and Deallocate for blocks, Construct and Destroy for single slots.
// The default HeapAllocator allocates from the Go heap and accounts for
// every block and value it hands out.
//
// Element types that own resources can implement Cloner (on the value
// receiver) to control how copies are made and Destroyer to release
// resources when an element is destroyed. A Clone error aborts the operation
// and leaves the vector unchanged.
//
// # Reallocation
//
// Reserve, ShrinkToFit and any insertion into a full vector may move the
// elements to a new block. The new block is fully built before the old one
// is released; if copying fails the vector keeps its old block, size and
// contents. After a move, slices from Data and pointers from Ref refer to the
// old block and must not be used.
//
// # Thread Safety
//
// Vector is not thread-safe. A vector has exactly one owner at a time.
//
// # Ordering
//
// Compare, Less and Greater order vectors by size first: a shorter vector is
// always less than a longer one regardless of content. Only vectors of equal
// size are compared element by element.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package vector
