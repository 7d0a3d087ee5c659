package vector

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// buffer is the vector's owned block. slots is the whole allocation, so
// len(slots) is the capacity; slots[:live] hold constructed values and
// slots[live:] are raw. A nil slots is the only valid empty-unallocated state.
type buffer[T any] struct {
	slots []T
	live  int
}

func (b *buffer[T]) size() int     { return b.live }
func (b *buffer[T]) capacity() int { return len(b.slots) }
func (b *buffer[T]) null() bool    { return b.slots == nil }

// copyOf copy-constructs x.
func copyOf[T any](x T) (T, error) {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x, nil
}

// discard ends the lifetime of a copy that never occupied a slot. Only
// Cloner copies own their state; anything else still shares its source's.
func discard[T any](x *T) {
	if _, ok := any(*x).(Cloner[T]); !ok {
		return
	}
	runDestroy(x)
}

// runDestroy calls the Destroy hook of the value in x. The hook may sit on
// *T or, for pointer element types, on T itself. Nil pointers are skipped.
func runDestroy[T any](x *T) {
	if d, ok := any(x).(Destroyer); ok {
		d.Destroy()
		return
	}
	d, ok := any(*x).(Destroyer)
	if !ok {
		return
	}
	if rv := reflect.ValueOf(d); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return
	}
	d.Destroy()
}

// copies returns n copies of x, or none of them. Returns ErrAllocation if n
// values of T cannot be addressed.
func copies[T any](x T, n int) ([]T, error) {
	if n > maxSlots[T]() {
		return nil, errors.Wrapf(ErrAllocation, "%d copies exceed addressable limit %d", n, maxSlots[T]())
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		c, err := copyOf(x)
		if err != nil {
			for j := len(out) - 1; j >= 0; j-- {
				discard(&out[j])
			}
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// create resets the vector to the null state.
func (v *Vector[T]) create() {
	v.buf = buffer[T]{}
}

// build allocates n slots and copy-constructs the first live of them from
// src. On failure every constructed slot is destroyed and the block released,
// so nothing leaks and the caller's state is untouched.
func (v *Vector[T]) build(n, live int, src func(i int) T) ([]T, error) {
	block, err := v.allocator().Allocate(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < live; i++ {
		c, err := copyOf(src(i))
		if err != nil {
			v.destroyRange(block, 0, i)
			v.allocator().Deallocate(block)
			return nil, err
		}
		v.allocator().Construct(&block[i], c)
	}
	return block, nil
}

// createFill allocates exactly n slots holding copies of x.
func (v *Vector[T]) createFill(n int, x T) error {
	if n == 0 {
		v.create()
		return nil
	}
	block, err := v.build(n, n, func(int) T { return x })
	if err != nil {
		return err
	}
	v.buf = buffer[T]{slots: block, live: n}
	return nil
}

// createFrom allocates exactly len(src) slots holding copies of src.
func (v *Vector[T]) createFrom(src []T) error {
	if len(src) == 0 {
		v.create()
		return nil
	}
	block, err := v.build(len(src), len(src), func(i int) T { return src[i] })
	if err != nil {
		return err
	}
	v.buf = buffer[T]{slots: block, live: len(src)}
	return nil
}

// uncreate destroys the live elements back to front, releases the block and
// returns to the null state. No-op when already null.
func (v *Vector[T]) uncreate() {
	if !v.buf.null() {
		v.destroyRange(v.buf.slots, 0, v.buf.live)
		v.allocator().Deallocate(v.buf.slots)
	}
	v.create()
}

// destroyRange destroys block[from:to] in reverse order.
func (v *Vector[T]) destroyRange(block []T, from, to int) {
	for i := to - 1; i >= from; i-- {
		v.allocator().Destroy(&block[i])
	}
}

// forget returns slots whose values were moved elsewhere to raw without
// running destructors.
func forget[T any](slots []T) {
	var zero T
	for i := range slots {
		slots[i] = zero
	}
}

// relocate moves the live elements into a new block of exactly n slots.
// The new block is fully built before the old one is touched; any failure
// leaves the vector exactly as it was.
func (v *Vector[T]) relocate(n int) error {
	from := v.buf.capacity()
	old := v.buf.slots
	block, err := v.build(n, v.buf.live, func(i int) T { return old[i] })
	if err != nil {
		v.logger().Debug("vector: relocation failed",
			zap.Int("from", from), zap.Int("to", n), zap.Error(err))
		return err
	}
	live := v.buf.live
	v.uncreate()
	v.buf = buffer[T]{slots: block, live: live}
	v.reallocs++
	v.logger().Debug("vector: relocated",
		zap.Int("from", from), zap.Int("to", n), zap.Int("size", live))
	return nil
}

// grow relocates to max(2*capacity, 1), or to min if that is larger.
func (v *Vector[T]) grow(min int) error {
	n := v.buf.capacity() * 2
	if n < 1 {
		n = 1
	}
	if n < min {
		n = min
	}
	return v.relocate(n)
}
