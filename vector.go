// Package vector implements a generic dynamic array with explicit capacity
// management. Typical usage: create a vector, Reserve when the final size is
// known, append with PushBack, and Release when done.
package vector

import (
	"iter"
	"math"

	"go.uber.org/zap"
)

// Vector is a contiguous, resizable sequence of T. Not goroutine-safe.
// The zero Vector is empty and ready to use with a HeapAllocator and a no-op
// logger; New and the other constructors accept Options.
//
// Any operation that can grow the vector may move its elements to a new
// block; slices from Data, pointers from Ref and positions held across such a
// call must not be reused.
type Vector[T any] struct {
	buf      buffer[T]
	alloc    Allocator[T]
	log      *zap.Logger
	reallocs int
}

// allocator returns v's allocator, installing a HeapAllocator on first use.
func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		v.alloc = NewHeapAllocator[T]()
	}
	return v.alloc
}

func (v *Vector[T]) logger() *zap.Logger {
	if v.log == nil {
		v.log = zap.NewNop()
	}
	return v.log
}

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator used for every block and slot operation.
// A nil allocator is ignored.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		if a != nil {
			v.alloc = a
		}
	}
}

// WithLogger sets the logger that receives relocation events at debug level.
// A nil logger is ignored.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(v *Vector[T]) {
		if l != nil {
			v.log = l
		}
	}
}

// New creates an empty, unallocated vector.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{
		alloc: NewHeapAllocator[T](),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.create()
	return v
}

// NewFilled creates a vector holding n copies of x with no spare capacity.
// Returns ErrInvalidArgument if n < 0.
func NewFilled[T any](n int, x T, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, invalidArgument("fill count %d", n)
	}
	v := New(opts...)
	if err := v.createFill(n, x); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector holding copies of src, sized exactly to it.
func FromSlice[T any](src []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.createFrom(src); err != nil {
		return nil, err
	}
	return v, nil
}

// Of creates a vector from a list of values.
func Of[T any](vals ...T) (*Vector[T], error) {
	return FromSlice(vals)
}

// Collect creates a vector from every value yielded by seq, in order.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// Clone returns a copy of v sized exactly to its contents. The copy shares
// v's allocator and logger.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return FromSlice(v.Data(), WithAllocator(v.allocator()), WithLogger[T](v.logger()))
}

// Release destroys every element and frees the block. The vector remains
// usable and is empty afterwards.
func (v *Vector[T]) Release() {
	v.uncreate()
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.buf.size()
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.buf.capacity()
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.buf.size() == 0
}

// MaxSize returns the largest element count the size type can represent.
func (v *Vector[T]) MaxSize() int {
	return math.MaxInt
}

// Reserve ensures capacity for at least n elements; n <= Capacity() is a
// no-op. Returns ErrInvalidArgument if n < 0. If the vector has to move,
// either every element is copied into the new block or the vector is left
// untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return invalidArgument("reserve %d", n)
	}
	if n <= v.Capacity() {
		return nil
	}
	return v.relocate(n)
}

// ShrinkToFit drops all spare capacity by moving into an exactly sized block.
// An empty vector releases its block entirely.
func (v *Vector[T]) ShrinkToFit() error {
	if v.Size() == v.Capacity() {
		return nil
	}
	if v.Empty() {
		v.uncreate()
		return nil
	}
	return v.relocate(v.Size())
}

// Resize shrinks the vector to n elements, destroying the tail.
// Returns ErrInvalidArgument unless 0 <= n <= Size().
func (v *Vector[T]) Resize(n int) error {
	if n < 0 || n > v.Size() {
		return invalidArgument("resize to %d with size %d", n, v.Size())
	}
	for v.Size() > n {
		v.PopBack()
	}
	return nil
}

// ResizeFill sets the size to n. Shrinking behaves as Resize; growing fills
// spare capacity with copies of x first and reserves exactly n slots only
// when capacity is short. Returns ErrInvalidArgument if n < 0.
func (v *Vector[T]) ResizeFill(n int, x T) error {
	if n < 0 {
		return invalidArgument("resize to %d", n)
	}
	if n <= v.Size() {
		return v.Resize(n)
	}
	vals, err := copies(x, n-v.Size())
	if err != nil {
		return err
	}
	if n > v.Capacity() {
		if err := v.relocate(n); err != nil {
			for i := range vals {
				discard(&vals[i])
			}
			return err
		}
	}
	for _, c := range vals {
		v.allocator().Construct(&v.buf.slots[v.buf.live], c)
		v.buf.live++
	}
	return nil
}

// At returns the element at i. Returns ErrOutOfRange unless 0 <= i < Size().
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Size() {
		var zero T
		return zero, outOfRange(i, v.Size())
	}
	return v.buf.slots[i], nil
}

// Ref returns a pointer to the element at i for in-place modification.
// Returns ErrOutOfRange unless 0 <= i < Size().
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.Size() {
		return nil, outOfRange(i, v.Size())
	}
	return &v.buf.slots[i], nil
}

// Set replaces the element at i with a copy of x.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.Size() {
		return outOfRange(i, v.Size())
	}
	c, err := copyOf(x)
	if err != nil {
		return err
	}
	v.allocator().Destroy(&v.buf.slots[i])
	v.allocator().Construct(&v.buf.slots[i], c)
	return nil
}

// Front returns the first element. Panics if the vector is empty.
func (v *Vector[T]) Front() T {
	return v.Data()[0]
}

// Back returns the last element. Panics if the vector is empty.
func (v *Vector[T]) Back() T {
	return v.Data()[v.Size()-1]
}

// Data returns the live elements as a slice sharing the vector's block.
// Returns nil when no block is allocated.
func (v *Vector[T]) Data() []T {
	if v.buf.null() {
		return nil
	}
	return v.buf.slots[:v.buf.live:v.buf.live]
}
