package vector

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

var errCloneBudget = errors.New("clone budget exhausted")

// budgeted fails to clone once its shared budget reaches zero.
type budgeted struct {
	id     int
	budget *int
}

func (b budgeted) Clone() (budgeted, error) {
	if b.budget != nil {
		if *b.budget == 0 {
			return budgeted{}, errCloneBudget
		}
		*b.budget--
	}
	return b, nil
}

// resource counts clones and destroys so tests can balance them.
type resource struct {
	id     int
	ledger *ledger
}

type ledger struct {
	clones    int
	destroyed int
}

func (r resource) Clone() (resource, error) {
	r.ledger.clones++
	return r, nil
}

func (r *resource) Destroy() {
	if r.ledger != nil {
		r.ledger.destroyed++
	}
}

// flakyAllocator is a HeapAllocator whose Allocate fails on demand.
type flakyAllocator[T any] struct {
	*HeapAllocator[T]
	fail bool
}

func newFlakyAllocator[T any]() *flakyAllocator[T] {
	return &flakyAllocator[T]{HeapAllocator: NewHeapAllocator[T]()}
}

func (f *flakyAllocator[T]) Allocate(n int) ([]T, error) {
	if f.fail {
		return nil, errors.Wrapf(ErrAllocation, "injected failure for %d slots", n)
	}
	return f.HeapAllocator.Allocate(n)
}

func ints(t interface{ Helper() }, vals ...int) *Vector[int] {
	t.Helper()
	v, err := Of(vals...)
	if err != nil {
		panic(err)
	}
	return v
}

// dataAddr returns the address of the first slot of v's block.
func dataAddr[T any](v *Vector[T]) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(v.Data())))
}
