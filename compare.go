package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same size and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal using eq to compare elements. It stops at the first
// mismatch.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i, x := range a.Data() {
		if !eq(x, b.buf.slots[i]) {
			return false
		}
	}
	return true
}

// Compare orders vectors by size first: a shorter vector is always less,
// whatever its contents. Vectors of equal size are ordered by their first
// differing element. Returns -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// CompareFunc is Compare using cmp to order elements.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	switch {
	case a.Size() < b.Size():
		return -1
	case a.Size() > b.Size():
		return 1
	}
	for i, x := range a.Data() {
		if c := cmp(x, b.buf.slots[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether a orders before b under Compare.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// Greater reports whether a orders after b under Compare.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// LessFunc is Less using cmp to order elements.
func LessFunc[T any](a, b *Vector[T], cmp func(T, T) int) bool {
	return CompareFunc(a, b, cmp) < 0
}

// GreaterFunc is Greater using cmp to order elements.
func GreaterFunc[T any](a, b *Vector[T], cmp func(T, T) int) bool {
	return CompareFunc(a, b, cmp) > 0
}
