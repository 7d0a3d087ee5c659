package vector

import "iter"

// All yields each position and element from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Size(); i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Values yields each element from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Size(); i++ {
			if !yield(v.buf.slots[i]) {
				return
			}
		}
	}
}

// Backward yields each position and element from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Size() - 1; i >= 0; i-- {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}
