package vector

import "github.com/cockroachdb/errors"

// PushBack appends a copy of x, growing the vector when it is full.
func (v *Vector[T]) PushBack(x T) error {
	c, err := copyOf(x)
	if err != nil {
		return err
	}
	if err := v.place(c); err != nil {
		discard(&c)
		return err
	}
	return nil
}

// EmplaceBack appends x itself without copying it.
func (v *Vector[T]) EmplaceBack(x T) error {
	return v.place(x)
}

func (v *Vector[T]) place(x T) error {
	if v.buf.live == v.buf.capacity() {
		if err := v.grow(0); err != nil {
			return err
		}
	}
	v.allocator().Construct(&v.buf.slots[v.buf.live], x)
	v.buf.live++
	return nil
}

// PopBack destroys the last element. Panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.Empty() {
		panic("vector: PopBack on empty vector")
	}
	v.buf.live--
	v.allocator().Destroy(&v.buf.slots[v.buf.live])
}

// Insert places a copy of x at pos, shifting later elements right, and
// returns pos. Returns ErrOutOfRange unless 0 <= pos <= Size().
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if err := v.checkInsertPos(pos); err != nil {
		return pos, err
	}
	c, err := copyOf(x)
	if err != nil {
		return pos, err
	}
	return v.insertValues(pos, []T{c}, true)
}

// InsertN places n copies of x at pos and returns pos.
// Returns ErrInvalidArgument if n <= 0 and ErrAllocation if the result could
// not be addressed.
func (v *Vector[T]) InsertN(pos, n int, x T) (int, error) {
	if err := v.checkInsertPos(pos); err != nil {
		return pos, err
	}
	if n <= 0 {
		return pos, invalidArgument("insert count %d", n)
	}
	if n > maxSlots[T]()-v.Size() {
		return pos, errors.Wrapf(ErrAllocation, "insert %d with size %d", n, v.Size())
	}
	vals, err := copies(x, n)
	if err != nil {
		return pos, err
	}
	return v.insertValues(pos, vals, true)
}

// Emplace places x itself at pos without copying it and returns pos.
func (v *Vector[T]) Emplace(pos int, x T) (int, error) {
	if err := v.checkInsertPos(pos); err != nil {
		return pos, err
	}
	return v.insertValues(pos, []T{x}, false)
}

func (v *Vector[T]) checkInsertPos(pos int) error {
	if pos < 0 || pos > v.Size() {
		return errors.Wrapf(ErrOutOfRange, "insert position %d with size %d", pos, v.Size())
	}
	return nil
}

// insertValues opens a gap of len(vals) at pos and fills it. Growth happens
// first; nothing after it can fail. Positions are offsets, so they survive
// the move to a new block.
func (v *Vector[T]) insertValues(pos int, vals []T, owned bool) (int, error) {
	n := len(vals)
	size := v.buf.live
	if size+n > v.buf.capacity() {
		if err := v.grow(size + n); err != nil {
			if owned {
				for i := range vals {
					discard(&vals[i])
				}
			}
			return pos, err
		}
	}
	s := v.buf.slots
	// Raw tail slots are constructed, either from shifted elements or from
	// new values landing past the old end.
	for dst := size + n - 1; dst >= size; dst-- {
		if src := dst - n; src >= pos {
			v.allocator().Construct(&s[dst], s[src])
		} else {
			v.allocator().Construct(&s[dst], vals[dst-pos])
		}
	}
	for dst := size - 1; dst >= pos+n; dst-- {
		s[dst] = s[dst-n]
	}
	for i := pos; i < pos+n && i < size; i++ {
		s[i] = vals[i-pos]
	}
	v.buf.live += n
	return pos, nil
}

// Erase removes the element at pos and returns pos, which now holds the
// element that followed it. Returns ErrOutOfRange unless 0 <= pos < Size().
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.Size() {
		return pos, outOfRange(pos, v.Size())
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first.
// Returns ErrOutOfRange unless 0 <= first <= last <= Size().
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	if first < 0 || last > v.Size() || first > last {
		return first, errors.Wrapf(ErrOutOfRange, "range [%d, %d) with size %d", first, last, v.Size())
	}
	if first == last {
		return first, nil
	}
	s := v.buf.slots
	live := v.buf.live
	v.destroyRange(s, first, last)
	copy(s[first:live], s[last:live])
	removed := last - first
	forget(s[live-removed : live])
	v.buf.live -= removed
	return first, nil
}

// Clear destroys every element back to front. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	if v.buf.null() {
		return
	}
	v.destroyRange(v.buf.slots, 0, v.buf.live)
	v.buf.live = 0
}

// AssignSlice replaces the contents with copies of src in a block sized
// exactly to it. src may alias the vector's own elements.
func (v *Vector[T]) AssignSlice(src []T) error {
	if len(src) == 0 {
		v.uncreate()
		return nil
	}
	block, err := v.build(len(src), len(src), func(i int) T { return src[i] })
	if err != nil {
		return err
	}
	v.uncreate()
	v.buf = buffer[T]{slots: block, live: len(src)}
	return nil
}

// Assign replaces the contents with the given values.
func (v *Vector[T]) Assign(vals ...T) error {
	return v.AssignSlice(vals)
}

// AssignN replaces the contents with n copies of x, reusing the current
// block when it is large enough. Returns ErrInvalidArgument if n <= 0.
func (v *Vector[T]) AssignN(n int, x T) error {
	if n <= 0 {
		return invalidArgument("assign count %d", n)
	}
	if n > v.Capacity() {
		block, err := v.build(n, n, func(int) T { return x })
		if err != nil {
			return err
		}
		v.uncreate()
		v.buf = buffer[T]{slots: block, live: n}
		return nil
	}
	vals, err := copies(x, n)
	if err != nil {
		return err
	}
	v.Clear()
	for i, c := range vals {
		v.allocator().Construct(&v.buf.slots[i], c)
	}
	v.buf.live = n
	return nil
}

// Swap exchanges the contents of v and other without touching any element.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.alloc, other.alloc = other.alloc, v.alloc
	v.log, other.log = other.log, v.log
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// CopyFrom replaces the contents of v with copies of src's elements.
// Copying a vector onto itself does nothing.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	return v.AssignSlice(src.Data())
}
