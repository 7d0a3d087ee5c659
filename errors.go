package vector

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument indicates a count, capacity or resize target that
	// violates the operation's precondition.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrOutOfRange indicates an index or position outside the live region.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrAllocation indicates the allocator could not provide a block.
	ErrAllocation = errors.New("vector: allocation failed")
)

func invalidArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func outOfRange(i, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d with size %d", i, size)
}
