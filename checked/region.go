package checked

import (
	"fmt"

	"github.com/rawbytedev/rawmem"
	"github.com/rawbytedev/rawmem/internal/common"
)

// Region is a span descriptor whose preconditions are validated against the
// real extent captured at conversion. Indexed access is checked against the
// extent, not the declared length, which stays advisory as in the raw layer.
type Region[T any] struct {
	raw    rawmem.Region[T]
	extent int
}

// MutRegion is the mutable flavor of Region.
type MutRegion[T any] struct {
	raw    rawmem.MutRegion[T]
	extent int
}

// RegionOf aliases s as a checked read-only region. The extent is len(s).
func RegionOf[T any](s []T) Region[T] {
	return Region[T]{raw: rawmem.RegionOf(s), extent: len(s)}
}

// MutRegionOf aliases s as a checked mutable region. The extent is len(s).
func MutRegionOf[T any](s []T) MutRegion[T] {
	return MutRegion[T]{raw: rawmem.MutRegionOf(s), extent: len(s)}
}

// Raw returns the unchecked descriptor this one validates.
func (r Region[T]) Raw() rawmem.Region[T] { return r.raw }

// Len returns the declared element count.
func (r Region[T]) Len() int { return r.raw.Len() }

// Ptr returns the region's base address, carrying the region's extent.
func (r Region[T]) Ptr() Ptr[T] {
	return Ptr[T]{raw: r.raw.Ptr(), off: 0, extent: r.extent}
}

// Read returns a copy of the element at index, checked against the extent.
func (r Region[T]) Read(index int) (T, error) {
	if index < 0 || index >= r.extent {
		var zero T
		return zero, fmt.Errorf("index %d outside extent %d: %w", index, r.extent, ErrBoundsViolation)
	}
	return r.raw.Read(index), nil
}

// Get returns a pointer to the element at index, checked against the extent.
// The result must not be written through.
func (r Region[T]) Get(index int) (*T, error) {
	if index < 0 || index >= r.extent {
		return nil, fmt.Errorf("index %d outside extent %d: %w", index, r.extent, ErrBoundsViolation)
	}
	return r.raw.Get(index), nil
}

// Slice returns the sub-region [from, to), rejecting from > to and
// to > Len().
func (r Region[T]) Slice(from, to int) (Region[T], error) {
	if err := checkSlice(from, to, r.raw.Len()); err != nil {
		return Region[T]{}, err
	}
	return Region[T]{raw: r.raw.Slice(from, to), extent: r.extent - from}, nil
}

// SliceTo returns the sub-region [0, to).
func (r Region[T]) SliceTo(to int) (Region[T], error) {
	return r.Slice(0, to)
}

// SliceFrom returns the sub-region [from, Len()).
func (r Region[T]) SliceFrom(from int) (Region[T], error) {
	return r.Slice(from, r.raw.Len())
}

// ToSlice converts the region into a bounded view of its declared span. The
// constructors keep the declared length within the extent, so this cannot
// fail.
func (r Region[T]) ToSlice() []T {
	return r.raw.ToSlice()
}

func checkSlice(from, to, length int) error {
	if from < 0 || from > to || to > length {
		return fmt.Errorf("slice [%d, %d) of region of length %d: %w", from, to, length, ErrBoundsViolation)
	}
	return nil
}

// Raw returns the unchecked descriptor this one validates.
func (r MutRegion[T]) Raw() rawmem.MutRegion[T] { return r.raw }

// Len returns the declared element count.
func (r MutRegion[T]) Len() int { return r.raw.Len() }

// MutPtr returns the region's base address, carrying the region's extent.
func (r MutRegion[T]) MutPtr() MutPtr[T] {
	return MutPtr[T]{raw: r.raw.MutPtr(), off: 0, extent: r.extent}
}

// Const demotes the region to its read-only flavor.
func (r MutRegion[T]) Const() Region[T] {
	return Region[T]{raw: r.raw.Const(), extent: r.extent}
}

// Read returns a copy of the element at index, checked against the extent.
func (r MutRegion[T]) Read(index int) (T, error) {
	return r.Const().Read(index)
}

// Get returns a writable pointer to the element at index, checked against
// the extent.
func (r MutRegion[T]) Get(index int) (*T, error) {
	if index < 0 || index >= r.extent {
		return nil, fmt.Errorf("index %d outside extent %d: %w", index, r.extent, ErrBoundsViolation)
	}
	return r.raw.Get(index), nil
}

// Write stores v at index, checked against the extent.
func (r MutRegion[T]) Write(index int, v T) error {
	if index < 0 || index >= r.extent {
		return fmt.Errorf("index %d outside extent %d: %w", index, r.extent, ErrBoundsViolation)
	}
	r.raw.Write(index, v)
	return nil
}

// WriteBytes fills the declared span with b. The constructors keep the
// declared length within the extent, so this cannot fail.
func (r MutRegion[T]) WriteBytes(b byte) {
	r.raw.WriteBytes(b)
}

// Copy relocates from.Len() elements into this region's base, overlap
// tolerated, rejecting source lengths beyond this region's extent.
func (r MutRegion[T]) Copy(from Region[T]) error {
	if from.Len() > r.extent {
		return fmt.Errorf("copy of %d elements into extent %d: %w", from.Len(), r.extent, ErrBoundsViolation)
	}
	r.raw.Copy(from.raw)
	return nil
}

// CopyNonoverlapping relocates from.Len() elements into this region's base,
// additionally rejecting overlapping spans.
func (r MutRegion[T]) CopyNonoverlapping(from Region[T]) error {
	if from.Len() > r.extent {
		return fmt.Errorf("copy of %d elements into extent %d: %w", from.Len(), r.extent, ErrBoundsViolation)
	}
	n := uintptr(from.Len()) * sizeOf[T]()
	if common.Overlaps(from.raw.Ptr().UnsafePointer(), r.raw.MutPtr().UnsafePointer(), n) {
		return fmt.Errorf("spans of %d elements overlap: %w", from.Len(), ErrOverlapViolation)
	}
	r.raw.CopyNonoverlapping(from.raw)
	return nil
}

// Slice returns the mutable sub-region [from, to).
func (r MutRegion[T]) Slice(from, to int) (MutRegion[T], error) {
	if err := checkSlice(from, to, r.raw.Len()); err != nil {
		return MutRegion[T]{}, err
	}
	return MutRegion[T]{raw: r.raw.Slice(from, to), extent: r.extent - from}, nil
}

// SliceTo returns the mutable sub-region [0, to).
func (r MutRegion[T]) SliceTo(to int) (MutRegion[T], error) {
	return r.Slice(0, to)
}

// SliceFrom returns the mutable sub-region [from, Len()).
func (r MutRegion[T]) SliceFrom(from int) (MutRegion[T], error) {
	return r.Slice(from, r.raw.Len())
}

// ToSlice converts the region into a writable bounded view of its declared
// span.
func (r MutRegion[T]) ToSlice() []T {
	return r.raw.ToSlice()
}
