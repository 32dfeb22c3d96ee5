package checked

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/rawmem"
	"github.com/rawbytedev/rawmem/internal/common"
)

// Ptr is a read-only address that remembers its offset within, and the
// extent of, the object it was derived from. Arithmetic may reach one
// element past the end; element access may not.
type Ptr[T any] struct {
	raw    rawmem.Ptr[T]
	off    int
	extent int
}

// MutPtr is the mutable flavor of Ptr.
type MutPtr[T any] struct {
	raw    rawmem.MutPtr[T]
	off    int
	extent int
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Raw returns the unchecked address this one validates.
func (p Ptr[T]) Raw() rawmem.Ptr[T] { return p.raw }

// Add offsets the address by n elements, rejecting results outside the
// originating object or its one-past-end position.
func (p Ptr[T]) Add(n int) (Ptr[T], error) {
	off := p.off + n
	if off < 0 || off > p.extent {
		return Ptr[T]{}, fmt.Errorf("offset %d outside object of %d elements: %w", off, p.extent, ErrBoundsViolation)
	}
	return Ptr[T]{raw: p.raw.Add(n), off: off, extent: p.extent}, nil
}

// Sub offsets the address backwards by n elements. Same checks as Add.
func (p Ptr[T]) Sub(n int) (Ptr[T], error) {
	return p.Add(-n)
}

// Read returns a copy of the value at the address. One-past-end addresses
// are valid for arithmetic but not for reading.
func (p Ptr[T]) Read() (T, error) {
	if p.off >= p.extent {
		var zero T
		return zero, fmt.Errorf("read at offset %d of %d elements: %w", p.off, p.extent, ErrBoundsViolation)
	}
	return p.raw.Read(), nil
}

// Copy relocates count elements to dst, overlap tolerated, rejecting counts
// that escape either object's extent.
func (p Ptr[T]) Copy(dst MutPtr[T], count int) error {
	if err := checkSpan(p.off, p.extent, count); err != nil {
		return err
	}
	if err := checkSpan(dst.off, dst.extent, count); err != nil {
		return err
	}
	p.raw.Copy(dst.raw, count)
	return nil
}

// CopyNonoverlapping relocates count elements to dst, additionally rejecting
// overlapping spans.
func (p Ptr[T]) CopyNonoverlapping(dst MutPtr[T], count int) error {
	if err := checkSpan(p.off, p.extent, count); err != nil {
		return err
	}
	if err := checkSpan(dst.off, dst.extent, count); err != nil {
		return err
	}
	if common.Overlaps(p.raw.UnsafePointer(), dst.raw.UnsafePointer(), uintptr(count)*sizeOf[T]()) {
		return fmt.Errorf("spans of %d elements overlap: %w", count, ErrOverlapViolation)
	}
	p.raw.CopyNonoverlapping(dst.raw, count)
	return nil
}

// Region pairs the address with a length, rejecting lengths that exceed the
// remaining extent.
func (p Ptr[T]) Region(length int) (Region[T], error) {
	if err := checkSpan(p.off, p.extent, length); err != nil {
		return Region[T]{}, err
	}
	return Region[T]{raw: p.raw.Region(length), extent: p.extent - p.off}, nil
}

// Slice converts the address into a bounded view of length elements.
func (p Ptr[T]) Slice(length int) ([]T, error) {
	if err := checkSpan(p.off, p.extent, length); err != nil {
		return nil, err
	}
	return p.raw.Slice(length), nil
}

func checkSpan(off, extent, count int) error {
	if count < 0 || off+count > extent {
		return fmt.Errorf("span [%d, %d) outside object of %d elements: %w", off, off+count, extent, ErrBoundsViolation)
	}
	return nil
}

// Raw returns the unchecked address this one validates.
func (p MutPtr[T]) Raw() rawmem.MutPtr[T] { return p.raw }

// Const demotes the address to its read-only flavor.
func (p MutPtr[T]) Const() Ptr[T] {
	return Ptr[T]{raw: p.raw.Const(), off: p.off, extent: p.extent}
}

// Add offsets the address by n elements. Same checks as Ptr.Add.
func (p MutPtr[T]) Add(n int) (MutPtr[T], error) {
	off := p.off + n
	if off < 0 || off > p.extent {
		return MutPtr[T]{}, fmt.Errorf("offset %d outside object of %d elements: %w", off, p.extent, ErrBoundsViolation)
	}
	return MutPtr[T]{raw: p.raw.Add(n), off: off, extent: p.extent}, nil
}

// Sub offsets the address backwards by n elements. Same checks as Add.
func (p MutPtr[T]) Sub(n int) (MutPtr[T], error) {
	return p.Add(-n)
}

// Read returns a copy of the value at the address.
func (p MutPtr[T]) Read() (T, error) {
	return p.Const().Read()
}

// Copy relocates count elements to dst, overlap tolerated.
func (p MutPtr[T]) Copy(dst MutPtr[T], count int) error {
	return p.Const().Copy(dst, count)
}

// CopyNonoverlapping relocates count elements to dst, rejecting overlap.
func (p MutPtr[T]) CopyNonoverlapping(dst MutPtr[T], count int) error {
	return p.Const().CopyNonoverlapping(dst, count)
}

// Write stores v at the address, rejecting one-past-end positions.
func (p MutPtr[T]) Write(v T) error {
	if p.off >= p.extent {
		return fmt.Errorf("write at offset %d of %d elements: %w", p.off, p.extent, ErrBoundsViolation)
	}
	p.raw.Write(v)
	return nil
}

// WriteBytes fills count elements' bytes with b.
func (p MutPtr[T]) WriteBytes(b byte, count int) error {
	if err := checkSpan(p.off, p.extent, count); err != nil {
		return err
	}
	p.raw.WriteBytes(b, count)
	return nil
}

// Swap exchanges the values at the two addresses. Swapping an address with
// itself is permitted and leaves the memory unchanged.
func (p MutPtr[T]) Swap(other MutPtr[T]) error {
	if p.off >= p.extent || other.off >= other.extent {
		return fmt.Errorf("swap at offsets %d/%d: %w", p.off, other.off, ErrBoundsViolation)
	}
	p.raw.Swap(other.raw)
	return nil
}

// Replace installs v at the address and returns the previous value.
func (p MutPtr[T]) Replace(v T) (T, error) {
	if p.off >= p.extent {
		var zero T
		return zero, fmt.Errorf("replace at offset %d of %d elements: %w", p.off, p.extent, ErrBoundsViolation)
	}
	return p.raw.Replace(v), nil
}

// Region pairs the address with a length, mutably.
func (p MutPtr[T]) Region(length int) (MutRegion[T], error) {
	if err := checkSpan(p.off, p.extent, length); err != nil {
		return MutRegion[T]{}, err
	}
	return MutRegion[T]{raw: p.raw.Region(length), extent: p.extent - p.off}, nil
}

// Slice converts the address into a writable bounded view.
func (p MutPtr[T]) Slice(length int) ([]T, error) {
	if err := checkSpan(p.off, p.extent, length); err != nil {
		return nil, err
	}
	return p.raw.Slice(length), nil
}
