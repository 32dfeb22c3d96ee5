// Package rawmem provides capability operations over raw, untyped-validity
// memory addresses and contiguous address+length regions. Nothing here
// allocates, frees, bounds-checks, or synchronizes: every operation trusts
// the caller's preconditions completely and is undefined behaviour when they
// are violated. Code that wants those preconditions validated should use the
// checked package instead.
package rawmem

import (
	"unsafe"

	"github.com/rawbytedev/rawmem/internal/common"
)

// Ptr is a read-only typed address. Holding a Ptr asserts nothing about the
// validity of the memory it names; it is a plain value, copyable, and
// comparable by location identity.
type Ptr[T any] struct {
	p unsafe.Pointer
}

// MutPtr is a mutable typed address; writes through it are permitted.
type MutPtr[T any] struct {
	p unsafe.Pointer
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// UnsafePointer exposes the underlying address for interop and range
// comparisons. It carries no validity guarantee.
func (p Ptr[T]) UnsafePointer() unsafe.Pointer { return p.p }

// Add offsets the address by n elements (n * sizeof(T) bytes).
//
// SAFETY: the result must stay in-bounds of the object the address was
// derived from, or land at most one element past its end.
func (p Ptr[T]) Add(n int) Ptr[T] {
	return Ptr[T]{unsafe.Add(p.p, n*sizeOf[T]())}
}

// Sub offsets the address backwards by n elements. Same contract as Add.
func (p Ptr[T]) Sub(n int) Ptr[T] {
	return Ptr[T]{unsafe.Add(p.p, -n*sizeOf[T]())}
}

// Read returns a bitwise copy of the value stored at the address. The
// original is not consumed: if T refers to other memory (pointers, slice
// headers), both copies alias it and the caller resolves the sharing.
//
// SAFETY: the address must hold a valid, initialized T.
func (p Ptr[T]) Read() T {
	return *(*T)(p.p)
}

// Copy relocates count elements from this address to dst. The source and
// destination spans may overlap (memmove semantics).
//
// SAFETY: count elements must be valid at both addresses.
func (p Ptr[T]) Copy(dst MutPtr[T], count int) {
	copy(unsafe.Slice((*T)(dst.p), count), unsafe.Slice((*T)(p.p), count))
}

// CopyNonoverlapping relocates count elements from this address to dst.
//
// SAFETY: as Copy, and additionally the two spans must be disjoint; the
// result is silently wrong if they overlap.
func (p Ptr[T]) CopyNonoverlapping(dst MutPtr[T], count int) {
	copy(unsafe.Slice((*T)(dst.p), count), unsafe.Slice((*T)(p.p), count))
}

// Region pairs the address with a caller-supplied length. No validation is
// performed; the length is advisory metadata on the descriptor.
func (p Ptr[T]) Region(length int) Region[T] {
	return Region[T]{base: p, length: length}
}

// Slice converts the address into a bounded view of length elements.
//
// SAFETY: the length elements starting at this address must remain valid for
// the lifetime of the view. The view must not be written through.
func (p Ptr[T]) Slice(length int) []T {
	return unsafe.Slice((*T)(p.p), length)
}

// UnsafePointer exposes the underlying address for interop and range
// comparisons. It carries no validity guarantee.
func (p MutPtr[T]) UnsafePointer() unsafe.Pointer { return p.p }

// Const demotes the address to its read-only flavor.
func (p MutPtr[T]) Const() Ptr[T] { return Ptr[T]{p.p} }

// Add offsets the address by n elements. Same contract as Ptr.Add.
func (p MutPtr[T]) Add(n int) MutPtr[T] {
	return MutPtr[T]{unsafe.Add(p.p, n*sizeOf[T]())}
}

// Sub offsets the address backwards by n elements. Same contract as Ptr.Add.
func (p MutPtr[T]) Sub(n int) MutPtr[T] {
	return MutPtr[T]{unsafe.Add(p.p, -n*sizeOf[T]())}
}

// Read returns a bitwise copy of the value at the address. See Ptr.Read.
func (p MutPtr[T]) Read() T {
	return *(*T)(p.p)
}

// Copy relocates count elements from this address to dst, overlap tolerated.
func (p MutPtr[T]) Copy(dst MutPtr[T], count int) {
	p.Const().Copy(dst, count)
}

// CopyNonoverlapping relocates count elements to dst.
//
// SAFETY: the spans must be disjoint.
func (p MutPtr[T]) CopyNonoverlapping(dst MutPtr[T], count int) {
	p.Const().CopyNonoverlapping(dst, count)
}

// Write overwrites the memory at the address with v without reading whatever
// was previously stored. If the old value held resources that matter, the
// caller must have disposed of them already.
//
// SAFETY: the address must be writable and exclusively accessible.
func (p MutPtr[T]) Write(v T) {
	*(*T)(p.p) = v
}

// WriteBytes sets count elements' worth of memory (count * sizeof(T) bytes)
// to the repeated byte b. Good for zeroing memory out.
//
// SAFETY: count elements must be writable, and for element types containing
// pointers only b == 0 produces a representable value.
func (p MutPtr[T]) WriteBytes(b byte, count int) {
	common.Fill(p.p, b, count*sizeOf[T]())
}

// Swap exchanges the values at two mutable addresses. The addresses may be
// equal, in which case the memory is left unchanged; no branch is taken
// either way.
func (p MutPtr[T]) Swap(other MutPtr[T]) {
	a := (*T)(p.p)
	b := (*T)(other.p)
	tmp := *a
	*a = *b
	*b = tmp
}

// Replace installs v at the address and returns the value previously stored,
// without a moment where two live copies of v exist.
func (p MutPtr[T]) Replace(v T) T {
	old := *(*T)(p.p)
	*(*T)(p.p) = v
	return old
}

// Region pairs the address with a caller-supplied length, mutably.
func (p MutPtr[T]) Region(length int) MutRegion[T] {
	return MutRegion[T]{base: p, length: length}
}

// Slice converts the address into a writable bounded view of length elements.
//
// SAFETY: the length elements must remain valid and exclusively accessible
// for the lifetime of the view.
func (p MutPtr[T]) Slice(length int) []T {
	return unsafe.Slice((*T)(p.p), length)
}
