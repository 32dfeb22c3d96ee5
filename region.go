package rawmem

// Region describes a contiguous span of length elements starting at base.
// The length is descriptive metadata only: indexed operations ignore it, and
// nothing verifies it against the real allocation behind base.
type Region[T any] struct {
	base   Ptr[T]
	length int
}

// MutRegion is the mutable flavor of Region.
type MutRegion[T any] struct {
	base   MutPtr[T]
	length int
}

// Len returns the declared element count.
func (r Region[T]) Len() int { return r.length }

// Ptr returns the region's base address.
func (r Region[T]) Ptr() Ptr[T] { return r.base }

// Read returns a bitwise copy of the element at index. The index is not
// checked against Len; the declared length is advisory only.
//
// SAFETY: index must be within the real extent reachable from the base.
func (r Region[T]) Read(index int) T {
	return r.base.Add(index).Read()
}

// Get returns a pointer to the element at index, same contract as Read. The
// result must not be written through.
func (r Region[T]) Get(index int) *T {
	return (*T)(r.base.Add(index).p)
}

// Slice returns the sub-region [from, to).
//
// SAFETY: from <= to <= Len().
func (r Region[T]) Slice(from, to int) Region[T] {
	return Region[T]{base: r.base.Add(from), length: to - from}
}

// SliceTo returns the sub-region [0, to).
func (r Region[T]) SliceTo(to int) Region[T] {
	return r.Slice(0, to)
}

// SliceFrom returns the sub-region [from, Len()).
func (r Region[T]) SliceFrom(from int) Region[T] {
	return r.Slice(from, r.length)
}

// ToSlice converts the region into a bounded view of its declared span.
//
// SAFETY: the declared length must not exceed the real valid extent, and the
// memory must stay valid for the lifetime of the view.
func (r Region[T]) ToSlice() []T {
	return r.base.Slice(r.length)
}

// Len returns the declared element count.
func (r MutRegion[T]) Len() int { return r.length }

// MutPtr returns the region's base address.
func (r MutRegion[T]) MutPtr() MutPtr[T] { return r.base }

// Const demotes the region to its read-only flavor.
func (r MutRegion[T]) Const() Region[T] {
	return Region[T]{base: r.base.Const(), length: r.length}
}

// Read returns a bitwise copy of the element at index, ignoring Len.
func (r MutRegion[T]) Read(index int) T {
	return r.base.Add(index).Read()
}

// Get returns a writable pointer to the element at index, ignoring Len.
func (r MutRegion[T]) Get(index int) *T {
	return (*T)(r.base.Add(index).p)
}

// Write stores v at index without reading or disposing of whatever was there.
// Appropriate for initializing uninitialized elements. Ignores Len.
//
// SAFETY: index must be within the real writable extent.
func (r MutRegion[T]) Write(index int, v T) {
	r.base.Add(index).Write(v)
}

// WriteBytes sets every byte of the declared span to b, using the region's
// own Len rather than a caller-supplied count.
func (r MutRegion[T]) WriteBytes(b byte) {
	r.base.WriteBytes(b, r.length)
}

// Copy relocates from.Len() elements from the given region into this one's
// base. The spans may overlap; this region's own Len is not consulted.
func (r MutRegion[T]) Copy(from Region[T]) {
	from.base.Copy(r.base, from.length)
}

// CopyNonoverlapping relocates from.Len() elements into this region's base.
//
// SAFETY: the two spans must be disjoint.
func (r MutRegion[T]) CopyNonoverlapping(from Region[T]) {
	from.base.CopyNonoverlapping(r.base, from.length)
}

// Slice returns the mutable sub-region [from, to).
//
// SAFETY: from <= to <= Len().
func (r MutRegion[T]) Slice(from, to int) MutRegion[T] {
	return MutRegion[T]{base: r.base.Add(from), length: to - from}
}

// SliceTo returns the mutable sub-region [0, to).
func (r MutRegion[T]) SliceTo(to int) MutRegion[T] {
	return r.Slice(0, to)
}

// SliceFrom returns the mutable sub-region [from, Len()).
func (r MutRegion[T]) SliceFrom(from int) MutRegion[T] {
	return r.Slice(from, r.length)
}

// ToSlice converts the region into a writable bounded view of its declared
// span. Same contract as Region.ToSlice plus exclusive access.
func (r MutRegion[T]) ToSlice() []T {
	return r.base.Slice(r.length)
}
