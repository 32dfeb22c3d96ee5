package rawmem

import "unsafe"

// Conversion between language-native slices and region descriptors. These are
// zero-copy reinterpretations of an existing valid span and the only
// sanctioned way to construct a region that starts out known-valid.

// RegionOf aliases s as a read-only region over the same memory. No copy.
func RegionOf[T any](s []T) Region[T] {
	return Region[T]{
		base:   Ptr[T]{unsafe.Pointer(unsafe.SliceData(s))},
		length: len(s),
	}
}

// MutRegionOf aliases s as a mutable region over the same memory. No copy.
// Writes through the region are visible in s and vice versa.
func MutRegionOf[T any](s []T) MutRegion[T] {
	return MutRegion[T]{
		base:   MutPtr[T]{unsafe.Pointer(unsafe.SliceData(s))},
		length: len(s),
	}
}

// PtrTo returns the read-only address of v.
func PtrTo[T any](v *T) Ptr[T] {
	return Ptr[T]{unsafe.Pointer(v)}
}

// MutPtrTo returns the mutable address of v.
func MutPtrTo[T any](v *T) MutPtr[T] {
	return MutPtr[T]{unsafe.Pointer(v)}
}
