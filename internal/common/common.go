package common

import "unsafe"

// Fill sets the n bytes starting at p to b.
func Fill(p unsafe.Pointer, b byte, n int) {
	bs := unsafe.Slice((*byte)(p), n)
	for i := range bs {
		bs[i] = b
	}
}

// Overlaps reports whether the n-byte spans starting at a and b share any
// byte. Zero-length spans never overlap.
func Overlaps(a, b unsafe.Pointer, n uintptr) bool {
	if n == 0 {
		return false
	}
	x, y := uintptr(a), uintptr(b)
	if x < y {
		return y-x < n
	}
	return x-y < n
}
