package checked

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ptr", func() {
	var (
		data []int
		p    Ptr[int]
	)

	BeforeEach(func() {
		data = []int{1, 2, 3, 4}
		p = RegionOf(data).Ptr()
	})

	It("performs in-bounds arithmetic", func() {
		q, err := p.Add(2)
		Expect(err).ToNot(HaveOccurred())
		v, err := q.Read()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(3))

		q, err = q.Sub(1)
		Expect(err).ToNot(HaveOccurred())
		v, err = q.Read()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(2))
	})

	It("allows one-past-end arithmetic but not reading there", func() {
		q, err := p.Add(4)
		Expect(err).ToNot(HaveOccurred())
		_, err = q.Read()
		Expect(err).To(MatchError(ErrBoundsViolation))
	})

	It("rejects arithmetic past one-past-end", func() {
		_, err := p.Add(5)
		Expect(err).To(MatchError(ErrBoundsViolation))
	})

	It("rejects arithmetic before the object", func() {
		_, err := p.Sub(1)
		Expect(err).To(MatchError(ErrBoundsViolation))
	})

	It("bounds bulk copies to both extents", func() {
		dst := MutRegionOf(make([]int, 2)).MutPtr()
		Expect(p.Copy(dst, 2)).To(Succeed())
		Expect(p.Copy(dst, 3)).To(MatchError(ErrBoundsViolation))
		Expect(p.Copy(dst, 5)).To(MatchError(ErrBoundsViolation))
	})

	It("converts to bounded views within the extent", func() {
		view, err := p.Slice(4)
		Expect(err).ToNot(HaveOccurred())
		Expect(view).To(Equal(data))
		_, err = p.Slice(5)
		Expect(err).To(MatchError(ErrBoundsViolation))
	})
})

var _ = Describe("MutPtr", func() {
	var (
		data []int
		m    MutPtr[int]
	)

	BeforeEach(func() {
		data = []int{1, 2, 3, 4}
		m = MutRegionOf(data).MutPtr()
	})

	It("writes and reads back", func() {
		Expect(m.Write(9)).To(Succeed())
		v, err := m.Read()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(9))
	})

	It("rejects writes at one-past-end", func() {
		q, err := m.Add(4)
		Expect(err).ToNot(HaveOccurred())
		Expect(q.Write(9)).To(MatchError(ErrBoundsViolation))
	})

	It("replaces and returns the previous value", func() {
		old, err := m.Replace(9)
		Expect(err).ToNot(HaveOccurred())
		Expect(old).To(Equal(1))
		Expect(data[0]).To(Equal(9))
	})

	It("swaps two addresses", func() {
		other, err := m.Add(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Swap(other)).To(Succeed())
		Expect(data[0]).To(Equal(2))
		Expect(data[1]).To(Equal(1))
	})

	It("leaves memory unchanged on self-swap", func() {
		Expect(m.Swap(m)).To(Succeed())
		Expect(data[0]).To(Equal(1))
	})

	It("fills bytes within the extent only", func() {
		Expect(m.WriteBytes(0, 2)).To(Succeed())
		Expect(data).To(Equal([]int{0, 0, 3, 4}))
		Expect(m.WriteBytes(0, 5)).To(MatchError(ErrBoundsViolation))
	})
})

var _ = Describe("Region", func() {
	var (
		data []int
		r    MutRegion[int]
	)

	BeforeEach(func() {
		data = []int{1, 2, 3, 4}
		r = MutRegionOf(data)
	})

	It("reads within the extent", func() {
		v, err := r.Read(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(3))
	})

	It("rejects indexes at or past the extent", func() {
		_, err := r.Read(4)
		Expect(err).To(MatchError(ErrBoundsViolation))
		_, err = r.Read(-1)
		Expect(err).To(MatchError(ErrBoundsViolation))
	})

	It("keeps the declared length advisory", func() {
		// index past the declared length but inside the real extent
		sub, err := r.SliceTo(2)
		Expect(err).ToNot(HaveOccurred())
		v, err := sub.Read(3)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(4))
	})

	It("writes through checked indexes", func() {
		Expect(r.Write(1, 9)).To(Succeed())
		Expect(data[1]).To(Equal(9))
		Expect(r.Write(4, 9)).To(MatchError(ErrBoundsViolation))
	})

	It("slices with validated bounds", func() {
		sub, err := r.Slice(1, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(sub.Len()).To(Equal(2))
		Expect(sub.ToSlice()).To(Equal([]int{2, 3}))

		_, err = r.Slice(3, 1)
		Expect(err).To(MatchError(ErrBoundsViolation))
		_, err = r.Slice(0, 5)
		Expect(err).To(MatchError(ErrBoundsViolation))
	})

	It("matches Slice for SliceTo and SliceFrom", func() {
		a, err := r.SliceTo(2)
		Expect(err).ToNot(HaveOccurred())
		b, err := r.Slice(0, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(a.Raw()).To(Equal(b.Raw()))

		a, err = r.SliceFrom(1)
		Expect(err).ToNot(HaveOccurred())
		b, err = r.Slice(1, r.Len())
		Expect(err).ToNot(HaveOccurred())
		Expect(a.Raw()).To(Equal(b.Raw()))
	})

	It("tolerates overlap in Copy", func() {
		src, err := r.Const().SliceFrom(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(r.Copy(src)).To(Succeed())
		Expect(data).To(Equal([]int{2, 3, 4, 4}))
	})

	It("rejects overlap in CopyNonoverlapping", func() {
		src, err := r.Const().SliceFrom(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(r.CopyNonoverlapping(src)).To(MatchError(ErrOverlapViolation))
	})

	It("copies disjoint regions", func() {
		Expect(r.CopyNonoverlapping(RegionOf([]int{5, 6, 7, 8}))).To(Succeed())
		Expect(data).To(Equal([]int{5, 6, 7, 8}))
	})

	It("rejects copies larger than the destination extent", func() {
		Expect(r.Copy(RegionOf(make([]int, 5)))).To(MatchError(ErrBoundsViolation))
	})

	It("zeroes the declared span with WriteBytes", func() {
		sub, err := r.SliceTo(2)
		Expect(err).ToNot(HaveOccurred())
		sub.WriteBytes(0)
		Expect(data).To(Equal([]int{0, 0, 3, 4}))
	})

	It("round-trips through ToSlice", func() {
		Expect(r.ToSlice()).To(Equal(data))
		Expect(r.Const().ToSlice()).To(Equal(data))
	})

	It("agrees with the raw layer on valid inputs", func() {
		other := []int{1, 2, 3, 4}
		rm := MutRegionOf(other)

		// same mutation through each layer
		Expect(r.Write(2, 9)).To(Succeed())
		rm.Raw().Write(2, 9)
		Expect(other).To(Equal(data))

		v, err := r.Read(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(rm.Raw().Read(2)))
	})
})
