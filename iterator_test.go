package textdb_test

import (
	"bytes"
	"errors"
	"io"

	"github.com/bsm/textdb"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Iterator", func() {
	var subject *textdb.Table

	BeforeEach(func() {
		subject = numericTable("1\ta", "2\tb", "2\tc", "3\td")
	})

	It("should iterate from beginning", func() {
		iter := subject.All()
		defer iter.Release()

		Expect(iter.More()).To(BeTrue())
		Expect(iter.Next()).To(BeTrue())
		Expect(iter.Offset()).To(Equal(int64(0)))
		Expect(iter.Record()).To(Equal([]byte("1\ta")))
		Expect(iter.Key()).To(Equal(textdb.Uint(1)))
		Expect(iter.Value()).To(Equal([]byte("a")))

		Expect(iter.Next()).To(BeTrue())
		Expect(iter.Offset()).To(Equal(int64(4)))
		Expect(iter.Column(1)).To(Equal([]byte("b")))

		Expect(iter.Next()).To(BeTrue())
		Expect(iter.Next()).To(BeTrue())
		Expect(iter.Offset()).To(Equal(int64(12)))
		Expect(iter.Value()).To(Equal([]byte("d")))

		Expect(iter.More()).To(BeFalse())
		Expect(iter.Next()).To(BeFalse())
		Expect(iter.Err()).NotTo(HaveOccurred())
	})

	It("should restart by reconstruction", func() {
		rng, err := subject.Search(textdb.Uint(2))
		Expect(err).NotTo(HaveOccurred())

		Expect(collect(subject.Iterate(rng))).To(Equal([]string{"2\tb", "2\tc"}))
		Expect(collect(subject.Iterate(rng))).To(Equal([]string{"2\tb", "2\tc"}))
	})

	It("should clamp ranges", func() {
		Expect(collect(subject.Iterate(textdb.Range{Lower: -5, Upper: 100}))).To(HaveLen(4))
		Expect(collect(subject.Iterate(textdb.Range{Lower: 8, Upper: 4}))).To(BeEmpty())
	})

	It("should release", func() {
		iter := subject.All()
		Expect(iter.Next()).To(BeTrue())
		iter.Release()

		Expect(iter.More()).To(BeFalse())
		Expect(iter.Next()).To(BeFalse())
		Expect(iter.Record()).To(BeNil())
		Expect(iter.Err()).To(MatchError("textdb: iterator was released"))
	})

	Describe("source errors", func() {
		errBoom := errors.New("boom")

		var failing *textdb.Table

		BeforeEach(func() {
			data := []byte("1\n2\n3\n4")
			src := textdb.NewReaderAt(&failingReader{r: bytes.NewReader(data), failAt: 4, err: errBoom}, int64(len(data)))
			failing = textdb.New(src, textdb.NewAccessor(textdb.UintKey, 0), &textdb.Options{ScanSize: 1})
		})

		It("should propagate to iterators", func() {
			iter := failing.All()
			defer iter.Release()

			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Next()).To(BeFalse())
			Expect(iter.Err()).To(MatchError(errBoom))
			Expect(iter.Err()).To(MatchError(ContainSubstring("textdb: read [4,")))
		})

		It("should propagate to searches", func() {
			_, err := failing.Search(textdb.Uint(3))
			Expect(err).To(MatchError(errBoom))

			_, err = failing.IsSorted()
			Expect(err).To(MatchError(errBoom))
		})
	})
})

// failingReader fails all reads that touch offsets >= failAt.
type failingReader struct {
	r      io.ReaderAt
	failAt int64
	err    error
}

func (f *failingReader) ReadAt(p []byte, off int64) (int, error) {
	if off+int64(len(p)) > f.failAt {
		return 0, f.err
	}
	return f.r.ReadAt(p, off)
}
