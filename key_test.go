package textdb_test

import (
	"math"
	"strconv"

	"github.com/bsm/textdb"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Key", func() {
	It("should compare text", func() {
		Expect(textdb.Text("A").Compare(textdb.Text("B"))).To(Equal(-1))
		Expect(textdb.Text("B").Compare(textdb.Text("A"))).To(Equal(1))
		Expect(textdb.Text("AB").Compare(textdb.Text("AB"))).To(Equal(0))
		Expect(textdb.Text("10").Compare(textdb.Text("9"))).To(Equal(-1))
		Expect(textdb.Text("").Compare(textdb.Text("A"))).To(Equal(-1))
	})

	It("should compare numbers", func() {
		Expect(textdb.Int(-1).Compare(textdb.Int(1))).To(Equal(-1))
		Expect(textdb.Int(10).Compare(textdb.Int(9))).To(Equal(1))
		Expect(textdb.Uint(3).Compare(textdb.Uint(3))).To(Equal(0))
		Expect(textdb.Float(0.5).Compare(textdb.Float(0.25))).To(Equal(1))
	})

	It("should compare across numeric types", func() {
		Expect(textdb.Int(-1).Compare(textdb.Uint(0))).To(Equal(-1))
		Expect(textdb.Uint(0).Compare(textdb.Int(-1))).To(Equal(1))
		Expect(textdb.Int(5).Compare(textdb.Uint(5))).To(Equal(0))
		Expect(textdb.Int(math.MaxInt64).Compare(textdb.Uint(math.MaxUint64))).To(Equal(-1))
		Expect(textdb.Uint(math.MaxUint64).Compare(textdb.Int(math.MaxInt64))).To(Equal(1))
		Expect(textdb.Float(1.5).Compare(textdb.Int(1))).To(Equal(1))
		Expect(textdb.Int(2).Compare(textdb.Float(1.5))).To(Equal(1))
		Expect(textdb.Uint(1).Compare(textdb.Float(1.5))).To(Equal(-1))
	})

	It("should panic on incomparable keys", func() {
		Expect(func() { textdb.Text("1").Compare(textdb.Int(1)) }).To(Panic())
		Expect(func() { textdb.Int(1).Compare(textdb.Text("1")) }).To(Panic())
		Expect(func() { textdb.Uint(1).Compare(textdb.Text("1")) }).To(Panic())
		Expect(func() { textdb.Float(1).Compare(textdb.Text("1")) }).To(Panic())
	})
})

var _ = Describe("KeyType", func() {
	It("should parse keys", func() {
		Expect(textdb.TextKey.Parse([]byte("abc"))).To(Equal(textdb.Text("abc")))
		Expect(textdb.IntKey.Parse([]byte("-42"))).To(Equal(textdb.Int(-42)))
		Expect(textdb.UintKey.Parse([]byte("0100"))).To(Equal(textdb.Uint(100)))
		Expect(textdb.FloatKey.Parse([]byte("1e3"))).To(Equal(textdb.Float(1000)))
	})

	It("should reject malformed keys", func() {
		_, err := textdb.IntKey.Parse([]byte("abc"))
		Expect(err).To(MatchError(strconv.ErrSyntax))
		_, err = textdb.UintKey.Parse([]byte("-1"))
		Expect(err).To(MatchError(strconv.ErrSyntax))
		_, err = textdb.UintKey.Parse([]byte(""))
		Expect(err).To(MatchError(strconv.ErrSyntax))
		_, err = textdb.IntKey.Parse([]byte("99999999999999999999"))
		Expect(err).To(MatchError(strconv.ErrRange))
		_, err = textdb.FloatKey.Parse([]byte("NaN"))
		Expect(err).To(MatchError("NaN is not ordered"))
		_, err = textdb.KeyType(99).Parse([]byte("1"))
		Expect(err).To(HaveOccurred())
	})

	It("should convert to/from strings", func() {
		for _, t := range []textdb.KeyType{textdb.TextKey, textdb.IntKey, textdb.UintKey, textdb.FloatKey} {
			Expect(textdb.ParseKeyType(t.String())).To(Equal(t))
		}
		Expect(textdb.KeyType(99).String()).To(Equal("KeyType(99)"))

		_, err := textdb.ParseKeyType("string")
		Expect(err).To(MatchError(`textdb: unknown key type "string"`))
	})
})
