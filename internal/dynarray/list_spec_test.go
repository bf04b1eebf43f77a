package dynarray_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynarray/internal/dynarray"
)

var _ = Describe("List", func() {
	var list *dynarray.List[string]

	BeforeEach(func() {
		list = dynarray.Of("a", "b", "c")
	})

	Describe("construction", func() {
		It("rejects a negative capacity", func() {
			_, err := dynarray.WithCapacity[string](-1)
			Expect(err).To(MatchError(dynarray.ErrInvalidArgument))
		})

		It("rejects an absent source", func() {
			_, err := dynarray.From[string](nil)
			Expect(err).To(MatchError(dynarray.ErrNullArgument))
		})

		It("copies a source collection exactly", func() {
			copied, err := dynarray.From[string](list)
			Expect(err).NotTo(HaveOccurred())
			Expect(copied.Size()).To(Equal(3))
			Expect(copied.Cap()).To(Equal(3))
			Expect(copied.Generation()).To(BeZero())
		})
	})

	Describe("positional access", func() {
		It("fails on both sides of the live range", func() {
			_, err := list.Get(-1)
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))
			_, err = list.Get(list.Size())
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))
		})

		DescribeTable("set then get returns the new value",
			func(index int, value string) {
				_, err := list.Set(index, value)
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Get(index)).To(Equal(value))
				Expect(list.Size()).To(Equal(3))
				Expect(list.Generation()).To(BeZero())
			},
			Entry("first", 0, "x"),
			Entry("middle", 1, "y"),
			Entry("last", 2, "z"),
		)
	})

	Describe("capacity", func() {
		It("never shrinks without TrimToSize", func() {
			l := dynarray.New[int]()
			last := l.Cap()
			for i := 0; i < 200; i++ {
				l.Add(i)
				Expect(l.Cap()).To(BeNumerically(">=", last))
				last = l.Cap()
			}
			for !l.IsEmpty() {
				_, err := l.RemoveAt(0)
				Expect(err).NotTo(HaveOccurred())
				Expect(l.Cap()).To(Equal(last))
			}
			l.TrimToSize()
			Expect(l.Cap()).To(BeZero())
		})
	})

	Describe("bulk operations", func() {
		It("grows size by the collection size", func() {
			ok, err := list.InsertAll(1, dynarray.Slice[string]{"p", "q"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(list.ToArray()).To(Equal([]string{"a", "p", "q", "b", "c"}))
		})

		It("never grows on RemoveAll or RetainAll", func() {
			_, err := list.RemoveAll(dynarray.Slice[string]{"zz"})
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Size()).To(BeNumerically("<=", 3))
			_, err = list.RetainAll(dynarray.Slice[string]{"a", "c"})
			Expect(err).NotTo(HaveOccurred())
			Expect(list.ToArray()).To(ConsistOf("a", "c"))
		})
	})

	Describe("iteration", func() {
		It("fails fast after an append through Insert", func() {
			it := list.Iterator()
			Expect(list.Insert(3, "d")).To(Succeed())
			_, err := it.Next()
			Expect(err).To(MatchError(dynarray.ErrConcurrentModification))
		})

		It("reports exhaustion on an empty list", func() {
			it := dynarray.New[string]().Iterator()
			Expect(it.HasNext()).To(BeFalse())
			_, err := it.Next()
			Expect(err).To(MatchError(dynarray.ErrNoElement))
		})
	})

	Describe("formatting", func() {
		It("renders braces", func() {
			Expect(dynarray.New[int]().String()).To(Equal("{ }"))
			Expect(dynarray.Of(1, 2, 3).String()).To(Equal("{1, 2, 3}"))
		})
	})
})
