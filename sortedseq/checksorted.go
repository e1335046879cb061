package sortedseq

import (
	"fmt"

	"github.com/grailbio/bedalgebra/region"
)

// checkedIter wraps an Iterator and verifies, on every call, that
// consecutive values are non-decreasing by (chromosome, begin). It
// panics on the first violation it observes; this is a debugging aid,
// not a recoverable error path, since an unsorted input violates an
// assumption every downstream algorithm is entitled to make.
type checkedIter[T region.Region] struct {
	src     Iterator[T]
	havePrev bool
	prev    T
}

func (c *checkedIter[T]) Next() (T, bool) {
	v, ok := c.src.Next()
	if !ok {
		var zero T
		return zero, false
	}
	if c.havePrev {
		cmp := c.prev.Chrom().Compare(v.Chrom())
		if cmp > 0 || (cmp == 0 && v.Begin() < c.prev.Begin()) {
			panic(fmt.Sprintf("sortedseq: input not sorted: %s:%d follows %s:%d",
				v.Chrom().Name(), v.Begin(), c.prev.Chrom().Name(), c.prev.Begin()))
		}
	}
	c.prev = v
	c.havePrev = true
	return v, true
}

// CheckSorted wraps it with a runtime assertion that it is sorted by
// (chromosome, begin), and returns the result already marked Sorted.
// Use this in tests or at pipeline boundaries reading external input;
// it is not meant to run on every production record, since it buys
// correctness by paying an extra comparison per element.
func CheckSorted[T region.Region](it Iterator[T]) Sorted[T] {
	return AssumeSorted[T](&checkedIter[T]{src: it})
}
