package intersect

import (
	"container/heap"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
)

// context tracks one side of the two-sided sweep: the input stream
// with one item peeked ahead, the current frontier batch (all
// not-yet-placed records sharing the smallest remaining begin), and
// the active set of records whose end hasn't yet been passed.
type context[T region.Region] struct {
	iter     sortedseq.Sorted[T]
	peek     T
	hasPeek  bool
	frontier []T
	active   regionHeap[T]
}

func newContext[T region.Region](it sortedseq.Sorted[T]) *context[T] {
	c := &context[T]{iter: it}
	c.peek, c.hasPeek = it.Next()
	return c
}

// skipUntilChrom discards peeked records whose chromosome sorts
// before target: they belong to a chromosome the other side has
// already moved past, so they can never be paired with anything.
func (c *context[T]) skipUntilChrom(target chromset.ChromRef) {
	for c.hasPeek && c.peek.Chrom().Compare(target) < 0 {
		c.peek, c.hasPeek = c.iter.Next()
	}
}

// removeInactive evicts active-set entries that can no longer overlap
// anything at or after limit on chrom: either they belong to an
// earlier chromosome, or their end has already been passed.
func (c *context[T]) removeInactive(chrom chromset.ChromRef, limit uint32) {
	for {
		top, ok := c.active.Peek()
		if !ok {
			break
		}
		if top.Chrom().Compare(chrom) < 0 || top.End() <= limit {
			heap.Pop(&c.active)
			continue
		}
		break
	}
}

// pushFrontier gathers every peeked record sharing the smallest
// remaining (chromosome, begin) into c.frontier, advancing the
// underlying iterator past them, and evicts now-stale active-set
// entries relative to the new frontier position. It reports the
// frontier's begin coordinate, or false if the input is exhausted.
func (c *context[T]) pushFrontier() (uint32, bool) {
	if !c.hasPeek {
		return 0, false
	}
	begin := c.peek.Begin()
	chrom := c.peek.Chrom()
	for c.hasPeek && c.peek.Begin() == begin && c.peek.Chrom().Equal(chrom) {
		c.frontier = append(c.frontier, c.peek)
		c.peek, c.hasPeek = c.iter.Next()
	}
	c.removeInactive(chrom, begin)
	return begin, true
}

// flushFrontier moves every record gathered in c.frontier into the
// active set, then clears the frontier buffer.
func (c *context[T]) flushFrontier() {
	for _, item := range c.frontier {
		heap.Push(&c.active, item)
	}
	c.frontier = c.frontier[:0]
}

// ingestActive pulls every peeked record on chrom whose begin is at or
// before limit directly into the active set (bypassing the frontier,
// since these records are being folded into an already-placed batch
// on the opposite side), then evicts anything that's already stale.
// It returns the records it pulled in, so the caller can pair them
// against the opposite side's pre-existing active set, which is the
// only chance those records get to meet active records that predate
// the current frontier batch.
func (c *context[T]) ingestActive(chrom chromset.ChromRef, limit uint32) []T {
	var ingested []T
	for c.hasPeek && c.peek.Chrom().Equal(chrom) && c.peek.Begin() <= limit {
		heap.Push(&c.active, c.peek)
		ingested = append(ingested, c.peek)
		c.peek, c.hasPeek = c.iter.Next()
	}
	c.removeInactive(chrom, limit)
	return ingested
}
