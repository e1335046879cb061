package intersect

import (
	"container/heap"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
)

// LeftPair is the output of SortedLeftOuterIntersect: either a real
// overlap between an A and a B record, or an A record that matched
// nothing on the right, carried with Matched false and a zero B.
type LeftPair[A, B region.Region] struct {
	a       A
	b       B
	matched bool
}

// A returns the left-hand record, present whether or not this pair matched.
func (p LeftPair[A, B]) A() A { return p.a }

// B returns the right-hand record and whether it is meaningful.
func (p LeftPair[A, B]) B() (B, bool) { return p.b, p.matched }

// Matched reports whether this pair represents a real overlap (true)
// or an unmatched left record (false).
func (p LeftPair[A, B]) Matched() bool { return p.matched }

// Chrom implements Region.
func (p LeftPair[A, B]) Chrom() chromset.ChromRef { return p.a.Chrom() }

// Begin implements Region: the overlap's start when matched, or the
// unmatched left record's own start.
func (p LeftPair[A, B]) Begin() uint32 {
	if !p.matched {
		return p.a.Begin()
	}
	if p.a.Begin() > p.b.Begin() {
		return p.a.Begin()
	}
	return p.b.Begin()
}

// End implements Region: the overlap's end when matched, or the
// unmatched left record's own end.
func (p LeftPair[A, B]) End() uint32 {
	if !p.matched {
		return p.a.End()
	}
	if p.a.End() < p.b.End() {
		return p.a.End()
	}
	return p.b.End()
}

// leftOuterIter walks A in order, maintaining B's active set (a
// min-heap keyed by end) as a single forward sweep: for each A record
// it reports every overlapping B record, or one unmatched pair if
// none overlap.
type leftOuterIter[A, B region.Region] struct {
	aIn sortedseq.Sorted[A]

	bIn      sortedseq.Sorted[B]
	peekB    B
	hasPeekB bool
	active   regionHeap[B]

	chrom     chromset.ChromRef
	haveChrom bool

	pending []LeftPair[A, B]
}

// SortedLeftOuterIntersect is like SortedIntersect, except every A
// record that overlaps nothing in b is still emitted once, paired
// with Matched() == false. Unmatched B records are never emitted.
func SortedLeftOuterIntersect[A, B region.Region](a sortedseq.Sorted[A], b sortedseq.Sorted[B]) sortedseq.Sorted[LeftPair[A, B]] {
	it := &leftOuterIter[A, B]{aIn: a, bIn: b}
	it.peekB, it.hasPeekB = b.Next()
	return sortedseq.AssumeSorted[LeftPair[A, B]](it)
}

// Next returns the next left-outer pair.
func (it *leftOuterIter[A, B]) Next() (LeftPair[A, B], bool) {
	for len(it.pending) == 0 {
		a, ok := it.aIn.Next()
		if !ok {
			var zero LeftPair[A, B]
			return zero, false
		}

		if !it.haveChrom || !a.Chrom().Equal(it.chrom) {
			it.chrom = a.Chrom()
			it.haveChrom = true
			it.active.Clear()
		}

		// Ingest every B record on this chromosome that starts before a
		// ends; drop B records on earlier chromosomes outright (A has
		// moved past them for good), and stop once B runs ahead of A.
		for it.hasPeekB {
			cmp := it.peekB.Chrom().Compare(it.chrom)
			if cmp < 0 {
				it.peekB, it.hasPeekB = it.bIn.Next()
				continue
			}
			if cmp > 0 {
				break
			}
			if it.peekB.Begin() >= a.End() {
				break
			}
			heap.Push(&it.active, it.peekB)
			it.peekB, it.hasPeekB = it.bIn.Next()
		}

		for {
			top, ok := it.active.Peek()
			if !ok {
				break
			}
			if top.Chrom().Compare(it.chrom) != 0 || top.End() <= a.Begin() {
				heap.Pop(&it.active)
				continue
			}
			break
		}

		matched := false
		for _, b := range it.active.Slice() {
			if region.Overlaps(a, b) {
				it.pending = append(it.pending, LeftPair[A, B]{a: a, b: b, matched: true})
				matched = true
			}
		}
		if !matched {
			var zeroB B
			it.pending = append(it.pending, LeftPair[A, B]{a: a, b: zeroB, matched: false})
		}
	}
	p := it.pending[0]
	it.pending = it.pending[1:]
	return p, true
}

