// Package intersect implements the two-sided sorted-intersect engine:
// given two independently sorted Region streams, it produces every
// overlapping pair between them, each as a region.Pair product,
// without ever materializing either input in full.
package intersect

import (
	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/pipeline"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
)

// SortedIntersectIter drives the two-sided sweep: one side's frontier
// (the batch of records sharing the smallest remaining begin) is
// paired against the other side's active set on every phase, then
// flushed into its own active set for future phases to pair against.
type SortedIntersectIter[A, B region.Region] struct {
	ctxA      *context[A]
	ctxB      *context[B]
	chrom     chromset.ChromRef
	haveChrom bool
	pending   []region.Pair[A, B]
}

// SortedIntersect produces every overlapping pair between a and b, in
// (chromosome, position) order. Chromosomes present in only one input
// are skipped entirely; neither input is required to share the same
// concrete Region type as the other.
func SortedIntersect[A, B region.Region](a sortedseq.Sorted[A], b sortedseq.Sorted[B]) sortedseq.Sorted[region.Pair[A, B]] {
	it := &SortedIntersectIter[A, B]{
		ctxA: newContext(a),
		ctxB: newContext(b),
	}
	return sortedseq.AssumeSorted[region.Pair[A, B]](it)
}

// Next returns the next overlapping pair, or false once both inputs
// are exhausted and every pending pair has been emitted.
func (it *SortedIntersectIter[A, B]) Next() (region.Pair[A, B], bool) {
	for len(it.pending) == 0 {
		if !it.advance() {
			var zero region.Pair[A, B]
			return zero, false
		}
	}
	p := it.pending[0]
	it.pending = it.pending[1:]
	return p, true
}

// advance runs one phase of the sweep: it pushes whichever side has
// the smaller pending begin as the new frontier, ingests any
// lagging-but-already-passed records from the other side directly
// into that side's active set, and emits every pair this phase
// newly makes visible:
//
//   - each new frontier record against the opposite side's active set
//     (which, after ingestion, includes both its pre-existing entries
//     and anything just ingested)
//   - each newly ingested record against the advancing side's active
//     set as it stood before this phase's frontier was flushed in,
//     since that is the only phase in which those records are ever
//     compared against active entries older than the current frontier
//
// It reports false once both inputs are exhausted.
func (it *SortedIntersectIter[A, B]) advance() bool {
	if !it.alignChroms() {
		return false
	}

	var chrom chromset.ChromRef
	switch {
	case it.ctxA.hasPeek:
		chrom = it.ctxA.peek.Chrom()
	case it.ctxB.hasPeek:
		chrom = it.ctxB.peek.Chrom()
	default:
		return false
	}
	if !it.haveChrom || !it.chrom.Equal(chrom) {
		it.chrom = chrom
		it.haveChrom = true
		it.ctxA.active.Clear()
		it.ctxB.active.Clear()
		pipeline.TracePhase("intersect.sorted", chrom.Name(), 0)
	}

	useA := true
	switch {
	case it.ctxA.hasPeek && it.ctxB.hasPeek:
		useA = it.ctxA.peek.Begin() <= it.ctxB.peek.Begin()
	case it.ctxA.hasPeek:
		useA = true
	case it.ctxB.hasPeek:
		useA = false
	default:
		return false
	}

	if useA {
		begin, ok := it.ctxA.pushFrontier()
		if !ok {
			return false
		}
		chrom := it.ctxA.frontier[0].Chrom()
		ingested := it.ctxB.ingestActive(chrom, begin)

		for _, a := range it.ctxA.frontier {
			for _, b := range it.ctxB.active.Slice() {
				it.pending = append(it.pending, region.NewPair(a, b))
			}
		}
		for _, b := range ingested {
			for _, a := range it.ctxA.active.Slice() {
				it.pending = append(it.pending, region.NewPair(a, b))
			}
		}
		it.ctxA.flushFrontier()
	} else {
		begin, ok := it.ctxB.pushFrontier()
		if !ok {
			return false
		}
		chrom := it.ctxB.frontier[0].Chrom()
		ingested := it.ctxA.ingestActive(chrom, begin)

		for _, b := range it.ctxB.frontier {
			for _, a := range it.ctxA.active.Slice() {
				it.pending = append(it.pending, region.NewPair(a, b))
			}
		}
		for _, a := range ingested {
			for _, b := range it.ctxB.active.Slice() {
				it.pending = append(it.pending, region.NewPair(a, b))
			}
		}
		it.ctxB.flushFrontier()
	}
	return true
}

// alignChroms skips either side's peek past a chromosome the other
// side has no data for. Stale active-set state is reconciled
// separately, in advance, whenever the chromosome being processed
// changes. It reports whether either side still has data once
// alignment is done; once both are exhausted, no further pairs remain.
func (it *SortedIntersectIter[A, B]) alignChroms() bool {
	for {
		if !it.ctxA.hasPeek && !it.ctxB.hasPeek {
			return false
		}
		if !it.ctxA.hasPeek || !it.ctxB.hasPeek {
			return true
		}
		cmp := it.ctxA.peek.Chrom().Compare(it.ctxB.peek.Chrom())
		switch {
		case cmp < 0:
			it.ctxA.skipUntilChrom(it.ctxB.peek.Chrom())
		case cmp > 0:
			it.ctxB.skipUntilChrom(it.ctxA.peek.Chrom())
		default:
			return true
		}
	}
}
