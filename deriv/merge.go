// Package deriv implements the derived operations built on top of the
// sweep and intersect engines: merge_overlaps, tagged merge, coverage,
// invert, subtract, project and the as-BED3 projection.
package deriv

import (
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
	"github.com/grailbio/bedalgebra/sweep"
)

// mergeIter collapses a Components stream into maximal runs of
// mutually overlapping input records. Merely touching (book-ended)
// records, e.g. [0,10) and [10,20), do not merge: the sweep's
// close-before-open tie-break at equal coordinates always drains a run
// to depth 0 before the next record's open event is seen, so the two
// stay separate runs.
type mergeIter[T region.Region] struct {
	comp *sweep.ComponentsIter[T]
}

// MergeOverlaps collapses overlapping input records into the minimal
// set of disjoint intervals that cover the same bases; intervals that
// only touch end-to-end are kept separate (see mergeIter). The first
// event of depth 0->1 starts a run; the run extends through every
// event while depth stays above 0; the close event that brings depth
// back to 0 ends it.
func MergeOverlaps[T region.Region](in sortedseq.Sorted[T]) sortedseq.Sorted[region.BED3] {
	comp := sweep.Components(in)
	return sortedseq.AssumeSorted[region.BED3](&mergeIter[T]{comp: comp})
}

func (m *mergeIter[T]) Next() (region.BED3, bool) {
	p, ok := m.comp.Next()
	if !ok {
		var zero region.BED3
		return zero, false
	}
	chrom, begin := p.Position()
	var end uint32
	for {
		if !p.IsOpen && p.Depth == 0 {
			_, end = p.Position()
			break
		}
		next, ok := m.comp.Next()
		if !ok {
			_, end = p.Position()
			break
		}
		p = next
	}
	return region.NewBED3(chrom, begin, end), true
}
