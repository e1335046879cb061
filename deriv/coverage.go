package deriv

import (
	"github.com/grailbio/bedalgebra/bedrec"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
	"github.com/grailbio/bedalgebra/sweep"
)

// coverageIter walks consecutive Components events on the same
// chromosome, emitting the depth that held between them.
type coverageIter[T region.Region] struct {
	comp    *sweep.ComponentsIter[T]
	last    sweep.Point[T]
	hasLast bool
}

// Coverage reports, for every segment between two consecutive sweep
// events on the same chromosome, how many input records covered it.
// Events sharing a coordinate yield a zero-length segment, gaps yield
// a depth-0 segment, and neighbouring segments of equal depth are not
// merged. Segments that straddle a chromosome boundary are not emitted.
// Depth is carried in the Score field of the returned BED5.
func Coverage[T region.Region](in sortedseq.Sorted[T]) sortedseq.Sorted[bedrec.BED5] {
	comp := sweep.Components(in)
	c := &coverageIter[T]{comp: comp}
	c.last, c.hasLast = comp.Next()
	return sortedseq.AssumeSorted[bedrec.BED5](c)
}

func (c *coverageIter[T]) Next() (bedrec.BED5, bool) {
	for {
		if !c.hasLast {
			var zero bedrec.BED5
			return zero, false
		}
		last := c.last
		next, ok := c.comp.Next()
		c.last = next
		c.hasLast = ok
		if !ok {
			var zero bedrec.BED5
			return zero, false
		}
		lastChrom, lastPos := last.Position()
		nextChrom, nextPos := next.Position()
		if !lastChrom.Equal(nextChrom) {
			continue
		}
		return bedrec.NewBED5(lastChrom, lastPos, nextPos, "", float64(last.Depth)), true
	}
}
