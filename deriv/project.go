package deriv

import (
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
)

// projectIter drops every intersection product whose arity is too
// small to have an i'th original, then projects what remains down to
// that original's bare BED3 bounds.
type projectIter[T region.Intersection] struct {
	src sortedseq.Sorted[T]
	i   int
}

// Project extracts the i'th original record from every intersection
// product in in, dropping products whose arity is <= i.
func Project[T region.Intersection](in sortedseq.Sorted[T], i int) sortedseq.Sorted[region.BED3] {
	return sortedseq.AssumeSorted[region.BED3](&projectIter[T]{src: in, i: i})
}

func (p *projectIter[T]) Next() (region.BED3, bool) {
	for {
		v, ok := p.src.Next()
		if !ok {
			var zero region.BED3
			return zero, false
		}
		orig, ok := v.Original(p.i)
		if !ok {
			continue
		}
		return region.ToBED3(orig), true
	}
}

// AsBED3 projects any Region stream down to its bare chromosome/begin/end.
func AsBED3[T region.Region](in sortedseq.Sorted[T]) sortedseq.Sorted[region.BED3] {
	return sortedseq.Map(in, func(t T) region.BED3 { return region.ToBED3(t) })
}
