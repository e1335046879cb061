package deriv

import (
	"fmt"

	"github.com/grailbio/bedalgebra/bedrec"
	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
	"github.com/grailbio/bedalgebra/sweep"
)

// taggedMergeIter collapses each tag's own overlapping runs
// independently, emitting a BED4 per closed run with Name set to the
// tag's string form.
type taggedMergeIter[T region.Region, Tag comparable] struct {
	in     *sweep.TaggedIter[T, Tag]
	begins map[Tag]uint32
	chrom  chromset.ChromRef
	have   bool
}

// TaggedMerge is MergeOverlaps run independently per tag: two
// intervals with different tags never merge into the same run, even
// if they physically overlap. tagOf classifies each input record.
func TaggedMerge[T region.Region, Tag comparable](in sortedseq.Sorted[T], tagOf func(T) Tag) sortedseq.Sorted[bedrec.BED4] {
	comp := sweep.Components(in)
	tagged := sweep.TaggedComponents[T, Tag](comp, tagOf)
	return sortedseq.AssumeSorted[bedrec.BED4](&taggedMergeIter[T, Tag]{in: tagged, begins: make(map[Tag]uint32)})
}

func (t *taggedMergeIter[T, Tag]) Next() (bedrec.BED4, bool) {
	for {
		tp, ok := t.in.Next()
		if !ok {
			var zero bedrec.BED4
			return zero, false
		}
		chrom, pos := tp.Point.Position()
		if !t.have || !chrom.Equal(t.chrom) {
			t.begins = make(map[Tag]uint32)
			t.chrom = chrom
			t.have = true
		}
		if tp.Point.IsOpen {
			if _, already := t.begins[tp.Tag]; !already {
				t.begins[tp.Tag] = pos
			}
			continue
		}
		if tp.Point.Depth > 0 {
			continue
		}
		begin, tracked := t.begins[tp.Tag]
		if !tracked {
			continue
		}
		delete(t.begins, tp.Tag)
		return bedrec.NewBED4(chrom, begin, pos, fmt.Sprintf("%v", tp.Tag)), true
	}
}
