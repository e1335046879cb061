package deriv

import (
	"math"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
	"github.com/grailbio/bedalgebra/sweep"
)

// invertIter walks the Components stream one chromosome at a time,
// emitting the gaps between covered runs (and the leading/trailing
// gaps at each chromosome's edges, up to math.MaxUint32).
type invertIter[T region.Region] struct {
	comp      *sweep.ComponentsIter[T]
	peek      sweep.Point[T]
	hasPeek   bool
	lastChrom chromset.ChromRef
	haveChrom bool
}

// Invert computes the complement of in, per chromosome, treating each
// chromosome as spanning [0, math.MaxUint32). A chromosome with no
// input records at all never appears in the output, since invert only
// knows about chromosomes it has actually seen in the input stream.
func Invert[T region.Region](in sortedseq.Sorted[T]) sortedseq.Sorted[region.BED3] {
	comp := sweep.Components(in)
	it := &invertIter[T]{comp: comp}
	it.peek, it.hasPeek = comp.Next()
	return sortedseq.AssumeSorted[region.BED3](it)
}

func (it *invertIter[T]) Next() (region.BED3, bool) {
	if !it.hasPeek {
		var zero region.BED3
		return zero, false
	}

	freshChrom := !it.haveChrom || !it.lastChrom.Equal(it.peek.Value.Chrom())
	if freshChrom {
		it.lastChrom = it.peek.Value.Chrom()
		it.haveChrom = true
		if it.peek.Value.Begin() > 0 {
			return region.NewBED3(it.lastChrom, 0, it.peek.Value.Begin()), true
		}
	}

	var begin uint32
	foundBegin := false
	for it.hasPeek {
		p := it.peek
		it.peek, it.hasPeek = it.comp.Next()
		if !p.IsOpen && p.Depth == 0 {
			_, begin = p.Position()
			foundBegin = true
			break
		}
	}
	if !foundBegin {
		var zero region.BED3
		return zero, false
	}

	if it.hasPeek {
		var end uint32
		if it.peek.Value.Chrom().Equal(it.lastChrom) {
			end = it.peek.Value.Begin()
		} else {
			end = math.MaxUint32
		}
		if end > begin {
			return region.NewBED3(it.lastChrom, begin, end), true
		}
		return it.Next()
	}
	return region.NewBED3(it.lastChrom, begin, math.MaxUint32), true
}
