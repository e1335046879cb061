package deriv

import (
	"math"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/intersect"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
)

// subtractShared is the state threaded between subtract's two adapter
// iterators (the A-side passthrough and the B-side inverted-gap
// feed). The A-side records every chromosome it discovers, in
// increasing order, one step ahead of what it returns; the B-side
// consults that same list to answer for chromosomes that invert(B)
// has no data for at all (meaning B never touched them, so all of A
// on that chromosome survives unsubtracted).
type subtractShared[A region.Region] struct {
	iterA     sortedseq.Sorted[A]
	peekA     A
	hasPeekA  bool
	invB      sortedseq.Sorted[region.BED3]
	peekInvB  region.BED3
	hasPeekInvB bool
	knownChrom []chromset.ChromRef
}

func (sh *subtractShared[A]) noteChrom(c chromset.ChromRef) {
	if len(sh.knownChrom) == 0 || sh.knownChrom[len(sh.knownChrom)-1].Compare(c) < 0 {
		sh.knownChrom = append(sh.knownChrom, c)
	}
}

type subtractIterA[A region.Region] struct {
	shared *subtractShared[A]
}

func (s *subtractIterA[A]) Next() (A, bool) {
	sh := s.shared
	if !sh.hasPeekA {
		var zero A
		return zero, false
	}
	ret := sh.peekA
	sh.peekA, sh.hasPeekA = sh.iterA.Next()
	if sh.hasPeekA {
		sh.noteChrom(sh.peekA.Chrom())
	}
	return ret, true
}

type subtractIterB[A region.Region] struct {
	shared  *subtractShared[A]
	lastIdx int
	hasLast bool
}

func (s *subtractIterB[A]) Next() (region.BED3, bool) {
	sh := s.shared
	idx := 0
	if s.hasLast {
		idx = s.lastIdx
	}
	if idx >= len(sh.knownChrom) {
		var zero region.BED3
		return zero, false
	}
	currentChrom := sh.knownChrom[idx]

	for sh.hasPeekInvB {
		cmp := sh.peekInvB.Chrom().Compare(currentChrom)
		if cmp < 0 {
			sh.peekInvB, sh.hasPeekInvB = sh.invB.Next()
			continue
		}
		if cmp == 0 {
			ret := sh.peekInvB
			sh.peekInvB, sh.hasPeekInvB = sh.invB.Next()
			s.lastIdx, s.hasLast = idx, true
			return ret, true
		}
		break
	}

	var advance bool
	if s.hasLast {
		advance = s.lastIdx < len(sh.knownChrom)-1
	} else {
		advance = len(sh.knownChrom) > 0
	}
	if !advance {
		var zero region.BED3
		return zero, false
	}
	next := 0
	if s.hasLast {
		next = s.lastIdx + 1
	}
	s.lastIdx = next
	s.hasLast = true
	for sh.hasPeekInvB && sh.peekInvB.Chrom().Compare(sh.knownChrom[next]) < 0 {
		sh.peekInvB, sh.hasPeekInvB = sh.invB.Next()
	}
	if sh.hasPeekInvB && sh.peekInvB.Chrom().Equal(sh.knownChrom[next]) {
		return s.Next()
	}
	return region.NewBED3(sh.knownChrom[next], 0, math.MaxUint32), true
}

// Subtract computes the portion of a not covered by b, restricted to
// the chromosomes a actually reaches: for a chromosome a has records
// on but b never mentions, all of a on that chromosome survives; for
// a chromosome both share, it is a intersected with invert(b).
func Subtract[A, B region.Region](a sortedseq.Sorted[A], b sortedseq.Sorted[B]) sortedseq.Sorted[region.BED3] {
	invB := Invert[B](b)

	sh := &subtractShared[A]{iterA: a, invB: invB}
	sh.peekA, sh.hasPeekA = a.Next()
	if sh.hasPeekA {
		sh.noteChrom(sh.peekA.Chrom())
	}
	sh.peekInvB, sh.hasPeekInvB = invB.Next()

	iterA := sortedseq.AssumeSorted[A](&subtractIterA[A]{shared: sh})
	iterB := sortedseq.AssumeSorted[region.BED3](&subtractIterB[A]{shared: sh})

	pairs := intersect.SortedIntersect[A, region.BED3](iterA, iterB)
	return sortedseq.Map(pairs, func(p region.Pair[A, region.BED3]) region.BED3 {
		return region.ToBED3(p)
	})
}
