package intersect_test

import (
	"fmt"
	"testing"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/intersect"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
	"github.com/stretchr/testify/assert"
)

func bed3s(h chromset.Handle, chrom string, ranges ...[2]uint32) []region.BED3 {
	c := h.QueryOrInsert(chrom)
	out := make([]region.BED3, len(ranges))
	for i, r := range ranges {
		out[i] = region.NewBED3(c, r[0], r[1])
	}
	return out
}

func pairStrings(pairs []region.Pair[region.BED3, region.BED3]) []string {
	var out []string
	for _, p := range pairs {
		out = append(out, fmt.Sprintf("%s:%d-%d/%s:%d-%d",
			p.A().Chrom().Name(), p.A().Begin(), p.A().End(),
			p.B().Chrom().Name(), p.B().Begin(), p.B().End()))
	}
	return out
}

func TestSortedIntersectBasicOverlap(t *testing.T) {
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 10}, [2]uint32{20, 30}))
	b := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{5, 25}))

	pairs := sortedseq.ToSlice[region.Pair[region.BED3, region.BED3]](intersect.SortedIntersect(a, b))
	assert.ElementsMatch(t, []string{
		"chr1:0-10/chr1:5-25",
		"chr1:20-30/chr1:5-25",
	}, pairStrings(pairs))
}

func TestSortedIntersectSkipsChromOnlyOnOneSide(t *testing.T) {
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 10}))
	b := sortedseq.SortedFromSlice(bed3s(h, "chr2", [2]uint32{0, 10}))

	pairs := sortedseq.ToSlice[region.Pair[region.BED3, region.BED3]](intersect.SortedIntersect(a, b))
	assert.Empty(t, pairs)
}

func TestSortedIntersectLongActiveAgainstLaterFrontier(t *testing.T) {
	// A single long A interval must still match multiple, later B
	// frontier batches, exercising the pre-existing-active-set path.
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 100}))
	b := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{5, 10}, [2]uint32{50, 60}))

	pairs := sortedseq.ToSlice[region.Pair[region.BED3, region.BED3]](intersect.SortedIntersect(a, b))
	assert.ElementsMatch(t, []string{
		"chr1:0-100/chr1:5-10",
		"chr1:0-100/chr1:50-60",
	}, pairStrings(pairs))
}

func TestSortedIntersectIngestedAgainstPreexistingActive(t *testing.T) {
	// B has a record that lags behind A's frontier (begin <= new A
	// frontier begin) and must still be paired against an A record
	// that opened earlier and is still active.
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 50}, [2]uint32{10, 20}))
	b := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{10, 45}))

	pairs := sortedseq.ToSlice[region.Pair[region.BED3, region.BED3]](intersect.SortedIntersect(a, b))
	assert.ElementsMatch(t, []string{
		"chr1:0-50/chr1:10-45",
		"chr1:10-20/chr1:10-45",
	}, pairStrings(pairs))
}

func TestSortedLeftOuterIntersectEmitsUnmatched(t *testing.T) {
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 10}, [2]uint32{20, 30}))
	b := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{5, 8}))

	pairs := sortedseq.ToSlice[intersect.LeftPair[region.BED3, region.BED3]](intersect.SortedLeftOuterIntersect(a, b))
	assert.Len(t, pairs, 2)
	assert.True(t, pairs[0].Matched())
	assert.False(t, pairs[1].Matched())
	_, ok := pairs[1].B()
	assert.False(t, ok)
}
