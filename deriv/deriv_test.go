package deriv_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/grailbio/bedalgebra/bedrec"
	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/deriv"
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

func bed3Strings(recs []region.BED3) []string {
	var out []string
	for _, r := range recs {
		out = append(out, fmt.Sprintf("%s:%d-%d", r.Chrom().Name(), r.Begin(), r.End()))
	}
	return out
}

func TestMergeOverlapsCollapsesOverlappingRuns(t *testing.T) {
	h := chromset.New().Handle()
	in := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 10}, [2]uint32{5, 15}, [2]uint32{20, 30}))
	merged := sortedseq.ToSlice[region.BED3](deriv.MergeOverlaps[region.BED3](in))
	assert.Equal(t, []string{"chr1:0-15", "chr1:20-30"}, bed3Strings(merged))
}

func TestMergeOverlapsKeepsBookEndedRunsSeparate(t *testing.T) {
	h := chromset.New().Handle()
	in := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 10}, [2]uint32{10, 20}))
	merged := sortedseq.ToSlice[region.BED3](deriv.MergeOverlaps[region.BED3](in))
	assert.Equal(t, []string{"chr1:0-10", "chr1:10-20"}, bed3Strings(merged))
}

func TestCoverageReportsDepthPerSegment(t *testing.T) {
	h := chromset.New().Handle()
	in := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 10}, [2]uint32{5, 15}))
	depths := sortedseq.ToSlice[bedrec.BED5](deriv.Coverage[region.BED3](in))

	var got []string
	for _, d := range depths {
		got = append(got, fmt.Sprintf("%d-%d@%d", d.Begin(), d.End(), int(d.Score)))
	}
	assert.Equal(t, []string{"0-5@1", "5-10@2", "10-15@1"}, got)
}

func TestInvertComplementsPerChromosome(t *testing.T) {
	h := chromset.New().Handle()
	in := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{10, 20}, [2]uint32{30, 40}))
	inverted := sortedseq.ToSlice[region.BED3](deriv.Invert[region.BED3](in))

	assert.Len(t, inverted, 3)
	assert.Equal(t, uint32(0), inverted[0].Begin())
	assert.Equal(t, uint32(10), inverted[0].End())
	assert.Equal(t, uint32(20), inverted[1].Begin())
	assert.Equal(t, uint32(30), inverted[1].End())
	assert.Equal(t, uint32(40), inverted[2].Begin())
	assert.Equal(t, uint32(math.MaxUint32), inverted[2].End())
}

func TestSubtractRemovesCoveredPortion(t *testing.T) {
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 100}))
	b := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{20, 40}))

	out := sortedseq.ToSlice[region.BED3](deriv.Subtract[region.BED3, region.BED3](a, b))
	assert.Equal(t, []string{"chr1:0-20", "chr1:40-100"}, bed3Strings(out))
}

func TestSubtractFromEmptyBIsIdentity(t *testing.T) {
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 100}))
	b := sortedseq.SortedFromSlice[region.BED3](nil)

	out := sortedseq.ToSlice[region.BED3](deriv.Subtract[region.BED3, region.BED3](a, b))
	assert.Equal(t, []string{"chr1:0-100"}, bed3Strings(out))
}

func TestSubtractEverythingIsEmpty(t *testing.T) {
	h := chromset.New().Handle()
	a := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 100}))
	b := sortedseq.SortedFromSlice(bed3s(h, "chr1", [2]uint32{0, 100}))

	out := sortedseq.ToSlice[region.BED3](deriv.Subtract[region.BED3, region.BED3](a, b))
	assert.Empty(t, out)
}

func TestTaggedMergeIsIndependentPerTag(t *testing.T) {
	h := chromset.New().Handle()
	chr1 := h.QueryOrInsert("chr1")
	type rec struct {
		region.BED3
		tag string
	}
	recs := []rec{
		{region.NewBED3(chr1, 0, 10), "a"},
		{region.NewBED3(chr1, 5, 15), "b"},
	}
	out := sortedseq.ToSlice[bedrec.BED4](deriv.TaggedMerge[rec, string](sortedseq.SortedFromSlice(recs), func(r rec) string { return r.tag }))
	assert.Len(t, out, 2)
}
