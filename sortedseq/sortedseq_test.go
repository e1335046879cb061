package sortedseq_test

import (
	"testing"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
	"github.com/stretchr/testify/assert"
)

func TestFromSliceAndToSlice(t *testing.T) {
	it := sortedseq.FromSlice([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, sortedseq.ToSlice(it))
}

func TestMapPreservesOrder(t *testing.T) {
	s := sortedseq.SortedFromSlice([]int{1, 2, 3})
	doubled := sortedseq.Map(s, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, sortedseq.ToSlice(doubled))
}

func TestFilterDropsElements(t *testing.T) {
	s := sortedseq.SortedFromSlice([]int{1, 2, 3, 4, 5})
	evens := sortedseq.Filter(s, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, sortedseq.ToSlice(evens))
}

func TestCheckSortedPassesSortedInput(t *testing.T) {
	h := chromset.New().Handle()
	chr1 := h.QueryOrInsert("chr1")
	recs := []region.BED3{
		region.NewBED3(chr1, 1, 5),
		region.NewBED3(chr1, 5, 10),
	}
	checked := sortedseq.CheckSorted[region.BED3](sortedseq.FromSlice(recs))
	assert.NotPanics(t, func() {
		sortedseq.ToSlice[region.BED3](checked)
	})
}

func TestCheckSortedPanicsOnViolation(t *testing.T) {
	h := chromset.New().Handle()
	chr1 := h.QueryOrInsert("chr1")
	recs := []region.BED3{
		region.NewBED3(chr1, 10, 20),
		region.NewBED3(chr1, 1, 5),
	}
	checked := sortedseq.CheckSorted[region.BED3](sortedseq.FromSlice(recs))
	assert.Panics(t, func() {
		sortedseq.ToSlice[region.BED3](checked)
	})
}
