package sortedseq

import (
	"github.com/biogo/store/llrb"
	"github.com/grailbio/bedalgebra/region"
)

// mergeLeaf is one input stream's current head record, ordered by
// (chrom, begin, source sequence) so that llrb.Tree always surfaces
// the globally smallest pending record at its minimum.
type mergeLeaf[T region.Region] struct {
	seq int
	in  Iterator[T]
	cur T
}

func (l *mergeLeaf[T]) Compare(c1 llrb.Comparable) int {
	o := c1.(*mergeLeaf[T])
	if c := l.cur.Chrom().Compare(o.cur.Chrom()); c != 0 {
		return c
	}
	if l.cur.Begin() != o.cur.Begin() {
		if l.cur.Begin() < o.cur.Begin() {
			return -1
		}
		return 1
	}
	return l.seq - o.seq
}

type nwayMerge[T region.Region] struct {
	tree llrb.Tree
}

// MergeSorted performs an N-way merge of already-sorted streams into
// a single sorted stream, keeping a binary search tree of the heads
// of each input so the next record can always be found and replaced
// in O(log N). Useful for combining per-chromosome or per-shard
// sorted output before feeding it to a sweep.
func MergeSorted[T region.Region](ins ...Sorted[T]) Sorted[T] {
	m := &nwayMerge[T]{}
	for i, in := range ins {
		v, ok := in.Next()
		if ok {
			m.tree.Insert(&mergeLeaf[T]{seq: i, in: in, cur: v})
		}
	}
	return AssumeSorted[T](m)
}

func (m *nwayMerge[T]) Next() (T, bool) {
	if m.tree.Len() == 0 {
		var zero T
		return zero, false
	}
	var top *mergeLeaf[T]
	m.tree.Do(func(item llrb.Comparable) bool {
		top = item.(*mergeLeaf[T])
		return true
	})
	ret := top.cur
	m.tree.DeleteMin()
	if next, ok := top.in.Next(); ok {
		top.cur = next
		m.tree.Insert(top)
	}
	return ret, true
}
