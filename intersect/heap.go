package intersect

import "github.com/grailbio/bedalgebra/region"

// regionHeap is a min-heap of Regions keyed by (chromosome, end),
// used to track the active set during the sweep: the set of records
// still "live" because their end hasn't yet been passed by the
// frontier. Unlike sweep's closeHeap, callers also need to scan the
// full active set in arbitrary order (to enumerate overlap
// candidates), so Slice exposes the backing array directly.
type regionHeap[T region.Region] struct {
	data []T
}

func (h *regionHeap[T]) Len() int { return len(h.data) }

func (h *regionHeap[T]) Less(i, j int) bool {
	a, b := h.data[i], h.data[j]
	if c := a.Chrom().Compare(b.Chrom()); c != 0 {
		return c < 0
	}
	return a.End() < b.End()
}

func (h *regionHeap[T]) Swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *regionHeap[T]) Push(x any) { h.data = append(h.data, x.(T)) }

func (h *regionHeap[T]) Pop() any {
	old := h.data
	n := len(old)
	item := old[n-1]
	h.data = old[:n-1]
	return item
}

func (h *regionHeap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Slice returns the active set in unspecified (heap-internal) order.
func (h *regionHeap[T]) Slice() []T { return h.data }

// Clear empties the heap, used when the sweep crosses a chromosome
// boundary and the previous chromosome's active set is no longer
// reachable.
func (h *regionHeap[T]) Clear() { h.data = h.data[:0] }
