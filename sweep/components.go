// Package sweep implements the Components event stream: the
// sweep-line primitive every derivation in this module (merge,
// coverage, invert, tagged merge) is built on. It turns a sorted
// stream of Regions into a stream of open/close events carrying the
// live nesting depth at that position.
package sweep

import (
	"container/heap"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/pipeline"
	"github.com/grailbio/bedalgebra/region"
	"github.com/grailbio/bedalgebra/sortedseq"
)

// Point is one open or close event produced by the sweep. Depth is
// the number of intervals live immediately after this event: for an
// open event, the count including the interval that just opened; for
// a close event, the count remaining after the interval that just
// closed.
type Point[T region.Region] struct {
	IsOpen bool
	Index  int
	Depth  int
	Value  T
}

// Position returns the (chromosome, coordinate) this event occurs at:
// the interval's begin for an open event, its end for a close event.
func (p Point[T]) Position() (chromset.ChromRef, uint32) {
	if p.IsOpen {
		return p.Value.Chrom(), p.Value.Begin()
	}
	return p.Value.Chrom(), p.Value.End()
}

// closeEntry is what the sweep's min-heap holds while an interval is
// live: enough to know when (chrom, end) it must close, plus the
// interval's insertion index so that equal-position closes settle in
// a stable, deterministic order.
type closeEntry[T region.Region] struct {
	value T
	index int
}

type closeHeap[T region.Region] struct {
	entries []closeEntry[T]
}

func (h closeHeap[T]) Len() int { return len(h.entries) }

func (h closeHeap[T]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if c := a.value.Chrom().Compare(b.value.Chrom()); c != 0 {
		return c < 0
	}
	if a.value.End() != b.value.End() {
		return a.value.End() < b.value.End()
	}
	return a.index < b.index
}

func (h closeHeap[T]) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *closeHeap[T]) Push(x any) { h.entries = append(h.entries, x.(closeEntry[T])) }

func (h *closeHeap[T]) Pop() any {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[:n-1]
	return item
}

func (h *closeHeap[T]) peek() (closeEntry[T], bool) {
	if len(h.entries) == 0 {
		var zero closeEntry[T]
		return zero, false
	}
	return h.entries[0], true
}

// ComponentsIter is the sweep-line state machine: at any time it holds
// one peeked-ahead input value and a heap of currently-open intervals
// keyed by their close position.
type ComponentsIter[T region.Region] struct {
	in        sortedseq.Sorted[T]
	peek      T
	hasPeek   bool
	index     int
	heap      closeHeap[T]
	lastChrom chromset.ChromRef
	haveChrom bool
}

// Components runs the sweep over in, a stream already known to be
// sorted by (chromosome, begin).
func Components[T region.Region](in sortedseq.Sorted[T]) *ComponentsIter[T] {
	c := &ComponentsIter[T]{in: in}
	c.peek, c.hasPeek = in.Next()
	return c
}

// traceChromBoundary logs once per distinct chromosome encountered by
// the sweep, at the point the first open event for it is emitted.
func (c *ComponentsIter[T]) traceChromBoundary(v T) {
	if !c.haveChrom || !c.lastChrom.Equal(v.Chrom()) {
		c.lastChrom = v.Chrom()
		c.haveChrom = true
		pipeline.TracePhase("sweep.components", v.Chrom().Name(), c.heap.Len())
	}
}

// Next returns the next open or close event, in (chromosome,
// position) order, with close events preceding open events at equal
// positions.
func (c *ComponentsIter[T]) Next() (Point[T], bool) {
	if c.hasPeek {
		if top, ok := c.heap.peek(); ok {
			cmp := top.value.Chrom().Compare(c.peek.Chrom())
			if cmp < 0 || (cmp == 0 && top.value.End() <= c.peek.Begin()) {
				heap.Pop(&c.heap)
				return Point[T]{IsOpen: false, Index: top.index, Depth: c.heap.Len(), Value: top.value}, true
			}
		}
		index := c.index
		c.index++
		v := c.peek
		c.traceChromBoundary(v)
		heap.Push(&c.heap, closeEntry[T]{value: v, index: index})
		depth := c.heap.Len()
		c.peek, c.hasPeek = c.in.Next()
		return Point[T]{IsOpen: true, Index: index, Depth: depth, Value: v}, true
	}
	if c.heap.Len() == 0 {
		var zero Point[T]
		return zero, false
	}
	top := heap.Pop(&c.heap).(closeEntry[T])
	return Point[T]{IsOpen: false, Index: top.index, Depth: c.heap.Len(), Value: top.value}, true
}
