package sweep

import "github.com/grailbio/bedalgebra/region"

// TaggedPoint is a Components event annotated with a classification
// tag and a depth counted only among intervals sharing that tag,
// rather than the overall depth across all intervals.
type TaggedPoint[T region.Region, Tag comparable] struct {
	Tag   Tag
	Point Point[T]
}

// TaggedIter re-derives per-tag depth from the underlying, untagged
// Components stream.
type TaggedIter[T region.Region, Tag comparable] struct {
	in    *ComponentsIter[T]
	tagOf func(T) Tag
	depth map[Tag]int
}

// TaggedComponents classifies each event of in by tagOf and tracks a
// separate live-depth counter per tag. Two intervals with different
// tags never affect each other's depth, even if they physically
// overlap.
func TaggedComponents[T region.Region, Tag comparable](in *ComponentsIter[T], tagOf func(T) Tag) *TaggedIter[T, Tag] {
	return &TaggedIter[T, Tag]{in: in, tagOf: tagOf, depth: make(map[Tag]int)}
}

// Next returns the next event with its per-tag depth.
func (t *TaggedIter[T, Tag]) Next() (TaggedPoint[T, Tag], bool) {
	p, ok := t.in.Next()
	if !ok {
		var zero TaggedPoint[T, Tag]
		return zero, false
	}
	tag := t.tagOf(p.Value)
	var depth int
	if p.IsOpen {
		t.depth[tag]++
		depth = t.depth[tag]
	} else {
		t.depth[tag]--
		depth = t.depth[tag]
		if depth == 0 {
			delete(t.depth, tag)
		}
	}
	p.Depth = depth
	return TaggedPoint[T, Tag]{Tag: tag, Point: p}, true
}
