package region

import "github.com/grailbio/bedalgebra/chromset"

// Pair is the intersection product of two Regions. It is itself a
// Region (its bounds are the overlap of A and B) and an Intersection,
// so nesting Pair[Pair[A, B], C] yields a 3-way product, and so on up
// to the 8-way nesting the algebra promises: Size/Original walk
// through however many Pair layers are nested by checking, at runtime,
// whether the left-hand side is itself an Intersection.
type Pair[A, B Region] struct {
	a A
	b B
}

// NewPair builds the intersection product of a and b. Callers
// normally obtain a Pair from intersect.SortedIntersect rather than
// constructing one directly.
func NewPair[A, B Region](a A, b B) Pair[A, B] {
	return Pair[A, B]{a: a, b: b}
}

// A returns the left-hand original record.
func (p Pair[A, B]) A() A { return p.a }

// B returns the right-hand original record.
func (p Pair[A, B]) B() B { return p.b }

// Chrom implements Region. A and B are assumed to share a chromosome
// whenever they overlap, so either side's chromosome applies; when
// they don't overlap, Begin/End both read 0 and Chrom is not
// meaningful on its own.
func (p Pair[A, B]) Chrom() chromset.ChromRef { return p.a.Chrom() }

// Begin implements Region: the start of the overlap between A and B,
// or 0 if they don't overlap.
func (p Pair[A, B]) Begin() uint32 {
	if !Overlaps(p.a, p.b) {
		return 0
	}
	if p.a.Begin() > p.b.Begin() {
		return p.a.Begin()
	}
	return p.b.Begin()
}

// End implements Region: the end of the overlap between A and B, or 0
// if they don't overlap.
func (p Pair[A, B]) End() uint32 {
	if !Overlaps(p.a, p.b) {
		return 0
	}
	if p.a.End() < p.b.End() {
		return p.a.End()
	}
	return p.b.End()
}

// Size implements Intersection, recursing through any nested Pair on
// the left-hand side.
func (p Pair[A, B]) Size() int {
	if ia, ok := any(p.a).(Intersection); ok {
		return ia.Size() + 1
	}
	return 2
}

// Original implements Intersection, recursing through any nested Pair
// on the left-hand side so that Pair[Pair[A, B], C].Original(0..2)
// recovers all three original records in left-to-right order.
func (p Pair[A, B]) Original(i int) (Region, bool) {
	if ia, ok := any(p.a).(Intersection); ok {
		n := ia.Size()
		switch {
		case i < n:
			return ia.Original(i)
		case i == n:
			return p.b, true
		default:
			return nil, false
		}
	}
	switch i {
	case 0:
		return p.a, true
	case 1:
		return p.b, true
	default:
		return nil, false
	}
}

var (
	_ Region       = Pair[BED3, BED3]{}
	_ Intersection = Pair[BED3, BED3]{}
)
