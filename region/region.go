// Package region defines the Region contract shared by every record
// type and algorithm in this module, plus the generic intersection
// product (Pair) used to represent the output of an intersection
// without a fixed per-arity record type.
package region

import (
	"fmt"

	"github.com/grailbio/bedalgebra/chromset"
)

// Region is satisfied by anything that occupies a half-open interval
// [Begin, End) on a chromosome. Begin and End are 0-based, and End is
// exclusive, matching BED convention.
type Region interface {
	Chrom() chromset.ChromRef
	Begin() uint32
	End() uint32
}

// Empty reports whether r covers zero bases.
func Empty(r Region) bool {
	return r.End() <= r.Begin()
}

// Length returns the number of bases r covers, 0 for an empty region.
func Length(r Region) uint32 {
	if Empty(r) {
		return 0
	}
	return r.End() - r.Begin()
}

// Overlaps reports whether a and b share at least one base on the
// same chromosome.
func Overlaps(a, b Region) bool {
	if !a.Chrom().Equal(b.Chrom()) {
		return false
	}
	return a.Begin() < b.End() && b.Begin() < a.End()
}

// Intersection is satisfied by the result of intersecting two or more
// Regions: it reports how many original records contributed to it and
// lets a caller recover each one by index.
type Intersection interface {
	Region
	// Size returns the number of original records folded into this
	// intersection.
	Size() int
	// Original returns the i'th original record, 0 <= i < Size().
	Original(i int) (Region, bool)
}

// BED3 is the minimal concrete Region: a chromosome and a half-open
// interval, with no further annotation. It is also the type the merge,
// invert, subtract, project and as-BED3 derivations normalize their
// output to; coverage and tagged merge return bedrec.BED5 and
// bedrec.BED4 instead.
type BED3 struct {
	chrom chromset.ChromRef
	begin uint32
	end   uint32
}

var _ Region = BED3{}

// NewBED3 builds a bare chromosome/begin/end record.
func NewBED3(chrom chromset.ChromRef, begin, end uint32) BED3 {
	return BED3{chrom: chrom, begin: begin, end: end}
}

func (b BED3) Chrom() chromset.ChromRef { return b.chrom }
func (b BED3) Begin() uint32            { return b.begin }
func (b BED3) End() uint32              { return b.end }

// ToBED3 projects any Region down to its bare chromosome/begin/end,
// discarding whatever else it carries (name, score, intersection
// provenance, ...).
func ToBED3(r Region) BED3 {
	return NewBED3(r.Chrom(), r.Begin(), r.End())
}

func (b BED3) String() string {
	return fmt.Sprintf("%s\t%d\t%d", b.chrom.Name(), b.begin, b.end)
}
