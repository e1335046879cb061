// Package bedrec provides the annotated record types layered on top
// of region.BED3: BED4 (name) and BED5 (name, score). These are the
// concrete output types of tagged_merge (BED4) and coverage (BED5,
// with the depth as its score); this module has no BED reader or writer of
// its own, only these in-memory record shapes and their TSV dump.
package bedrec

import (
	"fmt"
	"strconv"

	"github.com/grailbio/bedalgebra/chromset"
	"github.com/grailbio/bedalgebra/region"
)

// BED4 adds a name column to a bare interval.
type BED4 struct {
	region.BED3
	Name string
}

// NewBED4 builds a BED4 record.
func NewBED4(chrom chromset.ChromRef, begin, end uint32, name string) BED4 {
	return BED4{BED3: region.NewBED3(chrom, begin, end), Name: name}
}

func (b BED4) String() string {
	return fmt.Sprintf("%s\t%s", b.BED3.String(), b.Name)
}

// BED5 adds a numeric score on top of BED4.
type BED5 struct {
	BED4
	Score float64
}

// NewBED5 builds a BED5 record.
func NewBED5(chrom chromset.ChromRef, begin, end uint32, name string, score float64) BED5 {
	return BED5{BED4: NewBED4(chrom, begin, end, name), Score: score}
}

func (b BED5) String() string {
	return fmt.Sprintf("%s\t%s", b.BED4.String(), strconv.FormatFloat(b.Score, 'g', -1, 64))
}
