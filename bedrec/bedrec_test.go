package bedrec_test

import (
	"testing"

	"github.com/grailbio/bedalgebra/bedrec"
	"github.com/grailbio/bedalgebra/chromset"
	"github.com/stretchr/testify/assert"
)

func TestBED4String(t *testing.T) {
	h := chromset.New().Handle()
	chr1 := h.QueryOrInsert("chr1")
	rec := bedrec.NewBED4(chr1, 10, 20, "peak1")
	assert.Equal(t, "chr1\t10\t20\tpeak1", rec.String())
	assert.Equal(t, uint32(10), rec.Begin())
	assert.Equal(t, uint32(20), rec.End())
}

func TestBED5String(t *testing.T) {
	h := chromset.New().Handle()
	chr1 := h.QueryOrInsert("chr1")
	rec := bedrec.NewBED5(chr1, 10, 20, "peak1", 3.5)
	assert.Equal(t, "chr1\t10\t20\tpeak1\t3.5", rec.String())
	assert.Equal(t, 3.5, rec.Score)
}

func TestBED5EmbedsBED4Fields(t *testing.T) {
	h := chromset.New().Handle()
	chr1 := h.QueryOrInsert("chr1")
	rec := bedrec.NewBED5(chr1, 0, 5, "x", 1.0)
	assert.Equal(t, "x", rec.Name)
	assert.True(t, rec.Chrom().Equal(chr1))
}
