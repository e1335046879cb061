// Package tabout renders intersection products as delimited text
// through composable column "recipes": Overlap, Original(i),
// Fraction(i) and string literals, combined with Plus into a single
// recipe that prints a whole row.
package tabout

import (
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/bedalgebra/region"
)

// Recipe renders one or more columns of a row derived from an
// Intersection product.
type Recipe interface {
	Write(w io.Writer, ix region.Intersection) error
}

// RecipeFunc adapts a plain function to Recipe.
type RecipeFunc func(w io.Writer, ix region.Intersection) error

func (f RecipeFunc) Write(w io.Writer, ix region.Intersection) error { return f(w, ix) }

// composite is the result of combining two recipes with Plus: it
// writes the left recipe, a tab, then the right recipe.
type composite struct {
	left, right Recipe
}

func (c composite) Write(w io.Writer, ix region.Intersection) error {
	if err := c.left.Write(w, ix); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\t"); err != nil {
		return err
	}
	return c.right.Write(w, ix)
}

// Plus combines a and b into a single recipe that prints a's columns,
// a tab, then b's columns.
func Plus(a, b Recipe) Recipe {
	return composite{left: a, right: b}
}

// Overlap prints the intersection's own bounds: chrom, begin, end.
var Overlap Recipe = RecipeFunc(func(w io.Writer, ix region.Intersection) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d", ix.Chrom().Name(), ix.Begin(), ix.End())
	return err
})

// Original prints the i'th original record's bare bed3 columns, or
// nothing when ix has no i'th original.
func Original(i int) Recipe {
	return RecipeFunc(func(w io.Writer, ix region.Intersection) error {
		orig, ok := ix.Original(i)
		if !ok {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s\t%d\t%d", orig.Chrom().Name(), orig.Begin(), orig.End())
		return err
	})
}

// OriginalRange prints every original record in [lo, hi), joined by
// delim, as "chrom:begin-end" tokens.
func OriginalRange(lo, hi int, delim string) Recipe {
	return RecipeFunc(func(w io.Writer, ix region.Intersection) error {
		for i := lo; i < hi; i++ {
			if i > lo {
				if _, err := io.WriteString(w, delim); err != nil {
					return err
				}
			}
			orig, ok := ix.Original(i)
			if !ok {
				if _, err := io.WriteString(w, "."); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s:%d-%d", orig.Chrom().Name(), orig.Begin(), orig.End()); err != nil {
				return err
			}
		}
		return nil
	})
}

// S prints a fixed literal string, useful for constant separators or
// column headers woven into a Plus chain.
func S(literal string) Recipe {
	return RecipeFunc(func(w io.Writer, _ region.Intersection) error {
		_, err := io.WriteString(w, literal)
		return err
	})
}

// Fraction prints the fraction of the i'th original record's length
// that the overlap covers, to 5 decimal places.
func Fraction(i int) Recipe {
	return RecipeFunc(func(w io.Writer, ix region.Intersection) error {
		orig, ok := ix.Original(i)
		if !ok {
			_, err := io.WriteString(w, "0.00000")
			return err
		}
		total := region.Length(orig)
		if total == 0 {
			_, err := io.WriteString(w, "0.00000")
			return err
		}
		frac := float64(region.Length(ix)) / float64(total)
		_, err := io.WriteString(w, strconv.FormatFloat(frac, 'f', 5, 64))
		return err
	})
}
