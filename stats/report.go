// Package stats summarizes a computed compatibility distribution on a
// terminal.
package stats

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/jigsolver/compat"
	"github.com/domino14/jigsolver/puzzle"
)

const (
	histBins  = 10
	histWidth = 40
)

// WriteReport prints a short summary of the off-diagonal compatibility
// scores (count, mean, stddev, histogram) plus the best-buddy edge count.
func WriteReport(w io.Writer, cm *compat.Matrix, bb *compat.Buddies) error {
	vals := offDiagonal(cm)
	if len(vals) == 0 {
		_, err := fmt.Fprintln(w, "no pairwise scores (single-piece puzzle)")
		return err
	}
	fmt.Fprintf(w, "pairwise scores: %d  mean %.3f  stddev %.3f\n",
		len(vals), stat.Mean(vals, nil), stat.StdDev(vals, nil))
	fmt.Fprintf(w, "best-buddy edges: %d\n", bb.Count())
	return histogram.Fprint(w, histogram.Hist(histBins, vals), histogram.Linear(histWidth))
}

func offDiagonal(cm *compat.Matrix) []float64 {
	n := cm.Len()
	if n < 2 {
		return nil
	}
	vals := make([]float64, 0, n*(n-1)*puzzle.NumBorders)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for _, d := range puzzle.Borders {
				vals = append(vals, cm.At(i, j, d))
			}
		}
	}
	return vals
}
