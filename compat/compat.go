// Package compat computes pairwise piece compatibility: a dense pieces x
// pieces x borders tensor of probability-like scores derived from raw edge
// dissimilarities, normalized per reference piece against the gap between
// that piece's two strongest candidates (Cho-style).
package compat

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gorgonia.org/tensor"

	"github.com/domino14/jigsolver/puzzle"
)

// Matrix is the compatibility tensor CM. Values live in [0, 1], rounded to
// two decimals; CM[i,i,*] is always zero. It is not symmetric: CM[i,j,d]
// and CM[j,i,opposite(d)] score the same physical edge pair but are
// normalized against different reference pieces.
type Matrix struct {
	n     int
	vals  []float64
	dense *tensor.Dense
}

// NewMatrix returns an all-zero n x n x 4 compatibility tensor.
func NewMatrix(n int) *Matrix {
	vals := make([]float64, n*n*puzzle.NumBorders)
	return &Matrix{
		n:    n,
		vals: vals,
		dense: tensor.New(
			tensor.WithShape(n, n, puzzle.NumBorders),
			tensor.WithBacking(vals)),
	}
}

// Len returns the number of pieces on each of the first two axes.
func (m *Matrix) Len() int {
	return m.n
}

// At returns CM[i,j,d].
func (m *Matrix) At(i, j int, d puzzle.Border) float64 {
	return m.vals[m.idx(i, j, d)]
}

// Set overwrites CM[i,j,d].
func (m *Matrix) Set(i, j int, d puzzle.Border, v float64) {
	m.vals[m.idx(i, j, d)] = v
}

func (m *Matrix) idx(i, j int, d puzzle.Border) int {
	return (i*m.n+j)*puzzle.NumBorders + int(d)
}

// Tensor exposes the dense tensor sharing the matrix's backing array.
func (m *Matrix) Tensor() *tensor.Dense {
	return m.dense
}

// Compute builds the compatibility tensor for the bag, in bag order. It is
// a pure function of the pieces' pixel content and ordering; piece IDs must
// match their bag positions, since the board-side consumers index the
// tensor by ID.
func Compute(pieces []*puzzle.Piece) (*Matrix, error) {
	n := len(pieces)
	if n == 0 {
		return nil, errors.New("compat: empty piece bag")
	}
	size := pieces[0].Size()
	for i, p := range pieces {
		if p.ID() != i {
			return nil, fmt.Errorf("compat: piece at bag index %d has ID %d", i, p.ID())
		}
		if p.Size() != size {
			return nil, fmt.Errorf("compat: piece %d is %d samples wide, want %d", i, p.Size(), size)
		}
	}
	m := NewMatrix(n)
	if n == 1 {
		return m, nil
	}

	// raw dissimilarities for one reference piece, indexed j*4+d
	raw := make([]float64, n*puzzle.NumBorders)
	pooled := make([]float64, 0, (n-1)*puzzle.NumBorders)
	for i, pi := range pieces {
		pooled = pooled[:0]
		for j, pj := range pieces {
			if i == j {
				continue
			}
			for _, b := range puzzle.Borders {
				d := pi.Dissimilarity(pj, b)
				raw[j*puzzle.NumBorders+int(b)] = d
				pooled = append(pooled, d)
			}
		}
		// The normalization pools all four directions before taking the
		// two smallest values; sigma is the gap between them.
		sort.Float64s(pooled)
		sigma := pooled[0]
		if len(pooled) > 1 {
			sigma = pooled[1] - pooled[0]
		}
		for j := range pieces {
			if i == j {
				continue
			}
			for _, b := range puzzle.Borders {
				m.Set(i, j, b, gaussian(raw[j*puzzle.NumBorders+int(b)], sigma))
			}
		}
	}
	return m, nil
}

// gaussian maps a raw dissimilarity into [0, 1]. Sigma zero means the
// reference piece's two strongest candidates tie exactly; treat an exact
// edge match as certain and everything else as impossible, since the usual
// transform is undefined there.
func gaussian(diss, sigma float64) float64 {
	if sigma == 0 {
		if diss == 0 {
			return 1
		}
		return 0
	}
	// math.Round rounds halves away from zero, not half-to-even; an exp()
	// output landing exactly on a .xx5 boundary would differ from a
	// banker's-rounding implementation by 0.01.
	return math.Round(math.Exp(-diss/(2*sigma*sigma))*100) / 100
}
