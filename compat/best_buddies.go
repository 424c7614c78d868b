package compat

import (
	"gonum.org/v1/gonum/floats"

	"github.com/domino14/jigsolver/puzzle"
)

// Buddies is the best-buddy tensor BB, the same shape as the compatibility
// tensor. BB[i,j,d] is true iff j is i's top-scoring neighbor on side d and
// i is j's top-scoring neighbor on the opposite side. Entries are stored
// directionally; the reciprocal relation is implied, not mirrored.
type Buddies struct {
	n    int
	vals []bool
}

// Len returns the number of pieces on each of the first two axes.
func (b *Buddies) Len() int {
	return b.n
}

// At returns BB[i,j,d].
func (b *Buddies) At(i, j int, d puzzle.Border) bool {
	return b.vals[(i*b.n+j)*puzzle.NumBorders+int(d)]
}

// Count returns the number of true entries.
func (b *Buddies) Count() int {
	n := 0
	for _, v := range b.vals {
		if v {
			n++
		}
	}
	return n
}

// BestBuddies derives the mutual-best-match tensor from cm. An edge is only
// trusted when both endpoints independently vote for each other as
// strongest match on reciprocal sides; asymmetric near-ties are excluded.
// With zeroDiagonal, self-compatibility entries are forced to zero first
// (they already are for any Matrix built by Compute).
func BestBuddies(cm *Matrix, zeroDiagonal bool) *Buddies {
	n := cm.n
	bb := &Buddies{n: n, vals: make([]bool, len(cm.vals))}
	if zeroDiagonal {
		for i := 0; i < n; i++ {
			for _, d := range puzzle.Borders {
				cm.Set(i, i, d, 0)
			}
		}
	}
	if n < 2 {
		return bb
	}
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		for _, d := range puzzle.Borders {
			best := cm.argmax(i, d, row)
			if best == i {
				// all-zero row; the argmax degenerated to the diagonal
				continue
			}
			if cm.argmax(best, d.Opposite(), row) == i {
				bb.vals[(i*n+best)*puzzle.NumBorders+int(d)] = true
			}
		}
	}
	return bb
}

// argmax scans CM[i,:,d]. floats.MaxIdx keeps the lowest index on ties,
// the scan order the rest of the pipeline depends on.
func (m *Matrix) argmax(i int, d puzzle.Border, scratch []float64) int {
	for j := 0; j < m.n; j++ {
		scratch[j] = m.At(i, j, d)
	}
	return floats.MaxIdx(scratch)
}
