// Package segment grows clusters of placed pieces over the best-buddy
// graph and selects the largest cluster found across randomized trials.
package segment

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/jigsolver/compat"
	"github.com/domino14/jigsolver/puzzle"
)

// A Segment is a best-buddy-connected cluster of placed pieces, in
// insertion order. A segment never holds the same piece twice.
type Segment []*puzzle.Piece

// IDs returns the member piece identities; enough for a caller to diff the
// segment against the board.
func (s Segment) IDs() []int {
	ids := make([]int, len(s))
	for i, p := range s {
		ids[i] = p.ID()
	}
	return ids
}

// Explorer runs the randomized segment search. The random source is
// injected so trial sequences are reproducible.
type Explorer struct {
	rng *frand.RNG
}

func NewExplorer(rng *frand.RNG) *Explorer {
	return &Explorer{rng: rng}
}

// DefaultTrials is the trial budget for a rows x cols board: small boards
// keep a floor of five, large boards scale sub-linearly.
func DefaultTrials(rows, cols int) int {
	if t := rows * cols / 5; t > 5 {
		return t
	}
	return 5
}

// FindLargest seeds a traversal at a uniformly random coordinate, trials
// times, and returns the biggest segment found; the earliest trial wins
// ties. trials < 1 selects the default budget. A fully empty board yields
// an empty segment.
func (e *Explorer) FindLargest(board *puzzle.Board, bb *compat.Buddies, trials int) Segment {
	rows, cols := board.Dims()
	if trials < 1 {
		trials = DefaultTrials(rows, cols)
	}
	segments := make([]Segment, 0, trials)
	for t := 0; t < trials; t++ {
		seed := puzzle.Coord{Row: e.rng.Intn(rows), Col: e.rng.Intn(cols)}
		seg := grow(board, bb, seed)
		log.Debug().Msgf("trial %d: seed %v grew a segment of %d", t, seed, len(seg))
		segments = append(segments, seg)
	}
	return lo.MaxBy(segments, func(a, b Segment) bool {
		return len(a) > len(b)
	})
}

// grow collects every piece transitively reachable from the seed through
// best-buddy edges between adjacent placed cells. The board is a grid graph
// with cycles, so membership is recorded by ID before a cell is pushed; the
// traversal is an explicit stack rather than recursion to stay clear of
// stack limits on large boards.
func grow(board *puzzle.Board, bb *compat.Buddies, seed puzzle.Coord) Segment {
	first, ok := board.PieceAt(seed)
	if !ok {
		return nil
	}
	seg := Segment{first}
	inSegment := map[int]bool{first.ID(): true}
	stack := []puzzle.Coord{seed}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur, _ := board.PieceAt(pos)
		for _, nb := range board.Neighbors(pos) {
			switch neighbor := nb.Cell.(type) {
			case puzzle.Slot:
			case *puzzle.Piece:
				if inSegment[neighbor.ID()] || !bb.At(cur.ID(), neighbor.ID(), nb.Dir) {
					continue
				}
				inSegment[neighbor.ID()] = true
				seg = append(seg, neighbor)
				stack = append(stack, nb.Pos)
			}
		}
	}
	return seg
}

// RemoveAllBut implements the consumer contract after segment selection:
// every placed piece outside seg goes back to an empty slot with its placed
// flag cleared, re-entering the unplaced pool. Segment members keep their
// positions.
func RemoveAllBut(board *puzzle.Board, seg Segment) {
	keep := make(map[int]bool, len(seg))
	for _, p := range seg {
		keep[p.ID()] = true
	}
	rows, cols := board.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := puzzle.Coord{Row: r, Col: c}
			if p, ok := board.PieceAt(pos); ok && !keep[p.ID()] {
				board.Clear(pos)
			}
		}
	}
}
