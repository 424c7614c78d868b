package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/jigsolver/puzzle"
)

func gridPuzzle(t *testing.T, rows, cols, size int, seed uint64) *puzzle.Puzzle {
	t.Helper()
	pz, err := puzzle.New(size, puzzle.NewRNG(seed))
	require.NoError(t, err)
	board, err := puzzle.NewBoard(rows, cols)
	require.NoError(t, err)
	pz.Board = board
	for i, pic := range puzzle.GridPictures(rows, cols, size) {
		p, err := puzzle.NewPiece(i, pic)
		require.NoError(t, err)
		pz.Bag = append(pz.Bag, p)
	}
	return pz
}

func TestRandomFillsBoard(t *testing.T) {
	pz := gridPuzzle(t, 2, 2, 4, 3)
	require.NoError(t, Random(pz, puzzle.NewRNG(3)))

	assert.Equal(t, 4, pz.Board.PlacedCount())
	assert.Empty(t, pz.Unplaced())
	seen := map[int]bool{}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			p, ok := pz.Board.PieceAt(puzzle.Coord{Row: r, Col: c})
			require.True(t, ok)
			assert.False(t, seen[p.ID()])
			seen[p.ID()] = true
		}
	}
}

func TestRandomCountMismatch(t *testing.T) {
	pz := gridPuzzle(t, 2, 2, 4, 3)
	pz.Bag = pz.Bag[:3]
	assert.Error(t, Random(pz, puzzle.NewRNG(3)))
}

func TestPomeranzRequiresPieces(t *testing.T) {
	pz, err := puzzle.New(4, puzzle.NewRNG(0))
	require.NoError(t, err)
	_, err = NewPomeranz(pz, puzzle.NewRNG(0))
	assert.Error(t, err)
}

// A two-piece puzzle with one exactly-matching edge: the pair is mutual
// best buddies in any arrangement, so the very first round produces a
// full-board segment.
func TestPomeranzSolvesPair(t *testing.T) {
	pz := gridPuzzle(t, 1, 2, 4, 11)
	sv, err := NewPomeranz(pz, puzzle.NewRNG(11))
	require.NoError(t, err)

	seg, err := sv.Solve(5, 4)
	require.NoError(t, err)
	assert.Len(t, seg, 2)
	assert.Equal(t, 2, pz.Board.PlacedCount())
	assert.ElementsMatch(t, []int{0, 1}, seg.IDs())
}

func TestPomeranzDeterminism(t *testing.T) {
	results := make([][]int, 2)
	for run := 0; run < 2; run++ {
		pz := gridPuzzle(t, 2, 2, 4, 21)
		sv, err := NewPomeranz(pz, puzzle.NewRNG(21))
		require.NoError(t, err)
		seg, err := sv.Solve(10, 0)
		require.NoError(t, err)
		results[run] = seg.IDs()
	}
	assert.Equal(t, results[0], results[1])
}
