package solver

import (
	"errors"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/jigsolver/compat"
	"github.com/domino14/jigsolver/puzzle"
	"github.com/domino14/jigsolver/segment"
)

// Pomeranz iterates the place/segment/prune loop: fill the board randomly,
// keep the largest best-buddy segment, put everything else back in the
// pool, and try again. The compatibility and best-buddy tensors are pure
// functions of the pieces' pixel content, so they are computed once up
// front.
type Pomeranz struct {
	pz   *puzzle.Puzzle
	cm   *compat.Matrix
	bb   *compat.Buddies
	expl *segment.Explorer
	rng  *frand.RNG
}

// NewPomeranz prepares a solver for a shuffled puzzle.
func NewPomeranz(pz *puzzle.Puzzle, rng *frand.RNG) (*Pomeranz, error) {
	if pz.Board == nil || len(pz.Bag) == 0 {
		return nil, errors.New("puzzle must be created and shuffled first")
	}
	cm, err := compat.Compute(pz.Bag)
	if err != nil {
		return nil, err
	}
	bb := compat.BestBuddies(cm, true)
	log.Debug().Msgf("prepared tensors for %d pieces, %d best-buddy edges", cm.Len(), bb.Count())
	return &Pomeranz{
		pz:   pz,
		cm:   cm,
		bb:   bb,
		expl: segment.NewExplorer(rng),
		rng:  rng,
	}, nil
}

// Compatibility returns the computed CM tensor.
func (s *Pomeranz) Compatibility() *compat.Matrix {
	return s.cm
}

// Buddies returns the computed BB tensor.
func (s *Pomeranz) Buddies() *compat.Buddies {
	return s.bb
}

// Solve runs up to maxRounds rounds and returns the segment left on the
// board. It stops early when a segment covers the whole board. trials < 1
// picks the per-board default.
func (s *Pomeranz) Solve(maxRounds, trials int) (segment.Segment, error) {
	rows, cols := s.pz.Shape()
	total := rows * cols
	var seg segment.Segment
	for round := 0; round < maxRounds; round++ {
		if err := Random(s.pz, s.rng); err != nil {
			return nil, err
		}
		seg = s.expl.FindLargest(s.pz.Board, s.bb, trials)
		log.Info().Msgf("round %d: largest segment %d/%d", round, len(seg), total)
		if len(seg) == total {
			return seg, nil
		}
		segment.RemoveAllBut(s.pz.Board, seg)
	}
	return seg, nil
}
