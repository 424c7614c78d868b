// Package solver contains the puzzle-level solve loops built on top of the
// compatibility, best-buddy and segment primitives.
package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/jigsolver/puzzle"
)

// Random is the naive baseline: it fills every empty slot with an unplaced
// piece in a fresh random order, with no regard for fit. It is also the
// placement step of the iterative solver.
func Random(pz *puzzle.Puzzle, rng *frand.RNG) error {
	unplaced := pz.Unplaced()
	empty := pz.Board.EmptyCells()
	if len(unplaced) != len(empty) {
		return fmt.Errorf("%d unplaced pieces for %d empty slots", len(unplaced), len(empty))
	}
	rng.Shuffle(len(unplaced), func(i, j int) {
		unplaced[i], unplaced[j] = unplaced[j], unplaced[i]
	})
	for k, pos := range empty {
		if err := pz.Board.Place(unplaced[k], pos); err != nil {
			return err
		}
	}
	log.Debug().Msgf("randomly placed %d pieces", len(unplaced))
	return nil
}
