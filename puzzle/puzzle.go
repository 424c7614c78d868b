// Package puzzle holds the jigsaw data model: square color-patch pieces,
// the slot/piece board they are assembled on, and the puzzle container that
// cuts pieces out of an image and shuffles them into the bag.
package puzzle

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// NewRNG builds a deterministic random source from a numeric seed. All
// randomized components take one of these so runs are reproducible.
func NewRNG(seed uint64) *frand.RNG {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}

// A Puzzle owns the bag of pieces and the board they are assembled on.
// After Shuffle, the bag holds every piece in tensor-axis order (piece ID ==
// bag index) for the lifetime of the puzzle; the placed flag on each piece
// tracks which of them currently sit on the board.
type Puzzle struct {
	Bag   []*Piece
	Board *Board

	patchSize int
	rng       *frand.RNG
}

func New(patchSize int, rng *frand.RNG) (*Puzzle, error) {
	if patchSize < 1 {
		return nil, fmt.Errorf("patch size %d out of range", patchSize)
	}
	return &Puzzle{patchSize: patchSize, rng: rng}, nil
}

func (pz *Puzzle) PatchSize() int {
	return pz.patchSize
}

// Shape returns the board dimensions.
func (pz *Puzzle) Shape() (rows, cols int) {
	return pz.Board.Dims()
}

// CreateFromImage crops img down to a multiple of the patch size, cuts it
// into square row-major patches, and places them on a fresh board in their
// original arrangement.
func (pz *Puzzle) CreateFromImage(img image.Image) error {
	bounds := img.Bounds()
	rows := bounds.Dy() / pz.patchSize
	cols := bounds.Dx() / pz.patchSize
	if rows == 0 || cols == 0 {
		return fmt.Errorf("image %dx%d smaller than patch size %d",
			bounds.Dx(), bounds.Dy(), pz.patchSize)
	}
	board, err := NewBoard(rows, cols)
	if err != nil {
		return err
	}
	ps := pz.patchSize
	id := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			picture := make([][]Pixel, ps)
			for y := range picture {
				row := make([]Pixel, ps)
				for x := range row {
					row[x] = pixelAt(img, bounds.Min.X+c*ps+x, bounds.Min.Y+r*ps+y)
				}
				picture[y] = row
			}
			p, err := NewPiece(id, picture)
			if err != nil {
				return err
			}
			if err := board.Place(p, Coord{r, c}); err != nil {
				return err
			}
			id++
		}
	}
	pz.Board = board
	pz.Bag = nil
	log.Debug().Msgf("created %dx%d puzzle from %dx%d image", rows, cols, bounds.Dx(), bounds.Dy())
	return nil
}

func pixelAt(img image.Image, x, y int) Pixel {
	r, g, b, _ := img.At(x, y).RGBA()
	return Pixel{float64(r >> 8), float64(g >> 8), float64(b >> 8)}
}

// Shuffle moves every placed piece into the bag, resets the board, shuffles
// the bag with the injected random source, and renumbers piece IDs to bag
// order. IDs are stable from here on; the compatibility tensors are indexed
// by them.
func (pz *Puzzle) Shuffle() error {
	if pz.Board == nil {
		return fmt.Errorf("puzzle has no board")
	}
	// The bag owns every piece for the life of the puzzle; pieces already in
	// it (from an earlier shuffle) only get cleared off the board, not
	// re-appended.
	inBag := make(map[*Piece]bool, len(pz.Bag))
	for _, p := range pz.Bag {
		inBag[p] = true
	}
	rows, cols := pz.Board.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Coord{r, c}
			if p, ok := pz.Board.PieceAt(pos); ok {
				if !inBag[p] {
					pz.Bag = append(pz.Bag, p)
				}
				pz.Board.Clear(pos)
			}
		}
	}
	pz.rng.Shuffle(len(pz.Bag), func(i, j int) {
		pz.Bag[i], pz.Bag[j] = pz.Bag[j], pz.Bag[i]
	})
	for i, p := range pz.Bag {
		p.id = i
	}
	log.Debug().Msgf("shuffled %d pieces into the bag", len(pz.Bag))
	return nil
}

// SetRNG swaps the random source driving future shuffles.
func (pz *Puzzle) SetRNG(rng *frand.RNG) {
	pz.rng = rng
}

// Unplaced returns the bag pieces not currently on the board, in bag order.
func (pz *Puzzle) Unplaced() []*Piece {
	return lo.Filter(pz.Bag, func(p *Piece, _ int) bool {
		return !p.Placed()
	})
}
