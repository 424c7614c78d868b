package puzzle

import (
	"errors"
	"fmt"
)

// Pixel is a single 3-channel color sample.
type Pixel [3]float64

// Coord addresses a board cell.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

var (
	ErrEmptyPicture = errors.New("picture has no samples")
	ErrNotSquare    = errors.New("picture must be square")
)

// A Piece is a square color patch with a stable identity. Once the puzzle
// has been shuffled, the ID doubles as the piece's index on the pairwise
// tensor axes.
type Piece struct {
	id      int
	picture [][]Pixel

	placed bool
	pos    Coord
}

// NewPiece validates the patch shape up front. The compatibility engine
// assumes already-validated pieces and does not re-check per call.
func NewPiece(id int, picture [][]Pixel) (*Piece, error) {
	if len(picture) == 0 {
		return nil, ErrEmptyPicture
	}
	for _, row := range picture {
		if len(row) != len(picture) {
			return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, len(picture), len(row))
		}
	}
	return &Piece{id: id, picture: picture}, nil
}

func (p *Piece) ID() int {
	return p.id
}

// Size returns the side length of the patch in samples.
func (p *Piece) Size() int {
	return len(p.picture)
}

// Placed reports whether the piece currently sits on a board.
func (p *Piece) Placed() bool {
	return p.placed
}

// Position returns the board coordinate of a placed piece.
func (p *Piece) Position() (Coord, bool) {
	return p.pos, p.placed
}

// BorderStrip returns the outermost row or column of samples on side b.
func (p *Piece) BorderStrip(b Border) []Pixel {
	n := len(p.picture)
	strip := make([]Pixel, n)
	switch b {
	case Top:
		copy(strip, p.picture[0])
	case Bottom:
		copy(strip, p.picture[n-1])
	case Left:
		for i := 0; i < n; i++ {
			strip[i] = p.picture[i][0]
		}
	case Right:
		for i := 0; i < n; i++ {
			strip[i] = p.picture[i][n-1]
		}
	}
	return strip
}

// Dissimilarity is the raw squared color difference between p's side b and
// other's opposite side. Both pieces must be the same size.
func (p *Piece) Dissimilarity(other *Piece, b Border) float64 {
	mine := p.BorderStrip(b)
	theirs := other.BorderStrip(b.Opposite())
	var sum float64
	for i := range mine {
		for c := 0; c < 3; c++ {
			d := mine[i][c] - theirs[i][c]
			sum += d * d
		}
	}
	return sum
}
