package puzzle

import (
	"image"
	"image/color"
	"testing"

	"github.com/matryer/is"
)

// gradientImage gives every pixel a distinct, deterministic color.
func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 5), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestCreateFromImageCropsToPatchMultiple(t *testing.T) {
	is := is.New(t)
	pz, err := New(4, NewRNG(0))
	is.NoErr(err)
	// 11x9 with patch size 4 crops down to 2 rows x 2 cols
	is.NoErr(pz.CreateFromImage(gradientImage(11, 9)))
	rows, cols := pz.Shape()
	is.Equal(rows, 2)
	is.Equal(cols, 2)

	// pieces sit in their original arrangement, IDs row-major
	id := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p, ok := pz.Board.PieceAt(Coord{r, c})
			is.True(ok)
			is.Equal(p.ID(), id)
			is.Equal(p.Size(), 4)
			id++
		}
	}
}

func TestCreateFromImageTooSmall(t *testing.T) {
	is := is.New(t)
	pz, err := New(16, NewRNG(0))
	is.NoErr(err)
	is.True(pz.CreateFromImage(gradientImage(10, 40)) != nil)
}

func TestCreateFromImagePixelValues(t *testing.T) {
	is := is.New(t)
	pz, err := New(2, NewRNG(0))
	is.NoErr(err)
	is.NoErr(pz.CreateFromImage(gradientImage(4, 2)))
	p, ok := pz.Board.PieceAt(Coord{0, 1})
	is.True(ok)
	// piece (0,1) starts at image x=2: R channel is x*5
	is.Equal(p.BorderStrip(Top)[0], Pixel{10, 0, 2})
	is.Equal(p.BorderStrip(Top)[1], Pixel{15, 0, 3})
}

func TestShuffle(t *testing.T) {
	is := is.New(t)
	pz, err := New(3, NewRNG(99))
	is.NoErr(err)
	is.NoErr(pz.CreateFromImage(gradientImage(9, 9)))
	is.NoErr(pz.Shuffle())
	is.Equal(len(pz.Bag), 9)
	is.Equal(pz.Board.PlacedCount(), 0)
	is.Equal(len(pz.Unplaced()), 9)
	for i, p := range pz.Bag {
		is.Equal(p.ID(), i) // IDs renumbered to bag order
		is.True(!p.Placed())
	}
}

// Shuffling again after pieces have gone back on the board must not grow
// the bag: pieces stay bag-owned for the life of the puzzle, and IDs must
// keep matching bag indices.
func TestReshuffleKeepsBagIntact(t *testing.T) {
	is := is.New(t)
	pz, err := New(3, NewRNG(8))
	is.NoErr(err)
	is.NoErr(pz.CreateFromImage(gradientImage(6, 6)))
	is.NoErr(pz.Shuffle())
	is.Equal(len(pz.Bag), 4)

	// put every piece back on the board, as a solve round would
	for i, p := range pz.Bag {
		is.NoErr(pz.Board.Place(p, Coord{i / 2, i % 2}))
	}
	is.Equal(pz.Board.PlacedCount(), 4)

	is.NoErr(pz.Shuffle())
	is.Equal(len(pz.Bag), 4)
	is.Equal(pz.Board.PlacedCount(), 0)
	seen := map[*Piece]bool{}
	for i, p := range pz.Bag {
		is.Equal(p.ID(), i)
		is.True(!p.Placed())
		is.True(!seen[p])
		seen[p] = true
	}
}

func TestShuffleDeterminism(t *testing.T) {
	is := is.New(t)
	perms := make([][]int, 2)
	for run := 0; run < 2; run++ {
		pz, err := New(3, NewRNG(1234))
		is.NoErr(err)
		is.NoErr(pz.CreateFromImage(gradientImage(9, 9)))
		rows, cols := pz.Shape()
		index := map[*Piece]int{}
		i := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p, _ := pz.Board.PieceAt(Coord{r, c})
				index[p] = i
				i++
			}
		}
		is.NoErr(pz.Shuffle())
		perm := make([]int, len(pz.Bag))
		for j, p := range pz.Bag {
			perm[j] = index[p]
		}
		perms[run] = perm
	}
	is.Equal(perms[0], perms[1])
}

func TestUnplaced(t *testing.T) {
	is := is.New(t)
	pz, err := New(3, NewRNG(5))
	is.NoErr(err)
	is.NoErr(pz.CreateFromImage(gradientImage(6, 3)))
	is.NoErr(pz.Shuffle())
	is.Equal(len(pz.Unplaced()), 2)

	is.NoErr(pz.Board.Place(pz.Bag[1], Coord{0, 0}))
	left := pz.Unplaced()
	is.Equal(len(left), 1)
	is.Equal(left[0].ID(), 0)
}
