package puzzle

// Deterministic synthetic patches, used by the package tests and by the
// engine tests downstream.

// SolidPicture returns a size-by-size patch of a single color.
func SolidPicture(size int, px Pixel) [][]Pixel {
	picture := make([][]Pixel, size)
	for y := range picture {
		row := make([]Pixel, size)
		for x := range row {
			row[x] = px
		}
		picture[y] = row
	}
	return picture
}

// GridPictures cuts rows*cols synthetic patches (row-major) out of an
// overlapping tiling of one gradient, so that the adjoining edges of true
// neighbors are exactly equal and every other edge pair differs. True
// neighbors therefore have zero dissimilarity.
func GridPictures(rows, cols, size int) [][][]Pixel {
	g := func(y, x int) Pixel {
		return Pixel{float64(y * 3), float64(x * 3), float64(y + x)}
	}
	pics := make([][][]Pixel, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			picture := make([][]Pixel, size)
			for y := range picture {
				row := make([]Pixel, size)
				for x := range row {
					row[x] = g(r*(size-1)+y, c*(size-1)+x)
				}
				picture[y] = row
			}
			pics = append(pics, picture)
		}
	}
	return pics
}
