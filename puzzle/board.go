package puzzle

import (
	"fmt"
	"strings"
)

// Cell is the content of one board position: a Slot or a *Piece. The
// interface is sealed so access sites can switch exhaustively over the two
// cases instead of inspecting types ad hoc.
type Cell interface {
	isCell()
}

// A Slot is an empty board cell.
type Slot struct{}

func (Slot) isCell()   {}
func (*Piece) isCell() {}

// Neighbor pairs an adjacent cell with the border of the center piece it
// touches.
type Neighbor struct {
	Dir  Border
	Pos  Coord
	Cell Cell
}

// Board is the grid the pieces are assembled on. Cells start out as Slots
// and transition Slot->Piece on placement and Piece->Slot when a placement
// is reverted.
type Board struct {
	rows, cols int
	grid       [][]Cell
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("board dimensions %dx%d out of range", rows, cols)
	}
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
		for c := range grid[r] {
			grid[r][c] = Slot{}
		}
	}
	return &Board{rows: rows, cols: cols, grid: grid}, nil
}

func (b *Board) Dims() (rows, cols int) {
	return b.rows, b.cols
}

// Cell returns the content at pos. Out-of-range coordinates are a
// programmer error and panic.
func (b *Board) Cell(pos Coord) Cell {
	return b.grid[pos.Row][pos.Col]
}

// PieceAt returns the piece at pos, or false if the cell is a Slot.
func (b *Board) PieceAt(pos Coord) (*Piece, bool) {
	p, ok := b.grid[pos.Row][pos.Col].(*Piece)
	return p, ok
}

// Place puts p on the board at pos and marks it placed.
func (b *Board) Place(p *Piece, pos Coord) error {
	if _, occupied := b.PieceAt(pos); occupied {
		return fmt.Errorf("cell %v already holds a piece", pos)
	}
	b.grid[pos.Row][pos.Col] = p
	p.placed = true
	p.pos = pos
	return nil
}

// Clear reverts the cell at pos to an empty Slot, clearing the placed flag
// of any piece that was there so it re-enters the unplaced pool.
func (b *Board) Clear(pos Coord) {
	if p, ok := b.PieceAt(pos); ok {
		p.placed = false
	}
	b.grid[pos.Row][pos.Col] = Slot{}
}

// Neighbors returns the adjacent cells of pos with their border direction,
// in top, right, bottom, left order.
func (b *Board) Neighbors(pos Coord) []Neighbor {
	ns := make([]Neighbor, 0, NumBorders)
	if pos.Row > 0 {
		p := Coord{pos.Row - 1, pos.Col}
		ns = append(ns, Neighbor{Top, p, b.Cell(p)})
	}
	if pos.Col < b.cols-1 {
		p := Coord{pos.Row, pos.Col + 1}
		ns = append(ns, Neighbor{Right, p, b.Cell(p)})
	}
	if pos.Row < b.rows-1 {
		p := Coord{pos.Row + 1, pos.Col}
		ns = append(ns, Neighbor{Bottom, p, b.Cell(p)})
	}
	if pos.Col > 0 {
		p := Coord{pos.Row, pos.Col - 1}
		ns = append(ns, Neighbor{Left, p, b.Cell(p)})
	}
	return ns
}

// EmptyCells returns the coordinates of all Slots in row-major order.
func (b *Board) EmptyCells() []Coord {
	var empty []Coord
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch b.grid[r][c].(type) {
			case Slot:
				empty = append(empty, Coord{r, c})
			case *Piece:
			}
		}
	}
	return empty
}

// PlacedCount returns the number of cells holding a piece.
func (b *Board) PlacedCount() int {
	rows, cols := b.Dims()
	return rows*cols - len(b.EmptyCells())
}

// String renders the grid of piece IDs, with a dot for every empty slot.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch cell := b.grid[r][c].(type) {
			case Slot:
				sb.WriteString("   .")
			case *Piece:
				fmt.Fprintf(&sb, "%4d", cell.id)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
