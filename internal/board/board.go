package board

import (
	"fmt"
	"strings"

	"reversi/internal/core"
)

const Size = 8

// Compass directions scanned for capture lines
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Square is a board coordinate
type Square struct {
	Row int
	Col int
}

func (s Square) String() string {
	return fmt.Sprintf("%d %d", s.Row, s.Col)
}

type Board struct {
	squares [Size][Size]core.Cell
}

// New returns the standard starting position
func New() *Board {
	b := &Board{}
	b.squares[3][3] = core.CellLight
	b.squares[4][4] = core.CellLight
	b.squares[3][4] = core.CellDark
	b.squares[4][3] = core.CellDark
	return b
}

// InBounds reports whether (row, col) lies on the board
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (b *Board) At(row, col int) core.Cell {
	if !InBounds(row, col) {
		return core.CellEmpty
	}
	return b.squares[row][col]
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// IsValidMove reports whether side may play at (row, col).
// The coordinate must already be in range.
func (b *Board) IsValidMove(row, col int, side core.Side) bool {
	if b.squares[row][col] != core.CellEmpty {
		return false
	}

	for _, d := range directions {
		if b.hasCapture(row, col, d[0], d[1], side) {
			return true
		}
	}
	return false
}

// PlacePiece puts side's disc on (row, col) and flips every captured line.
// Caller must have checked IsValidMove. Returns the number of flipped discs.
func (b *Board) PlacePiece(row, col int, side core.Side) int {
	b.squares[row][col] = side.Cell()

	flipped := 0
	for _, d := range directions {
		if b.hasCapture(row, col, d[0], d[1], side) {
			flipped += b.flip(row, col, d[0], d[1], side)
		}
	}
	return flipped
}

func (b *Board) HasEmptyCells() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.squares[r][c] == core.CellEmpty {
				return true
			}
		}
	}
	return false
}

func (b *Board) HasValidMove(side core.Side) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.squares[r][c] == core.CellEmpty && b.IsValidMove(r, c, side) {
				return true
			}
		}
	}
	return false
}

// ValidMoves lists every legal square for side in row-major order
func (b *Board) ValidMoves(side core.Side) []Square {
	var moves []Square
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.IsValidMove(r, c, side) {
				moves = append(moves, Square{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Occupied counts non-empty squares
func (b *Board) Occupied() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.squares[r][c] != core.CellEmpty {
				n++
			}
		}
	}
	return n
}

// hasCapture scans from (row, col) in direction (dRow, dCol) for one or more
// opponent discs closed by a disc of side
func (b *Board) hasCapture(row, col, dRow, dCol int, side core.Side) bool {
	opponent := core.Opponent(side).Cell()
	own := side.Cell()

	r, c := row+dRow, col+dCol
	found := false
	for InBounds(r, c) {
		switch b.squares[r][c] {
		case opponent:
			found = true
		case own:
			return found
		default:
			return false
		}
		r += dRow
		c += dCol
	}
	return false
}

// flip relies on hasCapture having seen the closing own disc
func (b *Board) flip(row, col, dRow, dCol int, side core.Side) int {
	opponent := core.Opponent(side).Cell()

	n := 0
	r, c := row+dRow, col+dCol
	for b.squares[r][c] == opponent {
		b.squares[r][c] = side.Cell()
		n++
		r += dRow
		c += dCol
	}
	return n
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")

	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for c := 0; c < Size; c++ {
			sb.WriteString(fmt.Sprintf("%c ", b.squares[r][c].Glyph()))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
