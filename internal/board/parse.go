package board

import (
	"fmt"
	"strings"

	"reversi/internal/core"
)

// Parse builds a board from eight rows of eight glyphs ('B', 'W' or '.').
// Whitespace between rows and cells is ignored.
func Parse(layout string) (*Board, error) {
	rows := strings.Fields(layout)
	if len(rows) != Size {
		return nil, fmt.Errorf("invalid layout: expected %d rows, got %d", Size, len(rows))
	}

	b := &Board{}
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("invalid layout: row %d has %d cells", r, len(row))
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case 'B':
				b.squares[r][c] = core.CellDark
			case 'W':
				b.squares[r][c] = core.CellLight
			case '.':
				b.squares[r][c] = core.CellEmpty
			default:
				return nil, fmt.Errorf("invalid layout: unknown glyph %q at %d %d", row[c], r, c)
			}
		}
	}

	return b, nil
}
