package core

// Cell is the content of a single board square
type Cell byte

const (
	CellEmpty Cell = iota
	CellDark
	CellLight
)

// Glyph returns the single-character marker used by the console grid
func (c Cell) Glyph() byte {
	switch c {
	case CellDark:
		return 'B'
	case CellLight:
		return 'W'
	default:
		return '.'
	}
}

// Side is one of the two competing colors
type Side byte

const (
	SideDark  = Side(CellDark)
	SideLight = Side(CellLight)
)

func (s Side) Cell() Cell {
	return Cell(s)
}

func (s Side) String() string {
	switch s {
	case SideDark:
		return "B"
	case SideLight:
		return "W"
	default:
		return "-"
	}
}

func (s Side) Name() string {
	switch s {
	case SideDark:
		return "dark"
	case SideLight:
		return "light"
	default:
		return "none"
	}
}

func Opponent(s Side) Side {
	if s == SideDark {
		return SideLight
	}
	return SideDark
}

type State int

const (
	StateOngoing State = iota
	StateOver          // Neither side can move
	StateExited        // A player asked to end the game
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateOver:
		return "over"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}
