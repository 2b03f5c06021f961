package game

import (
	"fmt"

	"reversi/internal/board"
	"reversi/internal/core"

	"github.com/google/uuid"
)

// Entry is one turn in the game log
type Entry struct {
	Side    core.Side
	Square  board.Square // Zero value for passes
	Pass    bool
	Flipped int
}

func (e Entry) String() string {
	if e.Pass {
		return fmt.Sprintf("%s pass", e.Side)
	}
	return fmt.Sprintf("%s %s", e.Side, e.Square)
}

type Game struct {
	id      string
	board   *board.Board
	turn    core.Side
	state   core.State
	entries []Entry
}

// New starts a game on the standard opening position with dark to move
func New() *Game {
	return NewFromBoard(board.New(), core.SideDark)
}

// NewFromBoard starts a game from an arbitrary position
func NewFromBoard(b *board.Board, turn core.Side) *Game {
	return &Game{
		id:    uuid.New().String(),
		board: b,
		turn:  turn,
		state: core.StateOngoing,
	}
}

func (g *Game) ID() string {
	return g.id
}

// Board returns the live board; callers outside the controller must treat it as read-only
func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Turn() core.Side {
	return g.turn
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) Entries() []Entry {
	return g.entries
}

// Validate checks a move against range, turn order and the capture rule
// without touching the board
func (g *Game) Validate(m core.Move) error {
	if g.state != core.StateOngoing {
		return fmt.Errorf("game is %s", g.state)
	}
	if err := m.ValidateRange(); err != nil {
		return err
	}
	if m.Side != g.turn {
		return fmt.Errorf("%w: it is %s's turn", core.ErrIllegalMove, g.turn)
	}
	if !g.board.IsValidMove(m.Row, m.Col, m.Side) {
		return fmt.Errorf("%w: %s at %d %d", core.ErrIllegalMove, m.Side, m.Row, m.Col)
	}
	return nil
}

// Apply places a validated move and hands the turn to the opponent
func (g *Game) Apply(m core.Move) (int, error) {
	if err := g.Validate(m); err != nil {
		return 0, err
	}

	flipped := g.board.PlacePiece(m.Row, m.Col, m.Side)
	g.entries = append(g.entries, Entry{
		Side:    m.Side,
		Square:  board.Square{Row: m.Row, Col: m.Col},
		Flipped: flipped,
	})
	g.turn = core.Opponent(g.turn)
	return flipped, nil
}

// Pass records a forced pass for the side to move
func (g *Game) Pass() {
	g.entries = append(g.entries, Entry{Side: g.turn, Pass: true})
	g.turn = core.Opponent(g.turn)
}

// End moves the game out of the ongoing state
func (g *Game) End(state core.State) {
	g.state = state
}
