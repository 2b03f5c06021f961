package controller

import (
	"fmt"

	"reversi/internal/board"
	"reversi/internal/core"
	"reversi/internal/game"

	"github.com/rs/zerolog"
)

// MoveSource supplies moves for one side. A move with Quit set ends the game.
// Errors wrapping core.ErrMalformedInput are retried; any other error aborts Run.
type MoveSource interface {
	NextMove(b *board.Board, side core.Side) (core.Move, error)
}

// View abstracts display operations
type View interface {
	DisplayBoard(b *board.Board)
	ShowPass(side core.Side)
	ShowError(err error)
	ShowGameOver(g *game.Game)
}

// Sources holds one move source per side
type Sources struct {
	Dark  MoveSource
	Light MoveSource
}

func (s Sources) For(side core.Side) MoveSource {
	if side == core.SideDark {
		return s.Dark
	}
	return s.Light
}

type Outcome int

const (
	OutcomeOver    Outcome = iota // Neither side had a legal move
	OutcomeExited                 // A move source asked to stop
	OutcomeAborted                // A collaborator failed; Run also returns the error
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExited:
		return "exited"
	case OutcomeAborted:
		return "aborted"
	default:
		return "over"
	}
}

type Controller struct {
	game    *game.Game
	sources Sources
	view    View
	log     zerolog.Logger
}

func New(g *game.Game, sources Sources, view View, log zerolog.Logger) *Controller {
	return &Controller{
		game:    g,
		sources: sources,
		view:    view,
		log:     log.With().Str("game_id", g.ID()).Logger(),
	}
}

// Run drives the game until it is over or a player exits
func (c *Controller) Run() (Outcome, error) {
	b := c.game.Board()

	for {
		c.view.DisplayBoard(b)

		side := c.game.Turn()
		if !b.HasValidMove(side) {
			if !b.HasValidMove(core.Opponent(side)) {
				c.game.End(core.StateOver)
				c.log.Debug().
					Int("occupied", b.Occupied()).
					Bool("board_full", !b.HasEmptyCells()).
					Msg("game over")
				c.view.ShowGameOver(c.game)
				return OutcomeOver, nil
			}

			c.log.Debug().Str("side", side.Name()).Msg("pass")
			c.game.Pass()
			c.view.ShowPass(side)
			continue
		}

		quit, err := c.playTurn(side)
		if err != nil {
			return OutcomeAborted, err
		}
		if quit {
			c.game.End(core.StateExited)
			c.log.Debug().Str("side", side.Name()).Msg("exit requested")
			return OutcomeExited, nil
		}
	}
}

// playTurn asks the side's source until it yields an applicable move or quits
func (c *Controller) playTurn(side core.Side) (bool, error) {
	src := c.sources.For(side)
	if src == nil {
		return false, fmt.Errorf("no move source for %s", side.Name())
	}

	for {
		// Sources get a copy so they cannot touch the live board
		m, err := src.NextMove(c.game.Board().Clone(), side)
		if err != nil {
			if core.IsInputError(err) {
				c.reject(side, err)
				continue
			}
			return false, fmt.Errorf("move source for %s: %w", side.Name(), err)
		}
		if m.Quit {
			return true, nil
		}

		m.Side = side
		flipped, err := c.game.Apply(m)
		if err != nil {
			if core.IsInputError(err) {
				c.reject(side, err)
				continue
			}
			return false, err
		}

		c.log.Debug().
			Str("side", side.Name()).
			Int("row", m.Row).
			Int("col", m.Col).
			Int("flipped", flipped).
			Msg("move applied")
		return false, nil
	}
}

func (c *Controller) reject(side core.Side, err error) {
	c.log.Debug().Err(err).Str("side", side.Name()).Msg("move rejected")
	c.view.ShowError(err)
}
