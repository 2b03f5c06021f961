package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi/internal/board"
	"reversi/internal/controller"
	"reversi/internal/core"
	"reversi/internal/game"
)

var _ controller.MoveSource = (*CLI)(nil)
var _ controller.View = (*CLI)(nil)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdHint
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
	ThemeBrown ColorTheme = "brown"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	header  string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeGreen: {
		lightBg: "\033[48;5;28m",
		darkBg:  "\033[48;5;22m",
		white:   "\033[97m",
		black:   "\033[30m",
		header:  "\033[36m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m",
		darkBg:  "\033[48;5;245m",
		white:   "\033[97m",
		black:   "\033[30m",
		header:  "\033[36m",
		reset:   "\033[0m",
	},
	ThemeBrown: {
		lightBg: "\033[48;5;180m",
		darkBg:  "\033[48;5;137m",
		white:   "\033[97m",
		black:   "\033[30m",
		header:  "\033[36m",
		reset:   "\033[0m",
	},
}

// CLI is the console move source and view shared by both players
type CLI struct {
	input  lineReader
	output io.Writer
	theme  ColorTheme
	game   *game.Game // Source of the history command, may be nil
}

// New creates a console that reads plain lines from input
func New(input io.Reader, output io.Writer) *CLI {
	return &CLI{
		input:  newScannerReader(input, output),
		output: output,
		theme:  ThemeOff,
	}
}

// NewInteractive creates a console on the process terminal with line editing
// and history persisted at historyPath
func NewInteractive(historyPath string) (*CLI, error) {
	in, err := newReadlineReader(historyPath)
	if err != nil {
		return nil, err
	}
	return &CLI{
		input:  in,
		output: in.Stdout(),
		theme:  ThemeOff,
	}, nil
}

func (c *CLI) Close() error {
	return c.input.Close()
}

// Follow attaches the game whose log the history command prints
func (c *CLI) Follow(g *game.Game) {
	c.game = g
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, green, gray, brown)", theme)
	}
	c.theme = theme
	return nil
}

// NextMove prompts side until a move or an exit request is entered.
// Help, hint and history requests are answered in place.
func (c *CLI) NextMove(b *board.Board, side core.Side) (core.Move, error) {
	for {
		line, err := c.input.ReadLine(prompt(side))
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, errInterrupt) {
				c.ShowMessage("")
				return core.Move{Quit: true}, nil
			}
			return core.Move{}, err
		}

		cmd := parseCommand(line)
		switch cmd.Type {
		case CmdNone:
			continue
		case CmdQuit:
			return core.Move{Quit: true}, nil
		case CmdHelp:
			c.ShowHelp()
		case CmdHint:
			c.ShowHints(b, side)
		case CmdHistory:
			if c.game == nil {
				c.ShowHistory(nil)
			} else {
				c.ShowHistory(c.game.Entries())
			}
		case CmdMove:
			return parseMove(cmd, side)
		}
	}
}

func prompt(side core.Side) string {
	return fmt.Sprintf("Turn Player %s. Enter line and column or type 'exit' to finish game: ", side)
}

func parseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	switch strings.ToLower(parts[0]) {
	case "exit", "quit":
		return &Command{Type: CmdQuit, Raw: input}
	case "help", "?":
		return &Command{Type: CmdHelp, Raw: input}
	case "hint":
		return &Command{Type: CmdHint, Raw: input}
	case "history":
		return &Command{Type: CmdHistory, Raw: input}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	}
}

// parseMove only checks syntax; range and legality belong to the game
func parseMove(cmd *Command, side core.Side) (core.Move, error) {
	if len(cmd.Args) != 2 {
		return core.Move{}, fmt.Errorf("%w: expected line and column, got %q", core.ErrMalformedInput, cmd.Raw)
	}

	row, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return core.Move{}, fmt.Errorf("%w: line %q is not a number", core.ErrMalformedInput, cmd.Args[0])
	}
	col, err := strconv.Atoi(cmd.Args[1])
	if err != nil {
		return core.Move{}, fmt.Errorf("%w: column %q is not a number", core.ErrMalformedInput, cmd.Args[1])
	}

	return core.Move{Row: row, Col: col, Side: side}, nil
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Bad decision. Try again. (%v)", err))
}

func (c *CLI) ShowPass(side core.Side) {
	c.ShowMessage(fmt.Sprintf("Player %s pass move.", side))
}

func (c *CLI) ShowGameOver(g *game.Game) {
	moves, passes := 0, 0
	for _, e := range g.Entries() {
		if e.Pass {
			passes++
		} else {
			moves++
		}
	}
	c.ShowMessage(fmt.Sprintf("Game is Over! (%d moves, %d passes)", moves, passes))
}

// ShowHistory prints the move log, one numbered turn per line
func (c *CLI) ShowHistory(entries []game.Entry) {
	if len(entries) == 0 {
		c.ShowMessage("No moves yet.")
		return
	}
	for i, e := range entries {
		c.ShowMessage(fmt.Sprintf("%d. %s", i+1, e))
	}
}

func (c *CLI) ShowFarewell() {
	c.ShowMessage("Game is over, thank you!")
}

func (c *CLI) ShowHints(b *board.Board, side core.Side) {
	moves := b.ValidMoves(side)
	squares := make([]string, len(moves))
	for i, m := range moves {
		squares[i] = m.String()
	}
	c.ShowMessage(fmt.Sprintf("Legal moves for %s: %s", side, strings.Join(squares, ", ")))
}

func (c *CLI) DisplayBoard(b *board.Board) {
	if c.theme == ThemeOff {
		fmt.Fprint(c.output, b.ToASCII())
		return
	}

	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString(theme.header + "  0 1 2 3 4 5 6 7" + theme.reset + "\n")
	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%s%d%s ", theme.header, r, theme.reset))
		for col := 0; col < board.Size; col++ {
			bg := theme.darkBg
			if (r+col)%2 == 0 {
				bg = theme.lightBg
			}

			cell := b.At(r, col)
			switch cell {
			case core.CellDark:
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, theme.black, cell.Glyph(), theme.reset))
			case core.CellLight:
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, theme.white, cell.Glyph(), theme.reset))
			default:
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			}
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(c.output, sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <line> <column>  - Place a disc, e.g. "2 3" or "2,3"
  hint             - List the legal squares for the side to move
  history          - Show the moves and passes played so far
  quit/exit        - End the game
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Reversi!")
	c.ShowMessage("B moves first. Lines and columns are numbered 0 to 7.")
	c.ShowMessage("Type 'help' for commands.")
	c.ShowMessage("")
}
