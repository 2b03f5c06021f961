package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"reversi/internal/board"
	"reversi/internal/controller"
	"reversi/internal/core"
	"reversi/internal/game"

	"github.com/rs/zerolog"
)

func TestNextMove(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.Move
		err   error
	}{
		{"space separated", "2 3\n", core.Move{Row: 2, Col: 3, Side: core.SideDark}, nil},
		{"comma separated", "4,5\n", core.Move{Row: 4, Col: 5, Side: core.SideDark}, nil},
		{"out of range is passed through", "9 0\n", core.Move{Row: 9, Col: 0, Side: core.SideDark}, nil},
		{"blank lines skipped", "\n   \n5 4\n", core.Move{Row: 5, Col: 4, Side: core.SideDark}, nil},
		{"exit", "exit\n", core.Move{Quit: true}, nil},
		{"quit uppercase", "QUIT\n", core.Move{Quit: true}, nil},
		{"end of input", "", core.Move{Quit: true}, nil},
		{"not a number", "abc\n", core.Move{}, core.ErrMalformedInput},
		{"column not a number", "2 x\n", core.Move{}, core.ErrMalformedInput},
		{"single number", "2\n", core.Move{}, core.ErrMalformedInput},
		{"three numbers", "1 2 3\n", core.Move{}, core.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := New(strings.NewReader(tt.input), &out)

			got, err := c.NextMove(board.New(), core.SideDark)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextMove: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextMove = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPromptNamesSide(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("exit\n"), &out)

	if _, err := c.NextMove(board.New(), core.SideLight); err != nil {
		t.Fatal(err)
	}
	want := "Turn Player W. Enter line and column or type 'exit' to finish game: "
	if !strings.HasPrefix(out.String(), want) {
		t.Errorf("prompt = %q, want %q", out.String(), want)
	}
}

func TestHelpAndHintReprompt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("help\nhint\n2 3\n"), &out)

	got, err := c.NextMove(board.New(), core.SideDark)
	if err != nil {
		t.Fatal(err)
	}
	if got.Row != 2 || got.Col != 3 {
		t.Errorf("NextMove = %+v", got)
	}

	text := out.String()
	if !strings.Contains(text, "Commands:") {
		t.Error("help text missing")
	}
	if !strings.Contains(text, "Legal moves for B: 2 3, 3 2, 4 5, 5 4") {
		t.Errorf("hint missing from output:\n%s", text)
	}
	if n := strings.Count(text, "Turn Player B."); n != 3 {
		t.Errorf("prompted %d times, want 3", n)
	}
}

func TestDisplayBoardPlain(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	b := board.New()

	c.DisplayBoard(b)
	if out.String() != b.ToASCII() {
		t.Errorf("plain display =\n%s\nwant\n%s", out.String(), b.ToASCII())
	}
}

func TestDisplayBoardThemed(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	if err := c.SetTheme(ThemeGreen); err != nil {
		t.Fatal(err)
	}

	c.DisplayBoard(board.New())
	text := out.String()
	if !strings.Contains(text, "\033[") {
		t.Error("themed display has no color codes")
	}
	if strings.Count(text, "B ") != 2 || strings.Count(text, "W ") != 2 {
		t.Errorf("unexpected disc count in:\n%q", text)
	}
}

func TestSetThemeInvalid(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})
	if err := c.SetTheme("neon"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestConsoleGame(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		outcome controller.Outcome
		expect  []string
	}{
		{
			name:    "rejects then exits",
			input:   "9 0\nfoo\n0 0\n2 3\nexit\n",
			outcome: controller.OutcomeExited,
			expect: []string{
				"Bad decision. Try again. (coordinate out of range",
				"Bad decision. Try again. (malformed input",
				"Bad decision. Try again. (move does not capture",
				"Turn Player W.",
			},
		},
		{
			name:    "end of input exits",
			input:   "2 3\n",
			outcome: controller.OutcomeExited,
			expect:  []string{"Turn Player W."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := New(strings.NewReader(tt.input), &out)
			g := game.New()

			outcome, err := controller.New(g, controller.Sources{Dark: c, Light: c}, c, zerolog.Nop()).Run()
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if outcome != tt.outcome {
				t.Errorf("outcome = %s, want %s", outcome, tt.outcome)
			}
			for _, s := range tt.expect {
				if !strings.Contains(out.String(), s) {
					t.Errorf("output missing %q:\n%s", s, out.String())
				}
			}
			if g.Board().At(2, 3) != core.CellDark {
				t.Error("2 3 was not played")
			}
		})
	}
}

func TestConsolePassAndGameOver(t *testing.T) {
	b, err := board.Parse(`WB...... ........ ........ ........ ........ ........ ........ ........`)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	c := New(strings.NewReader("0 2\n"), &out)
	g := game.NewFromBoard(b, core.SideDark)

	outcome, err := controller.New(g, controller.Sources{Dark: c, Light: c}, c, zerolog.Nop()).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != controller.OutcomeOver {
		t.Errorf("outcome = %s, want over", outcome)
	}

	text := out.String()
	for _, s := range []string{"Player B pass move.", "Turn Player W.", "Game is Over! (1 moves, 1 passes)"} {
		if !strings.Contains(text, s) {
			t.Errorf("output missing %q:\n%s", s, text)
		}
	}
	if strings.Contains(text, "Turn Player B.") {
		t.Error("passing side was prompted")
	}
}

func TestHistoryCommand(t *testing.T) {
	b, err := board.Parse(`WB...... ........ ........ ........ ........ ........ ........ ........`)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	c := New(strings.NewReader("history\n0 2\n"), &out)
	g := game.NewFromBoard(b, core.SideDark)
	c.Follow(g)

	if _, err := controller.New(g, controller.Sources{Dark: c, Light: c}, c, zerolog.Nop()).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "1. B pass") {
		t.Errorf("history missing the pass:\n%s", text)
	}
	if n := strings.Count(text, "Turn Player W."); n != 2 {
		t.Errorf("prompted light %d times, want 2", n)
	}
	if g.Board().At(0, 2) != core.CellLight {
		t.Error("move after history was not played")
	}
}

func TestHistoryListsMoves(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("2 3\nhistory\nexit\n"), &out)
	g := game.New()
	c.Follow(g)

	if _, err := controller.New(g, controller.Sources{Dark: c, Light: c}, c, zerolog.Nop()).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "1. B 2 3") {
		t.Errorf("history missing the move:\n%s", out.String())
	}
}

func TestHistoryWithoutGame(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("history\nexit\n"), &out)

	if _, err := c.NextMove(board.New(), core.SideDark); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No moves yet.") {
		t.Errorf("output = %q", out.String())
	}
}
