// Package main runs a two-player Reversi game on the console.
package main

import (
	"flag"
	"fmt"
	"os"

	"reversi/internal/cli"
	"reversi/internal/config"
	"reversi/internal/controller"
	"reversi/internal/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		theme    = flag.String("theme", "", "Board color theme (off|green|gray|brown)")
		logLevel = flag.String("log-level", "", "Log level written to stderr (trace|debug|info|warn|error|disabled)")
		history  = flag.String("history", "", "Path to the input history file")
	)
	flag.Parse()

	cfg, err := config.Load(func(key string) (string, bool) {
		switch key {
		case config.EnvTheme:
			return *theme, *theme != ""
		case config.EnvLogLevel:
			return *logLevel, *logLevel != ""
		case config.EnvHistory:
			return *history, *history != ""
		}
		return "", false
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	setupLogging(cfg.LogLevel)

	view, err := newConsole(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to open console")
		return 1
	}
	defer view.Close()

	g := game.New()
	view.Follow(g)
	log.Debug().Str("game_id", g.ID()).Str("theme", cfg.Theme).Msg("starting game")

	view.ShowWelcome()
	ctrl := controller.New(g, controller.Sources{Dark: view, Light: view}, view, log.Logger)
	outcome, err := ctrl.Run()
	if err != nil {
		log.Error().Err(err).Str("game_id", g.ID()).Msg("game aborted")
		return 1
	}

	if outcome == controller.OutcomeExited {
		view.ShowFarewell()
	}
	return 0
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// newConsole uses line editing on a terminal and plain line reads otherwise
func newConsole(cfg *config.Config) (*cli.CLI, error) {
	var view *cli.CLI

	if term.IsTerminal(int(os.Stdin.Fd())) {
		path, err := cfg.HistoryPath()
		if err != nil {
			log.Warn().Err(err).Msg("input history disabled")
			path = ""
		}
		view, err = cli.NewInteractive(path)
		if err != nil {
			return nil, err
		}
	} else {
		view = cli.New(os.Stdin, os.Stdout)
	}

	theme := cli.ColorTheme(cfg.Theme)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		theme = cli.ThemeOff
	}
	if err := view.SetTheme(theme); err != nil {
		view.Close()
		return nil, err
	}
	return view, nil
}
