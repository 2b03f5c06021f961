package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

var errInterrupt = errors.New("interrupted")

// lineReader prompts for and returns one line of input.
// It returns io.EOF when input is exhausted.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type scannerReader struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func newScannerReader(input io.Reader, output io.Writer) *scannerReader {
	return &scannerReader{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

func (s *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.output, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scannerReader) Close() error {
	return nil
}

type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(historyPath string) (*readlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errInterrupt
	}
	return line, err
}

func (r *readlineReader) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}
