// Package console runs a scored game over plain line-oriented text I/O.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scorekeeper/internal/registry"
)

var (
	// ErrInputClosed is returned when input ends before the game is complete.
	ErrInputClosed = errors.New("input closed before the game finished")

	// ErrQuit is returned when the player types "q" or "quit".
	ErrQuit = errors.New("player quit")
)

// Runner prompts for plays, feeds them to a game and prints the scorecard
// after each one until the game is complete.
type Runner struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(in io.Reader, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run plays g to completion. Lines that are not integers, and plays the game
// rejects, are reported and prompted for again.
func (r *Runner) Run(ctx context.Context, g registry.Game) error {
	fmt.Fprintln(r.out, g.Scorecard())

	for !g.IsComplete() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(r.out, g.Prompt())
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("console: read input: %w", err)
			}
			return ErrInputClosed
		}

		line := strings.TrimSpace(r.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return ErrQuit
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(r.out, "Not a number: %q\n", line)
			continue
		}

		if err := g.Play(value); err != nil {
			r.logger.Warn("play rejected", "game", g.ID(), "value", value, "err", err)
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}
		r.logger.Debug("play", "game", g.ID(), "value", value, "complete", g.IsComplete())

		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, g.Scorecard())
	}

	fmt.Fprintln(r.out, "Game over")
	return nil
}
