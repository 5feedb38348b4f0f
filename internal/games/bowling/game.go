// Package bowling implements ten-pin bowling scoring for a single player on
// top of the scoring tree.
package bowling

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/scorecard"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

// ID is the registry identifier of this rule set.
const ID = "bowling"

// Game is one player's bowling game.
type Game struct {
	cfg  config.BowlingConfig
	root scoring.Node
	card *scorecard.Card
}

// New starts a game under the given rules.
func New(cfg config.BowlingConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bowling: %w", err)
	}

	g := &Game{
		cfg:  cfg,
		root: Template(cfg).CloneAsChild(0),
	}
	card, err := scorecard.New(drawing(cfg),
		scorecard.Grid('F', g.Marks),
		scorecard.List('T', func() []string { return scorecard.Ints(g.CumulativeScores()) }),
	)
	if err != nil {
		return nil, fmt.Errorf("bowling: %w", err)
	}
	g.card = card
	return g, nil
}

func init() {
	registry.Register(ID, "Ten-Pin Bowling", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadBowling(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := config.ApplyBowlingPreset(&cfg, opts.Preset); err != nil {
			return nil, err
		}
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Ten-Pin Bowling" }

// Prompt returns the input prompt.
func (g *Game) Prompt() string { return "Enter number of pins:" }

// Config returns the rules this game is played under.
func (g *Game) Config() config.BowlingConfig { return g.cfg }

// Play records one ball knocking down the given number of pins.
// Pin counts are not checked against the rack.
func (g *Game) Play(pins int) error {
	if g.IsComplete() {
		return registry.ErrGameOver
	}
	g.root.RecordPlay(0, pins)
	return nil
}

// IsComplete reports whether all frames have been bowled.
func (g *Game) IsComplete() bool { return g.root.IsComplete() }

// Root returns the scoring tree.
func (g *Game) Root() scoring.Node { return g.root }

// Frames returns the number of frames started so far.
func (g *Game) Frames() int { return len(g.root.Children()) }

// FrameThrows returns the pins knocked down by each ball, frame by frame.
func (g *Game) FrameThrows() [][]int {
	frames := g.root.Children()
	out := make([][]int, len(frames))
	for i, f := range frames {
		balls := f.Children()
		throws := make([]int, len(balls))
		for j, b := range balls {
			throws[j] = b.Score()[0]
		}
		out[i] = throws
	}
	return out
}

// FrameScores returns each frame's score including any bonus earned so far.
func (g *Game) FrameScores() []int {
	frames := g.root.Children()
	out := make([]int, len(frames))
	for i, f := range frames {
		out[i] = f.Score()[0]
	}
	return out
}

// CumulativeScores returns the running total after each frame.
func (g *Game) CumulativeScores() []int {
	scores := g.FrameScores()
	total := 0
	for i, s := range scores {
		total += s
		scores[i] = total
	}
	return scores
}

// Total returns the game score so far.
func (g *Game) Total() int { return g.root.Score()[0] }

// Marks returns the scorecard notation for every frame.
func (g *Game) Marks() [][]string { return Marks(g.FrameThrows(), g.cfg) }

// Scorecard renders the ASCII scorecard.
func (g *Game) Scorecard() string { return g.card.Render() }

// Result summarizes the game for storage. Bowling is solo, so there is no winner.
func (g *Game) Result() registry.Result {
	plays := 0
	frames := make([]string, 0, g.Frames())
	for _, marks := range g.Marks() {
		plays += countThrows(marks)
		frames = append(frames, strings.Join(marks, ""))
	}
	return registry.Result{
		Final:    g.root.Score(),
		Headline: g.Total(),
		Winner:   -1,
		Plays:    plays,
		Detail:   strings.Join(frames, " "),
	}
}

func countThrows(marks []string) int {
	n := 0
	for _, m := range marks {
		if m != "" {
			n++
		}
	}
	return n
}
