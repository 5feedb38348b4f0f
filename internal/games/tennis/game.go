// Package tennis implements tennis match scoring for two players on top of
// the scoring tree.
package tennis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/scorecard"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

// ID is the registry identifier of this rule set.
const ID = "tennis"

// Game is one tennis match.
type Game struct {
	cfg    config.TennisConfig
	root   scoring.Node
	card   *scorecard.Card
	points int
}

// New starts a match under the given rules.
func New(cfg config.TennisConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tennis: %w", err)
	}

	g := &Game{
		cfg:  cfg,
		root: Template(cfg).CloneAsChild(0),
	}
	card, err := scorecard.New(drawing(cfg),
		scorecard.List('M', func() []string {
			s := g.MatchScore()
			return scorecard.Ints(s[:])
		}),
		scorecard.Grid('S', func() [][]string { return setGrid(g.SetScores()) }),
		scorecard.List('G', func() []string {
			c := g.Call()
			return c[:]
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("tennis: %w", err)
	}
	g.card = card
	return g, nil
}

func init() {
	registry.Register(ID, "Tennis", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadTennis(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := config.ApplyTennisPreset(&cfg, opts.Preset); err != nil {
			return nil, err
		}
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tennis" }

// Prompt returns the input prompt.
func (g *Game) Prompt() string { return "Enter winner 0 or 1:" }

// Config returns the rules this match is played under.
func (g *Game) Config() config.TennisConfig { return g.cfg }

// Play records a point won by player 0 or 1.
func (g *Game) Play(winner int) error {
	if winner < 0 || winner >= scoring.Players {
		return fmt.Errorf("tennis: %w: no player %d", registry.ErrInvalidPlay, winner)
	}
	if g.IsComplete() {
		return registry.ErrGameOver
	}
	g.root.RecordPlay(winner, 1)
	g.points++
	return nil
}

// IsComplete reports whether a player has won the match.
func (g *Game) IsComplete() bool { return g.root.IsComplete() }

// Root returns the scoring tree.
func (g *Game) Root() scoring.Node { return g.root }

// MatchScore returns sets won by each player.
func (g *Game) MatchScore() scoring.Score { return g.root.Score() }

// SetScores returns games won by each player in every set started so far.
// A set decided by a tie-break counts the tie-break as one game.
func (g *Game) SetScores() []scoring.Score {
	sets := g.root.Children()
	out := make([]scoring.Score, len(sets))
	for i, s := range sets {
		out[i] = s.Children()[0].Score()
	}
	return out
}

// currentRound returns the game or tie-break most recently played into.
func (g *Game) currentRound() (round scoring.Node, tiebreak bool) {
	sets := g.root.Children()
	if len(sets) == 0 {
		return nil, false
	}

	set := sets[len(sets)-1].Children()[0]
	if br, ok := set.(*scoring.Branch); ok {
		if br.Switched() {
			return br.Children()[0].Children()[0], true
		}
		set = br.Children()[0]
	}

	games := set.Children()
	if len(games) == 0 {
		return nil, false
	}
	return games[len(games)-1].Children()[0], false
}

// CurrentGame returns the raw point score of the current game or tie-break.
func (g *Game) CurrentGame() scoring.Score {
	round, _ := g.currentRound()
	if round == nil {
		return scoring.Score{}
	}
	return round.Score()
}

// InTiebreak reports whether the current set has gone to a tie-break.
func (g *Game) InTiebreak() bool {
	_, tiebreak := g.currentRound()
	return tiebreak
}

// Call returns the umpire's call for each player in the current game, or the
// raw points during a tie-break. Both are empty before the first point.
func (g *Game) Call() [2]string {
	round, tiebreak := g.currentRound()
	switch {
	case round == nil:
		return [2]string{}
	case tiebreak:
		s := round.Score()
		return [2]string{strconv.Itoa(s[0]), strconv.Itoa(s[1])}
	default:
		return Call(round.Score(), g.cfg.Game)
	}
}

// GameCall formats the current game as a single line, for example "30,15",
// "deuce", "adv 1" or "win 0".
func (g *Game) GameCall() string {
	c := g.Call()
	if c == [2]string{} {
		return ""
	}
	for p, s := range c {
		switch s {
		case "game":
			return "win " + strconv.Itoa(p)
		case "adv":
			return "adv " + strconv.Itoa(p)
		case "deuce":
			return "deuce"
		}
	}
	return c[0] + "," + c[1]
}

// Scorecard renders the ASCII scorecard.
func (g *Game) Scorecard() string { return g.card.Render() }

// Result summarizes the match for storage. The headline is the winner's
// set count.
func (g *Game) Result() registry.Result {
	winner := -1
	if g.IsComplete() {
		if p, ok := g.MatchScore().Leader(); ok {
			winner = p
		}
	}

	sets := g.SetScores()
	detail := make([]string, len(sets))
	for i, s := range sets {
		detail[i] = s.String()
	}

	return registry.Result{
		Final:    g.MatchScore(),
		Headline: g.MatchScore().Max(),
		Winner:   winner,
		Plays:    g.points,
		Detail:   strings.Join(detail, " "),
	}
}

func setGrid(sets []scoring.Score) [][]string {
	rows := make([][]int, len(sets))
	for i, s := range sets {
		rows[i] = s[:]
	}
	return scorecard.IntGrid(rows)
}
