// Package registry provides a global registry for scored game factories.
// Rule sets register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

var (
	// ErrUnknownGame is returned by Create for an unregistered ID.
	ErrUnknownGame = errors.New("unknown game")

	// ErrGameOver is returned by Play once the match is complete.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidPlay is returned by Play for a value the rule set cannot record.
	ErrInvalidPlay = errors.New("invalid play")
)

// Game is the interface every rule set implements. A Game wraps one live
// scoring tree; it holds no UI state and never blocks.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "bowling", "tennis").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Ten-Pin Bowling").
	Title() string

	// Prompt returns the text shown when asking for the next play.
	Prompt() string

	// Play records one play. Bowling takes pins knocked down, tennis takes
	// the index of the player who won the point.
	Play(value int) error

	// IsComplete reports whether the match has finished.
	IsComplete() bool

	// Root returns the scoring tree, for debugging dumps.
	Root() scoring.Node

	// Scorecard returns the filled-in ASCII scorecard.
	Scorecard() string

	// Result summarizes the match for storage.
	Result() Result
}

// Result is the storable summary of a match.
type Result struct {
	Final    scoring.Score // Root score vector
	Headline int           // Single number for high-score tables
	Winner   int           // Winning player, or -1 for solo or undecided games
	Plays    int           // Plays recorded
	Detail   string        // Short human-readable breakdown
}

// Options carries per-match rule selection into a Factory.
type Options struct {
	ConfigPath string        // Custom YAML path; empty uses the normal search order
	Preset     config.Preset // Rule preset applied after loading
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new match with freshly loaded rules.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create starts a new match of the given game.
// Returns an error wrapping ErrUnknownGame if the ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
