// Package scoring implements a generic scoring tree for games built from
// rounds within rounds: a bowling game is frames of throws, a tennis match is
// sets of games of points.
//
// A tree is composed from a small closed set of node variants: Leaf records a
// single play, Sequence grows sub-rounds from a template, and the Bonus,
// WinnerPoint and Branch decorators adjust how a wrapped round scores or which
// structure receives play. Game rules are supplied as predicate closures when
// the template tree is wired; the engine itself knows nothing about any game.
//
// Trees are not safe for concurrent use. Run one tree per match and never
// share a node between two trees. Templates may be shared, because cloning
// only reads them.
package scoring

import (
	"errors"
	"fmt"
)

// Node is the capability set shared by every node in a scoring tree.
type Node interface {
	// RecordPlay applies one play event. It is a no-op once the node is complete.
	RecordPlay(player, value int)

	// IsComplete reports whether the round this node represents has finished.
	// Completion is monotonic.
	IsComplete() bool

	// Score returns the per-player tally. It never mutates state.
	Score() Score

	// PlayCount returns the number of plays or sub-rounds seen so far.
	// The exact meaning depends on the variant.
	PlayCount() int

	// Children returns the sub-rounds in creation order. Callers must not
	// modify the returned slice.
	Children() []Node

	// CloneAsChild builds a fresh, unplayed node from this node's configuration,
	// placed at the given ordinal under its parent.
	CloneAsChild(ordinal int) Node

	// Name returns the debug name given at construction.
	Name() string

	// Ordinal returns the node's position under its parent.
	Ordinal() int
}

// CompletionFunc decides whether a Sequence is finished. It receives the
// sequence's ordinal, the number of sub-rounds created so far and the current
// aggregate score, all evaluated after the latest play.
type CompletionFunc func(ordinal, plays int, score Score) bool

// BonusFunc decides whether a Bonus has stopped collecting extra plays. It
// receives the total play count (downstream plays plus bonus plays) and the
// downstream score for player 0.
type BonusFunc func(plays, score int) bool

// SwitchFunc decides whether a Branch has diverted to its second structure.
// It receives the branch's ordinal and the play count and score of the first
// structure.
type SwitchFunc func(ordinal, plays int, score Score) bool

var (
	// ErrNilTemplate is returned when a Sequence is built without a template child.
	ErrNilTemplate = errors.New("nil template child")

	// ErrNilDownstream is returned when a decorator is built without the node it wraps.
	ErrNilDownstream = errors.New("nil downstream node")

	// ErrNilPredicate is returned when a required predicate is missing.
	ErrNilPredicate = errors.New("nil predicate")
)

func configError(kind, name string, err error) error {
	return fmt.Errorf("scoring: %s %q: %w", kind, name, err)
}

// Must returns n, panicking if err is non-nil. It is intended for statically
// wired templates where a configuration error is a programming mistake.
func Must[T Node](n T, err error) T {
	if err != nil {
		panic(err)
	}
	return n
}
