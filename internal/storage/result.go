package storage

import "github.com/vovakirdan/scorekeeper/internal/registry"

// NewResultEntry converts a finished match summary into a row for SaveResult.
func NewResultEntry(gameID, player string, r registry.Result) ResultEntry {
	return ResultEntry{
		GameID:   gameID,
		Player:   player,
		Score:    r.Final,
		Headline: r.Headline,
		Winner:   r.Winner,
		Plays:    r.Plays,
		Detail:   r.Detail,
	}
}

// SaveGame stores the result of a completed game under the given player.
func (s *Store) SaveGame(g registry.Game, player string) (string, error) {
	return s.SaveResult(NewResultEntry(g.ID(), player, g.Result()))
}
