package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

type playerRow struct {
	player      match.Player
	goals       int
	yellowCards int
	redCards    int
}

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[int64]match.Match
	teams   map[int64]match.Team
	players map[int64]playerRow
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		matches: make(map[int64]match.Match),
		teams:   make(map[int64]match.Team),
		players: make(map[int64]playerRow),
	}
}

func (r *MatchRepository) UpsertMatches(_ context.Context, rows []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		if row.ID <= 0 {
			continue
		}
		r.matches[row.ID] = row
	}
	return nil
}

func (r *MatchRepository) UpsertTeams(_ context.Context, rows []match.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		if row.ID <= 0 {
			continue
		}
		r.teams[row.ID] = row
	}
	return nil
}

func (r *MatchRepository) UpsertPlayers(_ context.Context, rows []match.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		if row.ID <= 0 {
			continue
		}
		existing := r.players[row.ID]
		existing.player = row
		r.players[row.ID] = existing
	}
	return nil
}

func (r *MatchRepository) LastMatchDate(context.Context) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last time.Time
	found := false
	for _, row := range r.matches {
		if !found || row.Date.After(last) {
			last = row.Date
			found = true
		}
	}
	return last, found, nil
}

func (r *MatchRepository) UpdatePlayerTotals(_ context.Context, playerName string, goals, yellowCards, redCards int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, row := range r.players {
		if row.player.Name != playerName {
			continue
		}
		row.goals = goals
		row.yellowCards = yellowCards
		row.redCards = redCards
		r.players[id] = row
		return nil
	}
	return fmt.Errorf("%w: player %s", usecase.ErrNotFound, playerName)
}
