package memory

import (
	"context"
	"sync"

	"github.com/openpitch/statsbomb-api/internal/domain/stats"
)

type PlayerStatsRepository struct {
	mu      sync.RWMutex
	byMatch map[int64]map[string]stats.PlayerAggregate
}

func NewPlayerStatsRepository() *PlayerStatsRepository {
	return &PlayerStatsRepository{
		byMatch: make(map[int64]map[string]stats.PlayerAggregate),
	}
}

func (r *PlayerStatsRepository) UpsertMatchStats(_ context.Context, matchID int64, aggregates []stats.PlayerAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, ok := r.byMatch[matchID]
	if !ok {
		rows = make(map[string]stats.PlayerAggregate, len(aggregates))
		r.byMatch[matchID] = rows
	}
	for _, agg := range aggregates {
		rows[agg.Name] = agg
	}
	return nil
}

func (r *PlayerStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]stats.PlayerAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byMatch[matchID]
	out := make([]stats.PlayerAggregate, 0, len(rows))
	for _, agg := range rows {
		out = append(out, agg)
	}
	return out, nil
}

func (r *PlayerStatsRepository) SeasonCardTotals(_ context.Context) (map[string]stats.CardTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]stats.CardTotals)
	for _, rows := range r.byMatch {
		for _, agg := range rows {
			total := out[agg.Name]
			total.Player = agg.Name
			total.Team = agg.Team
			total.Goals += agg.Goals
			total.YellowCards += agg.YellowCards
			total.RedCards += agg.RedCards
			out[agg.Name] = total
		}
	}
	return out, nil
}

type TeamStatsRepository struct {
	mu      sync.RWMutex
	byMatch map[int64]map[string]stats.TeamAggregate
}

func NewTeamStatsRepository() *TeamStatsRepository {
	return &TeamStatsRepository{
		byMatch: make(map[int64]map[string]stats.TeamAggregate),
	}
}

func (r *TeamStatsRepository) UpsertMatchStats(_ context.Context, matchID int64, aggregates []stats.TeamAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, ok := r.byMatch[matchID]
	if !ok {
		rows = make(map[string]stats.TeamAggregate, len(aggregates))
		r.byMatch[matchID] = rows
	}
	for _, agg := range aggregates {
		rows[agg.Team] = agg
	}
	return nil
}

func (r *TeamStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]stats.TeamAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byMatch[matchID]
	out := make([]stats.TeamAggregate, 0, len(rows))
	for _, agg := range rows {
		out = append(out, agg)
	}
	return out, nil
}
