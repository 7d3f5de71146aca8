package usecase

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/openpitch/statsbomb-api/internal/domain/stats"
	"github.com/openpitch/statsbomb-api/internal/platform/cache"
)

// StatsService computes per-match aggregates from the raw event feed.
// Aggregation is deterministic for a given event sequence, so results are
// cached per match.
type StatsService struct {
	provider StatsProvider
	cache    *cache.Store
}

func NewStatsService(provider StatsProvider, store *cache.Store) *StatsService {
	return &StatsService{
		provider: provider,
		cache:    store,
	}
}

// PlayerStats returns per-player aggregates for a match, sorted by player name.
func (s *StatsService) PlayerStats(ctx context.Context, matchID int64) ([]stats.PlayerAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.PlayerStats")
	defer span.End()
	span.SetAttributes(attribute.Int64("match.id", matchID))

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	key := fmt.Sprintf("player-stats:%d", matchID)
	value, err := s.getOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		events, err := s.provider.Events(ctx, matchID)
		if err != nil {
			return nil, fmt.Errorf("load events for player stats: %w", err)
		}

		byPlayer := stats.AggregatePlayers(events)
		out := make([]stats.PlayerAggregate, 0, len(byPlayer))
		for _, agg := range byPlayer {
			out = append(out, agg)
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]stats.PlayerAggregate)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}
	return out, nil
}

// TeamStats returns per-team aggregates for a match, sorted by team name.
func (s *StatsService) TeamStats(ctx context.Context, matchID int64) ([]stats.TeamAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.TeamStats")
	defer span.End()
	span.SetAttributes(attribute.Int64("match.id", matchID))

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	key := fmt.Sprintf("team-stats:%d", matchID)
	value, err := s.getOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		events, err := s.provider.Events(ctx, matchID)
		if err != nil {
			return nil, fmt.Errorf("load events for team stats: %w", err)
		}

		byTeam := stats.AggregateTeams(events)
		out := make([]stats.TeamAggregate, 0, len(byTeam))
		for _, agg := range byTeam {
			out = append(out, agg)
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Team < out[j].Team })
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]stats.TeamAggregate)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}
	return out, nil
}

func (s *StatsService) getOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}
