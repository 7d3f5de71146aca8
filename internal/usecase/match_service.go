package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
	"github.com/openpitch/statsbomb-api/internal/domain/event"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/platform/cache"
)

// MatchService exposes the raw open-data views: competitions, fixtures, event
// streams and lineups. Aggregation lives in StatsService.
type MatchService struct {
	provider StatsProvider
	mapping  competition.Mapping
	cache    *cache.Store
}

func NewMatchService(provider StatsProvider, mapping competition.Mapping, store *cache.Store) *MatchService {
	return &MatchService{
		provider: provider,
		mapping:  mapping,
		cache:    store,
	}
}

// Competitions lists every competition/season pairing the feed publishes.
func (s *MatchService) Competitions(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Competitions")
	defer span.End()

	value, err := s.getOrLoad(ctx, "competitions", func(ctx context.Context) (any, error) {
		rows, err := s.provider.Competitions(ctx)
		if err != nil {
			return nil, fmt.Errorf("list competitions: %w", err)
		}

		out := make([]competition.Competition, 0, len(rows))
		for _, row := range rows {
			out = append(out, competition.Competition{
				ID:             row.CompetitionID,
				SeasonID:       row.SeasonID,
				Name:           row.CompetitionName,
				SeasonName:     row.SeasonName,
				CountryName:    row.CountryName,
				Gender:         row.Gender,
				MatchUpdated:   row.MatchUpdated,
				MatchAvailable: row.MatchAvailable,
			})
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].ID != out[j].ID {
				return out[i].ID < out[j].ID
			}
			return out[i].SeasonID < out[j].SeasonID
		})
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]competition.Competition)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}
	return out, nil
}

// MatchesByCode resolves a short competition code and returns its matches.
// With seasonID zero, every season the feed carries for that competition is
// fetched and merged.
func (s *MatchService) MatchesByCode(ctx context.Context, code string, seasonID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.MatchesByCode")
	defer span.End()
	span.SetAttributes(attribute.String("competition.code", code))

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: competition code is required", ErrInvalidInput)
	}

	competitionID, ok := s.mapping.CompetitionID(code)
	if !ok {
		return nil, fmt.Errorf("%w: competition %s", ErrNotFound, code)
	}

	if seasonID > 0 {
		key := fmt.Sprintf("matches:%d:%d", competitionID, seasonID)
		return s.loadMatches(ctx, key, func(ctx context.Context) ([]match.Match, error) {
			return s.provider.Matches(ctx, competitionID, seasonID)
		})
	}

	key := fmt.Sprintf("matches:%d:all", competitionID)
	return s.loadMatches(ctx, key, func(ctx context.Context) ([]match.Match, error) {
		seasonIDs, err := s.seasonIDs(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		if len(seasonIDs) == 0 {
			return nil, fmt.Errorf("%w: no seasons available for competition %s", ErrNotFound, code)
		}
		return s.provider.MatchesForSeasons(ctx, competitionID, seasonIDs)
	})
}

// Events returns the normalized event stream for one match, in feed order.
func (s *MatchService) Events(ctx context.Context, matchID int64) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Events")
	defer span.End()
	span.SetAttributes(attribute.Int64("match.id", matchID))

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	key := fmt.Sprintf("events:%d", matchID)
	value, err := s.getOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.provider.Events(ctx, matchID)
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]event.Event)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}
	return out, nil
}

func (s *MatchService) Lineups(ctx context.Context, matchID int64) ([]match.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Lineups")
	defer span.End()
	span.SetAttributes(attribute.Int64("match.id", matchID))

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	key := fmt.Sprintf("lineups:%d", matchID)
	value, err := s.getOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.provider.Lineups(ctx, matchID)
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]match.Lineup)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}
	return out, nil
}

func (s *MatchService) seasonIDs(ctx context.Context, competitionID int64) ([]int64, error) {
	rows, err := s.provider.Competitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]int64, 0, 8)
	for _, row := range rows {
		if row.CompetitionID == competitionID && row.SeasonID > 0 {
			out = append(out, row.SeasonID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out, nil
}

func (s *MatchService) loadMatches(ctx context.Context, key string, loader func(context.Context) ([]match.Match, error)) ([]match.Match, error) {
	value, err := s.getOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]match.Match)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}
	return out, nil
}

func (s *MatchService) getOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}
