package usecase

import (
	"context"

	"github.com/openpitch/statsbomb-api/internal/domain/event"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
)

// ProviderCompetition is one competition/season pairing as published by the
// open-data feed. A competition appears once per available season.
type ProviderCompetition struct {
	CompetitionID   int64
	SeasonID        int64
	CompetitionName string
	SeasonName      string
	CountryName     string
	Gender          string
	MatchUpdated    string
	MatchAvailable  string
}

// StatsProvider fetches raw match data from the open-data feed.
type StatsProvider interface {
	Competitions(ctx context.Context) ([]ProviderCompetition, error)
	Matches(ctx context.Context, competitionID, seasonID int64) ([]match.Match, error)
	MatchesForSeasons(ctx context.Context, competitionID int64, seasonIDs []int64) ([]match.Match, error)
	Events(ctx context.Context, matchID int64) ([]event.Event, error)
	Lineups(ctx context.Context, matchID int64) ([]match.Lineup, error)
}
