package stats

import "context"

// PlayerRepository persists per-match player aggregates.
type PlayerRepository interface {
	UpsertMatchStats(ctx context.Context, matchID int64, aggregates []PlayerAggregate) error
	ListByMatch(ctx context.Context, matchID int64) ([]PlayerAggregate, error)
	SeasonCardTotals(ctx context.Context) (map[string]CardTotals, error)
}

// TeamRepository persists per-match team aggregates.
type TeamRepository interface {
	UpsertMatchStats(ctx context.Context, matchID int64, aggregates []TeamAggregate) error
	ListByMatch(ctx context.Context, matchID int64) ([]TeamAggregate, error)
}

// CardTotals is a per-player season rollup of stored match aggregates.
type CardTotals struct {
	Player      string
	Team        string
	Goals       int
	YellowCards int
	RedCards    int
}
