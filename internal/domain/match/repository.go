package match

import (
	"context"
	"time"
)

// Repository persists matches and the teams/players they reference.
type Repository interface {
	UpsertMatches(ctx context.Context, matches []Match) error
	UpsertTeams(ctx context.Context, teams []Team) error
	UpsertPlayers(ctx context.Context, players []Player) error
	// LastMatchDate returns the date of the newest stored match; ok is false
	// when no matches are stored yet.
	LastMatchDate(ctx context.Context) (time.Time, bool, error)
	UpdatePlayerTotals(ctx context.Context, playerName string, goals, yellowCards, redCards int) error
}
