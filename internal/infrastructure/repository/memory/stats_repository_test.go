package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openpitch/statsbomb-api/internal/domain/stats"
)

func TestPlayerStatsRepository_UpsertAndList(t *testing.T) {
	t.Parallel()

	repo := NewPlayerStatsRepository()
	ctx := context.Background()

	err := repo.UpsertMatchStats(ctx, 1, []stats.PlayerAggregate{
		{Name: "Kylian Mbappé", Team: "France", Goals: 2, YellowCards: 1},
		{Name: "Luka Modrić", Team: "Croatia", Goals: 1},
	})
	require.NoError(t, err)

	// Re-upserting the same player replaces the row instead of duplicating it.
	err = repo.UpsertMatchStats(ctx, 1, []stats.PlayerAggregate{
		{Name: "Kylian Mbappé", Team: "France", Goals: 3, YellowCards: 1},
	})
	require.NoError(t, err)

	rows, err := repo.ListByMatch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := make(map[string]stats.PlayerAggregate, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}
	require.Equal(t, 3, byName["Kylian Mbappé"].Goals)
	require.Equal(t, 1, byName["Luka Modrić"].Goals)
}

func TestPlayerStatsRepository_SeasonCardTotals(t *testing.T) {
	t.Parallel()

	repo := NewPlayerStatsRepository()
	ctx := context.Background()

	require.NoError(t, repo.UpsertMatchStats(ctx, 1, []stats.PlayerAggregate{
		{Name: "Kylian Mbappé", Team: "France", Goals: 2, YellowCards: 1},
	}))
	require.NoError(t, repo.UpsertMatchStats(ctx, 2, []stats.PlayerAggregate{
		{Name: "Kylian Mbappé", Team: "France", Goals: 1, RedCards: 1},
	}))

	totals, err := repo.SeasonCardTotals(ctx)
	require.NoError(t, err)

	total := totals["Kylian Mbappé"]
	require.Equal(t, 3, total.Goals)
	require.Equal(t, 1, total.YellowCards)
	require.Equal(t, 1, total.RedCards)
	require.Equal(t, "France", total.Team)
}

func TestTeamStatsRepository_UpsertAndList(t *testing.T) {
	t.Parallel()

	repo := NewTeamStatsRepository()
	ctx := context.Background()

	require.NoError(t, repo.UpsertMatchStats(ctx, 9, []stats.TeamAggregate{
		{Team: "France", Goals: 4, Corners: 2},
		{Team: "Croatia", Goals: 2, Fouls: 11},
	}))

	rows, err := repo.ListByMatch(ctx, 9)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	empty, err := repo.ListByMatch(ctx, 404)
	require.NoError(t, err)
	require.Empty(t, empty)
}
