package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/statsbomb-api/internal/domain/stats"
	qb "github.com/openpitch/statsbomb-api/internal/platform/querybuilder"
)

var playerStatsColumns = []string{
	"match_id",
	"player_name",
	"team_name",
	"goals",
	"assists",
	"shots",
	"shots_on_target",
	"passes_completed",
	"passes_attempted",
	"tackles",
	"interceptions",
	"duels_won",
	"duels_lost",
	"yellow_cards",
	"red_cards",
	"xg",
	"xa",
}

const playerStatsUpsertSuffix = `ON CONFLICT (match_id, player_name)
DO UPDATE SET
    team_name = EXCLUDED.team_name,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    shots = EXCLUDED.shots,
    shots_on_target = EXCLUDED.shots_on_target,
    passes_completed = EXCLUDED.passes_completed,
    passes_attempted = EXCLUDED.passes_attempted,
    tackles = EXCLUDED.tackles,
    interceptions = EXCLUDED.interceptions,
    duels_won = EXCLUDED.duels_won,
    duels_lost = EXCLUDED.duels_lost,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    xg = EXCLUDED.xg,
    xa = EXCLUDED.xa,
    updated_at = NOW()`

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) UpsertMatchStats(ctx context.Context, matchID int64, aggregates []stats.PlayerAggregate) error {
	if len(aggregates) == 0 {
		return nil
	}

	builder := qb.InsertInto("player_match_stats").
		Columns(playerStatsColumns...).
		Suffix(playerStatsUpsertSuffix)
	for _, agg := range aggregates {
		builder.Values(
			matchID,
			agg.Name,
			agg.Team,
			agg.Goals,
			agg.Assists,
			agg.Shots,
			agg.ShotsOnTarget,
			agg.PassesCompleted,
			agg.PassesAttempted,
			agg.Tackles,
			agg.Interceptions,
			agg.DuelsWon,
			agg.DuelsLost,
			agg.YellowCards,
			agg.RedCards,
			agg.XG,
			agg.XA,
		)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert player match stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player match stats: %w", err)
	}
	return nil
}

func (r *PlayerStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]stats.PlayerAggregate, error) {
	query, args, err := qb.Select(playerStatsColumns...).
		From("player_match_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player match stats query: %w", err)
	}

	var rows []playerStatsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player match stats: %w", err)
	}

	out := make([]stats.PlayerAggregate, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerStatsRepository) SeasonCardTotals(ctx context.Context) (map[string]stats.CardTotals, error) {
	query, args, err := qb.Select(
		"player_name",
		"MAX(team_name) AS team_name",
		"COALESCE(SUM(goals), 0) AS goals",
		"COALESCE(SUM(yellow_cards), 0) AS yellow_cards",
		"COALESCE(SUM(red_cards), 0) AS red_cards",
	).From("player_match_stats").
		GroupBy("player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build season card totals query: %w", err)
	}

	var rows []cardTotalsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sum season card totals: %w", err)
	}

	out := make(map[string]stats.CardTotals, len(rows))
	for _, row := range rows {
		out[row.PlayerName] = stats.CardTotals{
			Player:      row.PlayerName,
			Team:        row.TeamName,
			Goals:       row.Goals,
			YellowCards: row.YellowCards,
			RedCards:    row.RedCards,
		}
	}
	return out, nil
}
