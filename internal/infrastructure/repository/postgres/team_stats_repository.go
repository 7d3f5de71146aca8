package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/statsbomb-api/internal/domain/stats"
	qb "github.com/openpitch/statsbomb-api/internal/platform/querybuilder"
)

var teamStatsColumns = []string{
	"match_id",
	"team_name",
	"goals",
	"shots",
	"shots_on_target",
	"passes_completed",
	"passes_attempted",
	"tackles",
	"interceptions",
	"duels_won",
	"duels_lost",
	"corners",
	"fouls",
	"yellow_cards",
	"red_cards",
	"xg",
}

const teamStatsUpsertSuffix = `ON CONFLICT (match_id, team_name)
DO UPDATE SET
    goals = EXCLUDED.goals,
    shots = EXCLUDED.shots,
    shots_on_target = EXCLUDED.shots_on_target,
    passes_completed = EXCLUDED.passes_completed,
    passes_attempted = EXCLUDED.passes_attempted,
    tackles = EXCLUDED.tackles,
    interceptions = EXCLUDED.interceptions,
    duels_won = EXCLUDED.duels_won,
    duels_lost = EXCLUDED.duels_lost,
    corners = EXCLUDED.corners,
    fouls = EXCLUDED.fouls,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    xg = EXCLUDED.xg,
    updated_at = NOW()`

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) UpsertMatchStats(ctx context.Context, matchID int64, aggregates []stats.TeamAggregate) error {
	if len(aggregates) == 0 {
		return nil
	}

	builder := qb.InsertInto("team_match_stats").
		Columns(teamStatsColumns...).
		Suffix(teamStatsUpsertSuffix)
	for _, agg := range aggregates {
		builder.Values(
			matchID,
			agg.Team,
			agg.Goals,
			agg.Shots,
			agg.ShotsOnTarget,
			agg.PassesCompleted,
			agg.PassesAttempted,
			agg.Tackles,
			agg.Interceptions,
			agg.DuelsWon,
			agg.DuelsLost,
			agg.Corners,
			agg.Fouls,
			agg.YellowCards,
			agg.RedCards,
			agg.XG,
		)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert team match stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team match stats: %w", err)
	}
	return nil
}

func (r *TeamStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]stats.TeamAggregate, error) {
	query, args, err := qb.Select(teamStatsColumns...).
		From("team_match_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team match stats query: %w", err)
	}

	var rows []teamStatsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team match stats: %w", err)
	}

	out := make([]stats.TeamAggregate, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
