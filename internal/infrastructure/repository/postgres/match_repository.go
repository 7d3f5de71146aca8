package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/statsbomb-api/internal/domain/match"
	qb "github.com/openpitch/statsbomb-api/internal/platform/querybuilder"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) UpsertMatches(ctx context.Context, rows []match.Match) error {
	for _, row := range rows {
		if row.ID <= 0 {
			continue
		}
		model := matchInsertModel{
			ID:            row.ID,
			CompetitionID: row.CompetitionID,
			SeasonID:      row.SeasonID,
			Matchday:      row.Matchday,
			Date:          row.Date,
			HomeTeamID:    row.HomeTeamID,
			AwayTeamID:    row.AwayTeamID,
			HomeScore:     row.HomeScore,
			AwayScore:     row.AwayScore,
			Status:        row.Status,
		}

		query, args, err := qb.InsertModel("matches", model, `ON CONFLICT (id)
DO UPDATE SET
    competition_id = EXCLUDED.competition_id,
    season_id = EXCLUDED.season_id,
    matchday = EXCLUDED.matchday,
    date = EXCLUDED.date,
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    status = EXCLUDED.status,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert match query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert match id=%d: %w", row.ID, err)
		}
	}
	return nil
}

func (r *MatchRepository) UpsertTeams(ctx context.Context, rows []match.Team) error {
	for _, row := range rows {
		if row.ID <= 0 {
			continue
		}
		model := teamInsertModel{
			ID:      row.ID,
			Name:    row.Name,
			Country: row.Country,
		}

		query, args, err := qb.InsertModel("teams", model, `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    country = EXCLUDED.country,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert team query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team id=%d: %w", row.ID, err)
		}
	}
	return nil
}

func (r *MatchRepository) UpsertPlayers(ctx context.Context, rows []match.Player) error {
	for _, row := range rows {
		if row.ID <= 0 {
			continue
		}
		model := playerInsertModel{
			ID:     row.ID,
			Name:   row.Name,
			TeamID: row.TeamID,
		}

		query, args, err := qb.InsertModel("players", model, `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    team_id = EXCLUDED.team_id,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert player query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player id=%d: %w", row.ID, err)
		}
	}
	return nil
}

func (r *MatchRepository) LastMatchDate(ctx context.Context) (time.Time, bool, error) {
	query, args, err := qb.Select("date").
		From("matches").
		OrderBy("date DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("build last match date query: %w", err)
	}

	var last time.Time
	if err := r.db.GetContext(ctx, &last, query, args...); err != nil {
		if isNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("get last match date: %w", err)
	}
	return last, true, nil
}

func (r *MatchRepository) UpdatePlayerTotals(ctx context.Context, playerName string, goals, yellowCards, redCards int) error {
	query, args, err := qb.Update("players").
		Set("goals", goals).
		Set("yellow_cards", yellowCards).
		Set("red_cards", redCards).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("name", playerName)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player totals query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update player totals: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: player %s", usecase.ErrNotFound, playerName)
	}
	return nil
}
