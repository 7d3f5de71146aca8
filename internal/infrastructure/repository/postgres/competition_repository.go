package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
	qb "github.com/openpitch/statsbomb-api/internal/platform/querybuilder"
)

type competitionInsertModel struct {
	CompetitionID int64  `db:"competition_id"`
	SeasonID      int64  `db:"season_id"`
	Name          string `db:"name"`
	SeasonName    string `db:"season_name"`
	CountryName   string `db:"country_name"`
}

type competitionRow struct {
	CompetitionID int64  `db:"competition_id"`
	SeasonID      int64  `db:"season_id"`
	Name          string `db:"name"`
	SeasonName    string `db:"season_name"`
	CountryName   string `db:"country_name"`
}

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) Upsert(ctx context.Context, competitions []competition.Competition) error {
	for _, row := range competitions {
		if row.ID <= 0 || row.SeasonID <= 0 {
			continue
		}
		model := competitionInsertModel{
			CompetitionID: row.ID,
			SeasonID:      row.SeasonID,
			Name:          row.Name,
			SeasonName:    row.SeasonName,
			CountryName:   row.CountryName,
		}

		query, args, err := qb.InsertModel("competitions", model, `ON CONFLICT (competition_id, season_id)
DO UPDATE SET
    name = EXCLUDED.name,
    season_name = EXCLUDED.season_name,
    country_name = EXCLUDED.country_name,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert competition query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert competition id=%d season=%d: %w", row.ID, row.SeasonID, err)
		}
	}
	return nil
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select(
		"competition_id",
		"season_id",
		"name",
		"season_name",
		"country_name",
	).From("competitions").
		OrderBy("competition_id", "season_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list competitions query: %w", err)
	}

	var rows []competitionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competition.Competition{
			ID:          row.CompetitionID,
			SeasonID:    row.SeasonID,
			Name:        row.Name,
			SeasonName:  row.SeasonName,
			CountryName: row.CountryName,
		})
	}
	return out, nil
}
