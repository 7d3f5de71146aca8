package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
)

type CompetitionRepository struct {
	mu   sync.RWMutex
	rows map[string]competition.Competition
}

func NewCompetitionRepository() *CompetitionRepository {
	return &CompetitionRepository{
		rows: make(map[string]competition.Competition),
	}
}

func (r *CompetitionRepository) Upsert(_ context.Context, competitions []competition.Competition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range competitions {
		if row.ID <= 0 || row.SeasonID <= 0 {
			continue
		}
		r.rows[compositeKey(row.ID, row.SeasonID)] = row
	}
	return nil
}

func (r *CompetitionRepository) List(context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].SeasonID < out[j].SeasonID
	})
	return out, nil
}

func compositeKey(competitionID, seasonID int64) string {
	return fmt.Sprintf("%d:%d", competitionID, seasonID)
}
