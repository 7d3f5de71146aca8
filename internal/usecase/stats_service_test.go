package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/openpitch/statsbomb-api/internal/domain/event"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/domain/stats"
	"github.com/openpitch/statsbomb-api/internal/platform/cache"
)

type stubProvider struct {
	competitions []ProviderCompetition
	matches      map[string][]match.Match
	events       map[int64][]event.Event
	lineups      map[int64][]match.Lineup

	eventCalls atomic.Int32
	err        error
}

func (p *stubProvider) Competitions(context.Context) ([]ProviderCompetition, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.competitions, nil
}

func (p *stubProvider) Matches(_ context.Context, competitionID, seasonID int64) ([]match.Match, error) {
	if p.err != nil {
		return nil, p.err
	}
	rows, ok := p.matches[fmt.Sprintf("%d:%d", competitionID, seasonID)]
	if !ok {
		return nil, fmt.Errorf("%w: season file", ErrNotFound)
	}
	return rows, nil
}

func (p *stubProvider) MatchesForSeasons(ctx context.Context, competitionID int64, seasonIDs []int64) ([]match.Match, error) {
	out := make([]match.Match, 0)
	for _, seasonID := range seasonIDs {
		rows, err := p.Matches(ctx, competitionID, seasonID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

func (p *stubProvider) Events(_ context.Context, matchID int64) ([]event.Event, error) {
	p.eventCalls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	rows, ok := p.events[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: event file", ErrNotFound)
	}
	return rows, nil
}

func (p *stubProvider) Lineups(_ context.Context, matchID int64) ([]match.Lineup, error) {
	if p.err != nil {
		return nil, p.err
	}
	rows, ok := p.lineups[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: lineup file", ErrNotFound)
	}
	return rows, nil
}

func xgPtr(v float64) *float64 { return &v }
func assistPtr(v bool) *bool   { return &v }

func sampleEvents() []event.Event {
	return []event.Event{
		{
			Type: "Shot", Team: "France", Player: "Kylian Mbappé",
			Shot: &event.Shot{Outcome: &event.Outcome{Name: "Goal"}, StatsbombXG: xgPtr(0.4)},
		},
		{
			Type: "Pass", Team: "France", Player: "Antoine Griezmann",
			Pass: &event.Pass{GoalAssist: assistPtr(true), StatsbombXG: xgPtr(0.2)},
		},
		{
			Type: "Duel", Team: "Croatia", Player: "Luka Modrić",
			Duel: &event.Duel{Outcome: &event.Outcome{Name: "Won"}},
		},
		{Type: "Corner", Team: "Croatia"},
	}
}

func TestStatsService_PlayerStats_SortedByName(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{events: map[int64][]event.Event{7: sampleEvents()}}
	svc := NewStatsService(provider, cache.NewStore(time.Minute))

	rows, err := svc.PlayerStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("player stats: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 players, got %d", len(rows))
	}

	wantOrder := []string{"Antoine Griezmann", "Kylian Mbappé", "Luka Modrić"}
	for i, name := range wantOrder {
		if rows[i].Name != name {
			t.Fatalf("row %d = %q, want %q", i, rows[i].Name, name)
		}
	}

	var mbappe stats.PlayerAggregate
	for _, row := range rows {
		if row.Name == "Kylian Mbappé" {
			mbappe = row
		}
	}
	if mbappe.Shots != 1 || mbappe.ShotsOnTarget != 1 || mbappe.XG != 0.4 {
		t.Fatalf("unexpected shooter aggregate: %+v", mbappe)
	}
}

func TestStatsService_TeamStats_IncludesPlayerlessEvents(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{events: map[int64][]event.Event{7: sampleEvents()}}
	svc := NewStatsService(provider, cache.NewStore(time.Minute))

	rows, err := svc.TeamStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("team stats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(rows))
	}
	if rows[0].Team != "Croatia" || rows[1].Team != "France" {
		t.Fatalf("unexpected team order: %+v", rows)
	}
	if rows[0].Corners != 1 {
		t.Fatalf("expected Croatia corner to be counted, got %+v", rows[0])
	}
}

func TestStatsService_CachesPerMatch(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{events: map[int64][]event.Event{7: sampleEvents()}}
	svc := NewStatsService(provider, cache.NewStore(time.Minute))

	ctx := context.Background()
	if _, err := svc.PlayerStats(ctx, 7); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.PlayerStats(ctx, 7); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if got := provider.eventCalls.Load(); got != 1 {
		t.Fatalf("provider fetched %d times, want 1", got)
	}
}

func TestStatsService_InvalidMatchID(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&stubProvider{}, nil)
	if _, err := svc.PlayerStats(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if _, err := svc.TeamStats(context.Background(), -3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestStatsService_PropagatesNotFound(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(&stubProvider{}, nil)
	if _, err := svc.PlayerStats(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
