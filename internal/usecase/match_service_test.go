package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
	"github.com/openpitch/statsbomb-api/internal/domain/event"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
)

func TestMatchService_Competitions_SortedAndMapped(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		competitions: []ProviderCompetition{
			{CompetitionID: 43, SeasonID: 106, CompetitionName: "FIFA World Cup", SeasonName: "2022", CountryName: "International", Gender: "male", MatchUpdated: "2023-06-20T21:56:29", MatchAvailable: "2023-06-20T21:56:29"},
			{CompetitionID: 2, SeasonID: 44, CompetitionName: "Premier League", SeasonName: "2003/2004", CountryName: "England"},
			{CompetitionID: 43, SeasonID: 3, CompetitionName: "FIFA World Cup", SeasonName: "2018", CountryName: "International"},
		},
	}
	svc := NewMatchService(provider, competition.DefaultMapping(), nil)

	rows, err := svc.Competitions(context.Background())
	if err != nil {
		t.Fatalf("competitions: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != 2 || rows[1].SeasonID != 3 || rows[2].SeasonID != 106 {
		t.Fatalf("unexpected ordering: %+v", rows)
	}
	if rows[0].Name != "Premier League" || rows[0].CountryName != "England" {
		t.Fatalf("unexpected mapping: %+v", rows[0])
	}
	if rows[2].Gender != "male" || rows[2].MatchUpdated != "2023-06-20T21:56:29" || rows[2].MatchAvailable != "2023-06-20T21:56:29" {
		t.Fatalf("expected feed metadata to carry through: %+v", rows[2])
	}
}

func TestMatchService_MatchesByCode_UnknownCode(t *testing.T) {
	t.Parallel()

	svc := NewMatchService(&stubProvider{}, competition.DefaultMapping(), nil)
	if _, err := svc.MatchesByCode(context.Background(), "DED", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found for unmapped code, got %v", err)
	}
	if _, err := svc.MatchesByCode(context.Background(), "", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank code, got %v", err)
	}
}

func TestMatchService_MatchesByCode_SingleSeason(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		matches: map[string][]match.Match{
			"43:3": {{ID: 22912, CompetitionID: 43, SeasonID: 3}},
		},
	}
	svc := NewMatchService(provider, competition.DefaultMapping(), nil)

	rows, err := svc.MatchesByCode(context.Background(), "wc", 3)
	if err != nil {
		t.Fatalf("matches by code: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != 22912 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestMatchService_MatchesByCode_AllSeasons(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		competitions: []ProviderCompetition{
			{CompetitionID: 43, SeasonID: 3},
			{CompetitionID: 43, SeasonID: 106},
			{CompetitionID: 2, SeasonID: 44},
		},
		matches: map[string][]match.Match{
			"43:3":   {{ID: 1, CompetitionID: 43, SeasonID: 3, Date: time.Date(2018, 6, 14, 0, 0, 0, 0, time.UTC)}},
			"43:106": {{ID: 2, CompetitionID: 43, SeasonID: 106, Date: time.Date(2022, 11, 20, 0, 0, 0, 0, time.UTC)}},
		},
	}
	svc := NewMatchService(provider, competition.DefaultMapping(), nil)

	rows, err := svc.MatchesByCode(context.Background(), "WC", 0)
	if err != nil {
		t.Fatalf("matches by code: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both seasons merged, got %+v", rows)
	}
}

func TestMatchService_EventsAndLineups(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		events: map[int64][]event.Event{9: sampleEvents()},
		lineups: map[int64][]match.Lineup{
			9: {{TeamID: 771, TeamName: "France", Players: []match.Player{{ID: 3009, Name: "Kylian Mbappé", TeamID: 771}}}},
		},
	}
	svc := NewMatchService(provider, competition.DefaultMapping(), nil)

	events, err := svc.Events(context.Background(), 9)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != len(sampleEvents()) {
		t.Fatalf("expected full event stream, got %d rows", len(events))
	}

	lineups, err := svc.Lineups(context.Background(), 9)
	if err != nil {
		t.Fatalf("lineups: %v", err)
	}
	if len(lineups) != 1 || lineups[0].TeamName != "France" {
		t.Fatalf("unexpected lineups: %+v", lineups)
	}

	if _, err := svc.Events(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero match id, got %v", err)
	}
}
