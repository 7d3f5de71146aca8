package statsbomb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/openpitch/statsbomb-api/internal/usecase"
)

const eventsFixture = `[
	{
		"id": "e1",
		"type": {"id": 16, "name": "Shot"},
		"team": {"id": 909, "name": "Turkey"},
		"player": {"id": 11086, "name": "Burak Yılmaz"},
		"minute": 12,
		"second": 4,
		"location": [102.3, 40.1],
		"shot": {
			"outcome": {"id": 97, "name": "Goal"},
			"statsbomb_xg": 0.34,
			"body_part": {"id": 40, "name": "Right Foot"}
		}
	},
	{
		"id": "e2",
		"type": {"id": 30, "name": "Pass"},
		"team": {"id": 914, "name": "Italy"},
		"player": {"id": 7036, "name": "Lorenzo Insigne"},
		"minute": 14,
		"second": 20,
		"pass": {
			"goal_assist": true,
			"statsbomb_xg": 0.21,
			"recipient": {"id": 7024, "name": "Ciro Immobile"}
		}
	},
	{
		"id": "e3",
		"type": {"id": 4, "name": "Duel"},
		"team": {"id": 909, "name": "Turkey"}
	}
]`

func newTestClient(t *testing.T, handler http.Handler) (*Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
	})
	return client, server.Close
}

func TestClient_Events_MapsNestedRecords(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/3788741.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(eventsFixture))
	}))
	defer done()

	events, err := client.Events(context.Background(), 3788741)
	if err != nil {
		t.Fatalf("fetch events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	shot := events[0]
	if shot.Type != "Shot" || shot.Team != "Turkey" || shot.Player != "Burak Yılmaz" {
		t.Fatalf("unexpected shot event header: %+v", shot)
	}
	if shot.Shot.OutcomeName() != "Goal" {
		t.Fatalf("expected shot outcome Goal, got %q", shot.Shot.OutcomeName())
	}
	if xg, ok := shot.Shot.XG(); !ok || xg != 0.34 {
		t.Fatalf("expected shot xg 0.34, got %v ok=%v", xg, ok)
	}

	pass := events[1]
	if !pass.Pass.IsGoalAssist() {
		t.Fatal("expected goal assist pass")
	}
	if pass.Pass.Recipient != "Ciro Immobile" {
		t.Fatalf("unexpected recipient %q", pass.Pass.Recipient)
	}

	duel := events[2]
	if duel.Player != "" {
		t.Fatalf("expected empty player on bare duel, got %q", duel.Player)
	}
	if duel.Duel != nil {
		t.Fatal("expected nil duel sub-record when absent from payload")
	}
}

func TestClient_Competitions_MapsSeasonMetadata(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[
			{
				"competition_id": 43,
				"season_id": 106,
				"country_name": "International",
				"competition_name": "FIFA World Cup",
				"competition_gender": "male",
				"season_name": "2022",
				"match_updated": "2023-06-20T21:56:29.255782",
				"match_available": "2023-06-20T21:56:29.255782"
			}
		]`))
	}))
	defer done()

	rows, err := client.Competitions(context.Background())
	if err != nil {
		t.Fatalf("fetch competitions: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 competition, got %d", len(rows))
	}

	row := rows[0]
	if row.CompetitionID != 43 || row.SeasonID != 106 {
		t.Fatalf("unexpected identifiers: %+v", row)
	}
	if row.CompetitionName != "FIFA World Cup" || row.SeasonName != "2022" || row.CountryName != "International" {
		t.Fatalf("unexpected names: %+v", row)
	}
	if row.Gender != "male" {
		t.Fatalf("expected gender male, got %q", row.Gender)
	}
	if row.MatchUpdated != "2023-06-20T21:56:29.255782" || row.MatchAvailable != "2023-06-20T21:56:29.255782" {
		t.Fatalf("unexpected feed timestamps: %+v", row)
	}
}

func TestClient_Events_NotFound(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t, http.NotFoundHandler())
	defer done()

	_, err := client.Events(context.Background(), 999)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestClient_Matches_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[
			{
				"match_id": 22912,
				"match_date": "2018-07-15",
				"competition": {"competition_id": 43},
				"season": {"season_id": 3},
				"home_team": {"home_team_id": 771, "home_team_name": "France"},
				"away_team": {"away_team_id": 785, "away_team_name": "Croatia"},
				"home_score": 4,
				"away_score": 2,
				"match_week": 7,
				"match_status": "available"
			}
		]`))
	}))
	defer done()
	client.maxRetries = 2

	matches, err := client.Matches(context.Background(), 43, 3)
	if err != nil {
		t.Fatalf("fetch matches: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got %d", got)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}

	m := matches[0]
	if m.ID != 22912 || m.HomeTeam != "France" || m.AwayTeam != "Croatia" {
		t.Fatalf("unexpected match row: %+v", m)
	}
	if m.HomeScore == nil || *m.HomeScore != 4 {
		t.Fatalf("unexpected home score: %+v", m.HomeScore)
	}
	if m.Date.Year() != 2018 || int(m.Date.Month()) != 7 || m.Date.Day() != 15 {
		t.Fatalf("unexpected match date: %v", m.Date)
	}
}

func TestClient_MatchesForSeasons_SkipsMissingSeasons(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/matches/43/3.json":
			_, _ = w.Write([]byte(`[
				{"match_id": 1, "match_date": "2018-06-14", "competition": {"competition_id": 43}, "season": {"season_id": 3}, "home_team": {"home_team_id": 1, "home_team_name": "Russia"}, "away_team": {"away_team_id": 2, "away_team_name": "Saudi Arabia"}}
			]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer done()

	matches, err := client.MatchesForSeasons(context.Background(), 43, []int64{3, 106})
	if err != nil {
		t.Fatalf("fan-out fetch: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != 1 {
		t.Fatalf("expected only the present season's match, got %+v", matches)
	}
}

func TestClient_CircuitBreakerRejectsAfterFailures(t *testing.T) {
	t.Parallel()

	client, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer done()

	ctx := context.Background()
	for i := 0; i < 6; i++ {
		_, _ = client.Competitions(ctx)
	}

	_, err := client.Competitions(ctx)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency-unavailable once circuit opens, got %v", err)
	}
}
