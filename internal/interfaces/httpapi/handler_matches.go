package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	competitions, err := h.matchService.Competitions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchesByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByCompetition")
	defer span.End()

	req := listMatchesRequest{Code: strings.TrimSpace(r.PathValue("code"))}
	seasonID, err := seasonIDFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req.SeasonID = seasonID
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.MatchesByCode(ctx, req.Code, req.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "code", req.Code, "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.matchService.Events(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match events failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, ev := range events {
		items = append(items, eventToDTO(ev))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchLineups")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lineups, err := h.matchService.Lineups(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match lineups failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupDTO, 0, len(lineups))
	for _, l := range lineups {
		items = append(items, lineupToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func seasonIDFromQuery(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("season_id"))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: season_id must be a positive integer", usecase.ErrInvalidInput)
	}
	return id, nil
}

type listMatchesRequest struct {
	Code     string `validate:"required,max=8"`
	SeasonID int64  `validate:"omitempty,min=1"`
}

type competitionDTO struct {
	CompetitionID  int64  `json:"competitionId"`
	SeasonID       int64  `json:"seasonId"`
	Name           string `json:"name"`
	SeasonName     string `json:"seasonName"`
	Country        string `json:"country"`
	Gender         string `json:"gender,omitempty"`
	MatchUpdated   string `json:"matchUpdated,omitempty"`
	MatchAvailable string `json:"matchAvailable,omitempty"`
}

type matchDTO struct {
	ID            int64  `json:"id"`
	CompetitionID int64  `json:"competitionId"`
	SeasonID      int64  `json:"seasonId"`
	Matchday      int    `json:"matchday"`
	Date          string `json:"utcDate"`
	HomeTeam      string `json:"homeTeam"`
	AwayTeam      string `json:"awayTeam"`
	HomeScore     *int   `json:"homeScore"`
	AwayScore     *int   `json:"awayScore"`
	Status        string `json:"status,omitempty"`
}

type lineupDTO struct {
	TeamID   int64             `json:"teamId"`
	TeamName string            `json:"teamName"`
	Players  []lineupPlayerDTO `json:"players"`
}

type lineupPlayerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func competitionToDTO(c competition.Competition) competitionDTO {
	return competitionDTO{
		CompetitionID:  c.ID,
		SeasonID:       c.SeasonID,
		Name:           c.Name,
		SeasonName:     c.SeasonName,
		Country:        c.CountryName,
		Gender:         c.Gender,
		MatchUpdated:   c.MatchUpdated,
		MatchAvailable: c.MatchAvailable,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		SeasonID:      m.SeasonID,
		Matchday:      m.Matchday,
		Date:          m.Date.Format(time.DateOnly),
		HomeTeam:      m.HomeTeam,
		AwayTeam:      m.AwayTeam,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Status:        m.Status,
	}
}

func lineupToDTO(l match.Lineup) lineupDTO {
	players := make([]lineupPlayerDTO, 0, len(l.Players))
	for _, p := range l.Players {
		players = append(players, lineupPlayerDTO{ID: p.ID, Name: p.Name})
	}
	return lineupDTO{
		TeamID:   l.TeamID,
		TeamName: l.TeamName,
		Players:  players,
	}
}
