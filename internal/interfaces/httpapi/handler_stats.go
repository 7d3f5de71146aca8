package httpapi

import (
	"net/http"

	"github.com/openpitch/statsbomb-api/internal/domain/stats"
)

func (h *Handler) ListMatchPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchPlayerStats")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	aggregates, err := h.statsService.PlayerStats(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerStatsDTO, 0, len(aggregates))
	for _, agg := range aggregates {
		items = append(items, playerStatsToDTO(agg))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchTeamStats")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	aggregates, err := h.statsService.TeamStats(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamStatsDTO, 0, len(aggregates))
	for _, agg := range aggregates {
		items = append(items, teamStatsToDTO(agg))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type playerStatsDTO struct {
	Player          string  `json:"player"`
	Team            string  `json:"team"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Shots           int     `json:"shots"`
	ShotsOnTarget   int     `json:"shotsOnTarget"`
	PassesCompleted int     `json:"passesCompleted"`
	PassesAttempted int     `json:"passesAttempted"`
	Tackles         int     `json:"tackles"`
	Interceptions   int     `json:"interceptions"`
	DuelsWon        int     `json:"duelsWon"`
	DuelsLost       int     `json:"duelsLost"`
	YellowCards     int     `json:"yellowCards"`
	RedCards        int     `json:"redCards"`
	XG              float64 `json:"xg"`
	XA              float64 `json:"xa"`
}

type teamStatsDTO struct {
	Team            string  `json:"team"`
	Goals           int     `json:"goals"`
	Shots           int     `json:"shots"`
	ShotsOnTarget   int     `json:"shotsOnTarget"`
	PassesCompleted int     `json:"passesCompleted"`
	PassesAttempted int     `json:"passesAttempted"`
	Tackles         int     `json:"tackles"`
	Interceptions   int     `json:"interceptions"`
	DuelsWon        int     `json:"duelsWon"`
	DuelsLost       int     `json:"duelsLost"`
	Corners         int     `json:"corners"`
	Fouls           int     `json:"fouls"`
	YellowCards     int     `json:"yellowCards"`
	RedCards        int     `json:"redCards"`
	XG              float64 `json:"xg"`
}

func playerStatsToDTO(agg stats.PlayerAggregate) playerStatsDTO {
	return playerStatsDTO{
		Player:          agg.Name,
		Team:            agg.Team,
		Goals:           agg.Goals,
		Assists:         agg.Assists,
		Shots:           agg.Shots,
		ShotsOnTarget:   agg.ShotsOnTarget,
		PassesCompleted: agg.PassesCompleted,
		PassesAttempted: agg.PassesAttempted,
		Tackles:         agg.Tackles,
		Interceptions:   agg.Interceptions,
		DuelsWon:        agg.DuelsWon,
		DuelsLost:       agg.DuelsLost,
		YellowCards:     agg.YellowCards,
		RedCards:        agg.RedCards,
		XG:              agg.XG,
		XA:              agg.XA,
	}
}

func teamStatsToDTO(agg stats.TeamAggregate) teamStatsDTO {
	return teamStatsDTO{
		Team:            agg.Team,
		Goals:           agg.Goals,
		Shots:           agg.Shots,
		ShotsOnTarget:   agg.ShotsOnTarget,
		PassesCompleted: agg.PassesCompleted,
		PassesAttempted: agg.PassesAttempted,
		Tackles:         agg.Tackles,
		Interceptions:   agg.Interceptions,
		DuelsWon:        agg.DuelsWon,
		DuelsLost:       agg.DuelsLost,
		Corners:         agg.Corners,
		Fouls:           agg.Fouls,
		YellowCards:     agg.YellowCards,
		RedCards:        agg.RedCards,
		XG:              agg.XG,
	}
}
