package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/openpitch/statsbomb-api/internal/domain/competition"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/domain/stats"
	"github.com/openpitch/statsbomb-api/internal/platform/logging"
)

const (
	defaultUpdateWorkers       = 4
	defaultSeasonsPerComp      = 2
	updateStatusProcessed      = "processed"
	updateStatusFailed         = "failed"
	updateStatusSkippedNoEvent = "skipped_no_events"
)

type UpdateServiceConfig struct {
	// SeasonsPerCompetition bounds how many recent seasons are scanned per
	// competition on each run.
	SeasonsPerCompetition int
	MaxWorkers            int
}

type UpdateResult struct {
	CompetitionsScanned int                 `json:"competitions_scanned"`
	MatchesConsidered   int                 `json:"matches_considered"`
	MatchesProcessed    int                 `json:"matches_processed"`
	MatchesSkipped      int                 `json:"matches_skipped"`
	MatchesFailed       int                 `json:"matches_failed"`
	WorkerCount         int                 `json:"worker_count"`
	Since               *time.Time          `json:"since,omitempty"`
	Matches             []UpdateMatchResult `json:"matches"`
}

type UpdateMatchResult struct {
	MatchID    int64  `json:"match_id"`
	Status     string `json:"status"`
	Players    int    `json:"players"`
	Teams      int    `json:"teams"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// UpdateService pulls fresh match data from the feed and writes aggregates to
// storage. Each run is incremental: only matches newer than the latest stored
// match date are processed.
type UpdateService struct {
	provider        StatsProvider
	mapping         competition.Mapping
	matchRepo       match.Repository
	playerStatsRepo stats.PlayerRepository
	teamStatsRepo   stats.TeamRepository
	competitionRepo competition.Repository
	logger          *logging.Logger

	seasonsPerComp int
	maxWorkers     int
	now            func() time.Time
}

func NewUpdateService(
	provider StatsProvider,
	mapping competition.Mapping,
	matchRepo match.Repository,
	playerStatsRepo stats.PlayerRepository,
	teamStatsRepo stats.TeamRepository,
	competitionRepo competition.Repository,
	logger *logging.Logger,
	cfg UpdateServiceConfig,
) *UpdateService {
	if logger == nil {
		logger = logging.Default()
	}
	seasonsPerComp := cfg.SeasonsPerCompetition
	if seasonsPerComp < 1 {
		seasonsPerComp = defaultSeasonsPerComp
	}
	maxWorkers := cfg.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = defaultUpdateWorkers
	}

	return &UpdateService{
		provider:        provider,
		mapping:         mapping,
		matchRepo:       matchRepo,
		playerStatsRepo: playerStatsRepo,
		teamStatsRepo:   teamStatsRepo,
		competitionRepo: competitionRepo,
		logger:          logger,
		seasonsPerComp:  seasonsPerComp,
		maxWorkers:      maxWorkers,
		now:             time.Now,
	}
}

// Run executes one incremental update pass.
func (s *UpdateService) Run(ctx context.Context) (UpdateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "UpdateService.Run")
	defer span.End()

	result := UpdateResult{WorkerCount: s.maxWorkers}

	since, haveSince, err := s.matchRepo.LastMatchDate(ctx)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("read last match date: %w", err)
	}
	if haveSince {
		result.Since = &since
	}

	available, err := s.provider.Competitions(ctx)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("list competitions: %w", err)
	}
	if err := s.upsertCompetitions(ctx, available); err != nil {
		return UpdateResult{}, err
	}

	seasonsByComp := recentSeasonsByCompetition(available, s.seasonsPerComp)

	pending := make([]match.Match, 0, 64)
	for _, competitionID := range sortedCompetitionIDs(s.mapping) {
		seasonIDs := seasonsByComp[competitionID]
		if len(seasonIDs) == 0 {
			s.logger.WarnContext(ctx, "competition absent from feed, skipping", "competition_id", competitionID)
			continue
		}
		result.CompetitionsScanned++

		rows, err := s.provider.MatchesForSeasons(ctx, competitionID, seasonIDs)
		if err != nil {
			if ctx.Err() != nil {
				return UpdateResult{}, ctx.Err()
			}
			s.logger.ErrorContext(ctx, "fetch competition matches failed, continuing",
				"competition_id", competitionID,
				"error", err,
			)
			continue
		}

		for _, row := range rows {
			if haveSince && !row.Date.After(since) {
				continue
			}
			pending = append(pending, row)
		}
	}

	result.MatchesConsidered = len(pending)
	if len(pending) == 0 {
		s.logger.InfoContext(ctx, "no new matches to process")
		return result, nil
	}

	if err := s.upsertMatchShells(ctx, pending); err != nil {
		return UpdateResult{}, err
	}

	rows, err := s.processMatches(ctx, pending)
	if err != nil {
		return UpdateResult{}, err
	}

	for _, row := range rows {
		switch row.Status {
		case updateStatusProcessed:
			result.MatchesProcessed++
		case updateStatusSkippedNoEvent:
			result.MatchesSkipped++
		default:
			result.MatchesFailed++
		}
	}
	result.Matches = rows

	s.logger.InfoContext(ctx, "update pass finished",
		"considered", result.MatchesConsidered,
		"processed", result.MatchesProcessed,
		"skipped", result.MatchesSkipped,
		"failed", result.MatchesFailed,
	)
	return result, nil
}

// RefreshPlayerTotals rolls stored per-match aggregates up into per-player
// season totals on the players table.
func (s *UpdateService) RefreshPlayerTotals(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "UpdateService.RefreshPlayerTotals")
	defer span.End()

	totals, err := s.playerStatsRepo.SeasonCardTotals(ctx)
	if err != nil {
		return 0, fmt.Errorf("read season card totals: %w", err)
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	updated := 0
	for _, name := range names {
		row := totals[name]
		if err := s.matchRepo.UpdatePlayerTotals(ctx, name, row.Goals, row.YellowCards, row.RedCards); err != nil {
			if stderrors.Is(err, ErrNotFound) {
				s.logger.WarnContext(ctx, "player missing from players table, skipping totals", "player", name)
				continue
			}
			return updated, fmt.Errorf("update totals for %s: %w", name, err)
		}
		updated++
	}

	s.logger.InfoContext(ctx, "player totals refreshed", "players", updated)
	return updated, nil
}

func (s *UpdateService) upsertCompetitions(ctx context.Context, rows []ProviderCompetition) error {
	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competition.Competition{
			ID:          row.CompetitionID,
			SeasonID:    row.SeasonID,
			Name:        row.CompetitionName,
			SeasonName:  row.SeasonName,
			CountryName: row.CountryName,
		})
	}
	if err := s.competitionRepo.Upsert(ctx, out); err != nil {
		return fmt.Errorf("upsert competitions: %w", err)
	}
	return nil
}

func (s *UpdateService) upsertMatchShells(ctx context.Context, matches []match.Match) error {
	teamsByID := make(map[int64]match.Team, len(matches)*2)
	for _, row := range matches {
		country := s.mapping.Country(row.CompetitionID)
		if row.HomeTeamID > 0 {
			teamsByID[row.HomeTeamID] = match.Team{ID: row.HomeTeamID, Name: row.HomeTeam, Country: country}
		}
		if row.AwayTeamID > 0 {
			teamsByID[row.AwayTeamID] = match.Team{ID: row.AwayTeamID, Name: row.AwayTeam, Country: country}
		}
	}

	teams := make([]match.Team, 0, len(teamsByID))
	for _, team := range teamsByID {
		teams = append(teams, team)
	}
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })

	if err := s.matchRepo.UpsertTeams(ctx, teams); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}
	if err := s.matchRepo.UpsertMatches(ctx, matches); err != nil {
		return fmt.Errorf("upsert matches: %w", err)
	}
	return nil
}

func (s *UpdateService) processMatches(ctx context.Context, matches []match.Match) ([]UpdateMatchResult, error) {
	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan UpdateMatchResult, len(matches))
	var cancelled atomic.Bool

	var workers sync.WaitGroup
	for _, row := range matches {
		row := row
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if ctx.Err() != nil {
				cancelled.Store(true)
				return
			}

			start := time.Now()
			out := s.processMatch(ctx, row)
			out.DurationMs = time.Since(start).Milliseconds()
			results <- out
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit match to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	if cancelled.Load() && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	out := make([]UpdateMatchResult, 0, len(matches))
	for row := range results {
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}

func (s *UpdateService) processMatch(ctx context.Context, row match.Match) UpdateMatchResult {
	out := UpdateMatchResult{MatchID: row.ID}

	events, err := s.provider.Events(ctx, row.ID)
	if err != nil {
		if stderrors.Is(err, ErrNotFound) {
			out.Status = updateStatusSkippedNoEvent
			out.Message = "no event file in feed"
			return out
		}
		out.Status = updateStatusFailed
		out.Message = err.Error()
		return out
	}
	if len(events) == 0 {
		out.Status = updateStatusSkippedNoEvent
		return out
	}

	lineups, err := s.provider.Lineups(ctx, row.ID)
	if err != nil && !stderrors.Is(err, ErrNotFound) {
		out.Status = updateStatusFailed
		out.Message = err.Error()
		return out
	}

	players := make([]match.Player, 0, 36)
	for _, lineup := range lineups {
		players = append(players, lineup.Players...)
	}
	if len(players) > 0 {
		if err := s.matchRepo.UpsertPlayers(ctx, players); err != nil {
			out.Status = updateStatusFailed
			out.Message = fmt.Sprintf("upsert players: %v", err)
			return out
		}
	}

	playerAggs := sortedPlayerAggregates(stats.AggregatePlayers(events))
	teamAggs := sortedTeamAggregates(stats.AggregateTeams(events))

	if err := s.playerStatsRepo.UpsertMatchStats(ctx, row.ID, playerAggs); err != nil {
		out.Status = updateStatusFailed
		out.Message = fmt.Sprintf("upsert player stats: %v", err)
		return out
	}
	if err := s.teamStatsRepo.UpsertMatchStats(ctx, row.ID, teamAggs); err != nil {
		out.Status = updateStatusFailed
		out.Message = fmt.Sprintf("upsert team stats: %v", err)
		return out
	}

	out.Status = updateStatusProcessed
	out.Players = len(playerAggs)
	out.Teams = len(teamAggs)
	return out
}

func sortedPlayerAggregates(byPlayer map[string]stats.PlayerAggregate) []stats.PlayerAggregate {
	out := make([]stats.PlayerAggregate, 0, len(byPlayer))
	for _, agg := range byPlayer {
		out = append(out, agg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedTeamAggregates(byTeam map[string]stats.TeamAggregate) []stats.TeamAggregate {
	out := make([]stats.TeamAggregate, 0, len(byTeam))
	for _, agg := range byTeam {
		out = append(out, agg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Team < out[j].Team })
	return out
}

func recentSeasonsByCompetition(rows []ProviderCompetition, perCompetition int) map[int64][]int64 {
	byComp := make(map[int64][]int64)
	for _, row := range rows {
		if row.CompetitionID <= 0 || row.SeasonID <= 0 {
			continue
		}
		byComp[row.CompetitionID] = append(byComp[row.CompetitionID], row.SeasonID)
	}
	for competitionID, seasonIDs := range byComp {
		sort.Slice(seasonIDs, func(i, j int) bool { return seasonIDs[i] > seasonIDs[j] })
		if len(seasonIDs) > perCompetition {
			seasonIDs = seasonIDs[:perCompetition]
		}
		byComp[competitionID] = seasonIDs
	}
	return byComp
}

func sortedCompetitionIDs(mapping competition.Mapping) []int64 {
	ids := mapping.CompetitionIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
