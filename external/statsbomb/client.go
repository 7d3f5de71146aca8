package statsbomb

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/openpitch/statsbomb-api/internal/domain/event"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/platform/logging"
	"github.com/openpitch/statsbomb-api/internal/platform/resilience"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

const (
	defaultBaseURL       = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	defaultTimeout       = 20 * time.Second
	maxResponseBytes     = 64 << 20
	seasonFanOutParallel = 4
)

var errStatsBombTransient = crerr.New("statsbomb transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the StatsBomb open-data JSON files over HTTP. The feed is a
// static file tree, so every request is an unauthenticated GET.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

var _ usecase.StatsProvider = (*Client)(nil)

func (c *Client) Competitions(ctx context.Context) ([]usecase.ProviderCompetition, error) {
	var rows []rawCompetition
	if err := c.doJSON(ctx, "/competitions.json", &rows); err != nil {
		return nil, fmt.Errorf("fetch competitions: %w", err)
	}

	out := make([]usecase.ProviderCompetition, 0, len(rows))
	for _, row := range rows {
		if row.CompetitionID <= 0 || row.SeasonID <= 0 {
			continue
		}
		out = append(out, mapCompetition(row))
	}
	return out, nil
}

func (c *Client) Matches(ctx context.Context, competitionID, seasonID int64) ([]match.Match, error) {
	if competitionID <= 0 || seasonID <= 0 {
		return nil, fmt.Errorf("%w: competition and season ids must be greater than zero", usecase.ErrInvalidInput)
	}

	var rows []rawMatch
	path := fmt.Sprintf("/matches/%d/%d.json", competitionID, seasonID)
	if err := c.doJSON(ctx, path, &rows); err != nil {
		return nil, fmt.Errorf("fetch matches competition_id=%d season_id=%d: %w", competitionID, seasonID, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		if row.MatchID <= 0 {
			continue
		}
		out = append(out, mapMatch(row))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// MatchesForSeasons fetches several season files concurrently and merges the
// results. Seasons missing from the feed are skipped rather than failing the
// whole fan-out.
func (c *Client) MatchesForSeasons(ctx context.Context, competitionID int64, seasonIDs []int64) ([]match.Match, error) {
	if competitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id must be greater than zero", usecase.ErrInvalidInput)
	}
	if len(seasonIDs) == 0 {
		return nil, nil
	}

	p := pool.NewWithResults[[]match.Match]().
		WithContext(ctx).
		WithMaxGoroutines(seasonFanOutParallel)

	for _, seasonID := range seasonIDs {
		seasonID := seasonID
		p.Go(func(ctx context.Context) ([]match.Match, error) {
			rows, err := c.Matches(ctx, competitionID, seasonID)
			if err != nil {
				if stderrors.Is(err, usecase.ErrNotFound) {
					c.logger.DebugContext(ctx, "season file absent, skipping",
						"competition_id", competitionID,
						"season_id", seasonID,
					)
					return nil, nil
				}
				return nil, err
			}
			return rows, nil
		})
	}

	chunks, err := p.Wait()
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, 64)
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (c *Client) Events(ctx context.Context, matchID int64) ([]event.Event, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", usecase.ErrInvalidInput)
	}

	var rows []rawEvent
	path := fmt.Sprintf("/events/%d.json", matchID)
	if err := c.doJSON(ctx, path, &rows); err != nil {
		return nil, fmt.Errorf("fetch events match_id=%d: %w", matchID, err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapEvent(row))
	}
	return out, nil
}

func (c *Client) Lineups(ctx context.Context, matchID int64) ([]match.Lineup, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", usecase.ErrInvalidInput)
	}

	var rows []rawLineup
	path := fmt.Sprintf("/lineups/%d.json", matchID)
	if err := c.doJSON(ctx, path, &rows); err != nil {
		return nil, fmt.Errorf("fetch lineups match_id=%d: %w", matchID, err)
	}

	out := make([]match.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapLineup(row))
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "statsbomb circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match data feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errStatsBombTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errStatsBombTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errStatsBombTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: feed file %s", usecase.ErrNotFound, fullURL)
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errStatsBombTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "statsbomb request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
