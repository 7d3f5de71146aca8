package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/openpitch/statsbomb-api/internal/platform/logging"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

type Handler struct {
	matchService  *usecase.MatchService
	statsService  *usecase.StatsService
	updateService *usecase.UpdateService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	statsService *usecase.StatsService,
	updateService *usecase.UpdateService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:  matchService,
		statsService:  statsService,
		updateService: updateService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func matchIDFromPath(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("matchID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: match id must be a positive integer", usecase.ErrInvalidInput)
	}
	return id, nil
}
