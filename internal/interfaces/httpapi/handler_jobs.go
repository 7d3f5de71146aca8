package httpapi

import (
	"fmt"
	"net/http"

	"github.com/openpitch/statsbomb-api/internal/usecase"
)

func (h *Handler) RunUpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunUpdateJob")
	defer span.End()

	if h.updateService == nil {
		writeError(ctx, w, fmt.Errorf("%w: update service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.updateService.Run(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "run update job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunRefreshTotalsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshTotalsJob")
	defer span.End()

	if h.updateService == nil {
		writeError(ctx, w, fmt.Errorf("%w: update service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	updated, err := h.updateService.RefreshPlayerTotals(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "run refresh totals job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"playersUpdated": updated})
}
