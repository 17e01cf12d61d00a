package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday-predictor/internal/usecase"
)

// GetPosition always answers 200; failures travel in the outcome kind.
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPosition")
	defer span.End()

	query := r.URL.Query()
	outcome := h.positionService.ResolvePosition(ctx, query.Get("league"), query.Get("team"))

	writeSuccess(ctx, w, http.StatusOK, outcome)
}

func (h *Handler) ResolvePositionBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolvePositionBatch")
	defer span.End()

	var req positionBatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if h.batchMax > 0 && len(req.Lookups) > h.batchMax {
		writeError(ctx, w, fmt.Errorf("%w: at most %d lookups are allowed", usecase.ErrInvalidInput, h.batchMax))
		return
	}

	outcomes, err := h.positionService.ResolveBatch(ctx, req.Lookups)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve position batch failed", "lookups", len(req.Lookups), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcomes)
}
