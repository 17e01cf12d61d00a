package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday-predictor/internal/usecase"
)

func (h *Handler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAnalysis")
	defer span.End()

	var req analysisRequest
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

	analysis, err := h.analysisService.Analyze(ctx, usecase.AnalyzeInput{
		League:   req.League,
		HomeTeam: req.HomeTeam,
		AwayTeam: req.AwayTeam,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "analyze fixture failed",
			"league", req.League,
			"home_team", req.HomeTeam,
			"away_team", req.AwayTeam,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, analysis)
}
