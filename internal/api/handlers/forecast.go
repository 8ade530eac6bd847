package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MartnzGO/Adattarhaz/internal/catalog"
	"github.com/MartnzGO/Adattarhaz/internal/chart"
	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/internal/forecast"
	"github.com/MartnzGO/Adattarhaz/internal/loader"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// ForecastHandler serves revenue forecast runs.
type ForecastHandler struct {
	catalog  *catalog.Catalog
	loader   *loader.Loader
	engine   *forecast.Engine
	notifier Notifier
	logger   *logger.Logger
}

// NewForecastHandler creates a ForecastHandler.
func NewForecastHandler(cat *catalog.Catalog, ldr *loader.Loader, engine *forecast.Engine, notifier Notifier, log *logger.Logger) *ForecastHandler {
	return &ForecastHandler{
		catalog:  cat,
		loader:   ldr,
		engine:   engine,
		notifier: notifier,
		logger:   log,
	}
}

// ForecastHTTPRequest is the request body for a forecast run.
type ForecastHTTPRequest struct {
	HorizonMonths int    `json:"horizon_months"`
	Degree        int    `json:"polynomial_degree"`
	Theme         string `json:"theme,omitempty"`
}

// ForecastResponse carries the forecast run outcome, the computed result
// and its draw plan.
type ForecastResponse struct {
	Status  contracts.Outcome         `json:"status"`
	Message string                    `json:"message"`
	Result  *contracts.ForecastResult `json:"result,omitempty"`
	Plan    *chart.DrawPlan           `json:"plan,omitempty"`
}

// Run fits the revenue trend and projects it forward.
// POST /api/forecast
func (h *ForecastHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ForecastHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, contracts.OutcomeInvalidRequest, "invalid request body")
		return
	}

	theme, err := contracts.ThemeByName(req.Theme)
	if err != nil {
		respondError(w, http.StatusBadRequest, contracts.OutcomeInvalidRequest, err.Error())
		return
	}

	// The forecast always trains on the monthly revenue series.
	report, err := h.catalog.Lookup(catalog.MonthlyRevenue)
	if err != nil {
		respondError(w, http.StatusInternalServerError, contracts.OutcomeInternalError, err.Error())
		return
	}

	historical, err := h.loader.Load(ctx, report)
	if err != nil {
		outcome := contracts.Classify(err)
		h.notify(RunEvent{Kind: "forecast", Outcome: outcome})
		respondError(w, httpStatus(outcome), outcome, err.Error())
		return
	}

	result, err := h.engine.Forecast(historical, contracts.ForecastRequest{
		HorizonMonths: req.HorizonMonths,
		Degree:        req.Degree,
	})
	if err != nil {
		outcome := contracts.Classify(err)
		h.notify(RunEvent{Kind: "forecast", Outcome: outcome})
		respondError(w, httpStatus(outcome), outcome, err.Error())
		return
	}

	plan := chart.RenderForecast(*result, theme)

	h.notify(RunEvent{Kind: "forecast", Outcome: contracts.OutcomeOK})
	respondJSON(w, http.StatusOK, ForecastResponse{
		Status:  contracts.OutcomeOK,
		Message: "Prediction complete.",
		Result:  result,
		Plan:    &plan,
	})
}

func (h *ForecastHandler) notify(event RunEvent) {
	if h.notifier != nil {
		h.notifier.Publish(event)
	}
}
