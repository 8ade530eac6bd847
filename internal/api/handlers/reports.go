package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MartnzGO/Adattarhaz/internal/catalog"
	"github.com/MartnzGO/Adattarhaz/internal/chart"
	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/internal/loader"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// ReportHandler serves the report catalog and report runs.
type ReportHandler struct {
	catalog  *catalog.Catalog
	loader   *loader.Loader
	notifier Notifier
	logger   *logger.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(cat *catalog.Catalog, ldr *loader.Loader, notifier Notifier, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		catalog:  cat,
		loader:   ldr,
		notifier: notifier,
		logger:   log,
	}
}

// List returns the catalog entries in display order.
// GET /api/reports
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Reports())
}

// RunResponse carries the outcome of one report run: the plan when the run
// produced one, and always a one-line status message for the shell.
type RunResponse struct {
	Status  contracts.Outcome `json:"status"`
	Message string            `json:"message"`
	Plan    *chart.DrawPlan   `json:"plan,omitempty"`
}

// Run loads one report and renders its draw plan under the requested theme.
// GET /api/reports/{name}?theme=light|dark
func (h *ReportHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	theme, err := contracts.ThemeByName(r.URL.Query().Get("theme"))
	if err != nil {
		respondError(w, http.StatusBadRequest, contracts.OutcomeInvalidRequest, err.Error())
		return
	}

	report, err := h.catalog.Lookup(name)
	if err != nil {
		respondError(w, http.StatusNotFound, contracts.OutcomeNotFound,
			fmt.Sprintf("Error: Report query '%s' not found.", name))
		return
	}

	series, err := h.loader.Load(ctx, report)
	if err != nil {
		outcome := contracts.Classify(err)
		h.notify(RunEvent{Kind: "report", Report: name, Outcome: outcome})
		respondError(w, httpStatus(outcome), outcome, err.Error())
		return
	}

	plan := chart.Render(series, report.Archetype, theme, report.Name)

	outcome := contracts.OutcomeOK
	message := fmt.Sprintf("Successfully displayed: %s", name)
	if len(series) == 0 {
		outcome = contracts.OutcomeEmptyResult
		message = fmt.Sprintf("No data found for: %s", name)
	}

	h.notify(RunEvent{Kind: "report", Report: name, Outcome: outcome})
	respondJSON(w, http.StatusOK, RunResponse{
		Status:  outcome,
		Message: message,
		Plan:    &plan,
	})
}

func (h *ReportHandler) notify(event RunEvent) {
	if h.notifier != nil {
		h.notifier.Publish(event)
	}
}
