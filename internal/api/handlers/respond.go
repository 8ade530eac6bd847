package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

// Notifier receives run-completed events for connected shells. The
// websocket hub implements it; handlers stay transport-agnostic.
type Notifier interface {
	Publish(event interface{})
}

// RunEvent is pushed to shells after every report or forecast run.
type RunEvent struct {
	Kind    string            `json:"kind"` // report, forecast
	Report  string            `json:"report,omitempty"`
	Outcome contracts.Outcome `json:"outcome"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, outcome contracts.Outcome, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  outcome,
		"message": message,
	})
}

// httpStatus maps an outcome onto an HTTP status code.
func httpStatus(outcome contracts.Outcome) int {
	switch outcome {
	case contracts.OutcomeNotFound:
		return http.StatusNotFound
	case contracts.OutcomeConnectionError:
		return http.StatusServiceUnavailable
	case contracts.OutcomeInvalidRequest:
		return http.StatusBadRequest
	case contracts.OutcomeInsufficientData:
		return http.StatusUnprocessableEntity
	case contracts.OutcomeQueryError, contracts.OutcomeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
