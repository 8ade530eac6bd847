// Package forecast fits a bounded-degree polynomial trend to a monotonic
// month index and projects it forward. The model treats the x axis purely
// as an ordinal index, never as a calendar series; extrapolation at higher
// degrees can diverge sharply, which is accepted — the only guarantee is
// that identical inputs reproduce identical output.
package forecast

import (
	"fmt"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// Engine runs the fixed regression pipeline.
type Engine struct {
	log *logger.Logger
}

// NewEngine creates an Engine.
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{log: log.Component("forecast")}
}

// Forecast validates the request, fits a degree-bounded polynomial to the
// historical series and projects it horizon months forward. The request is
// checked before the series is touched; a series shorter than degree+1
// points is an InsufficientDataError naming the minimum.
func (e *Engine) Forecast(historical contracts.Series, req contracts.ForecastRequest) (*contracts.ForecastResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	minPoints := req.Degree + 1
	if len(historical) < minPoints {
		return nil, &contracts.InsufficientDataError{
			Required: minPoints,
			Got:      len(historical),
			Degree:   req.Degree,
		}
	}

	model, err := fitPolynomial(historical.Values(), req.Degree)
	if err != nil {
		return nil, fmt.Errorf("polynomial fit: %w", err)
	}

	n := len(historical)

	fitted := make(contracts.Series, n)
	for i := 0; i < n; i++ {
		fitted[i] = contracts.Point{X: historical[i].X, Y: model.eval(float64(i))}
	}

	labels, parsed := futureLabels(historical[n-1].X, req.HorizonMonths)
	if !parsed {
		e.log.WithField("last_label", historical[n-1].X).
			Warn("last period label is not YYYY-MM, using ordinal labels")
	}

	predicted := make(contracts.Series, req.HorizonMonths)
	for i := 0; i < req.HorizonMonths; i++ {
		predicted[i] = contracts.Point{X: labels[i], Y: model.eval(float64(n + i))}
	}

	e.log.WithFields(map[string]interface{}{
		"degree":  req.Degree,
		"horizon": req.HorizonMonths,
		"points":  n,
	}).Debug("forecast computed")

	return &contracts.ForecastResult{
		Historical: historical,
		Fitted:     fitted,
		Predicted:  predicted,
		Degree:     req.Degree,
	}, nil
}
