package chart

import (
	"fmt"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

const (
	predictedColor = "#FF6347"
	fittedColor    = "#808080"
)

// RenderForecast lays a forecast result out as a single plan with three
// lines on one ordinal axis: the historical series, the in-sample fit and
// the forward projection. Historical and fitted points share indices
// 0..n-1; predicted points continue at n..n+h-1 so the projection reads as
// a continuation of the observed months.
func RenderForecast(result contracts.ForecastResult, theme contracts.Theme) DrawPlan {
	n := len(result.Historical)
	h := len(result.Predicted)

	title := fmt.Sprintf("Polynomial Revenue Forecast (Deg=%d, %dmo)", result.Degree, h)
	plan := newPlan(contracts.ArchetypeTimeLine, theme, title)
	plan.XLabel = "Month (YYYY-MM)"
	plan.YLabel = "Revenue"

	if n == 0 {
		plan.Placeholder = true
		plan.PlaceholderText = "Not enough data."
		return plan
	}

	historical := make([]LinePoint, n)
	fitted := make([]LinePoint, n)
	for i := 0; i < n; i++ {
		historical[i] = LinePoint{Index: i, Label: result.Historical[i].X, Value: result.Historical[i].Y}
		fitted[i] = LinePoint{Index: i, Label: result.Fitted[i].X, Value: result.Fitted[i].Y}
	}
	predicted := make([]LinePoint, h)
	for i := 0; i < h; i++ {
		predicted[i] = LinePoint{Index: n + i, Label: result.Predicted[i].X, Value: result.Predicted[i].Y}
	}

	plan.Lines = []Line{
		{
			Name:   "Historical",
			Color:  theme.Accent,
			Style:  lineStyleSolid,
			Marker: markerCircle,
			Width:  2,
			Points: historical,
		},
		{
			Name:   fmt.Sprintf("Fitted (Deg=%d)", result.Degree),
			Color:  fittedColor,
			Style:  lineStyleDashed,
			Width:  1.5,
			Points: fitted,
		},
		{
			Name:   fmt.Sprintf("Predicted (%dmo)", h),
			Color:  predictedColor,
			Style:  lineStyleDashed,
			Marker: markerCross,
			Width:  2,
			Points: predicted,
		},
	}

	// One tick rule across the combined axis, historical labels first.
	labels := make([]string, 0, n+h)
	labels = append(labels, result.Historical.Labels()...)
	labels = append(labels, result.Predicted.Labels()...)
	plan.Ticks = thinTicks(labels)
	plan.RotateTicks = true
	plan.GridX = true
	plan.GridY = true

	return plan
}
