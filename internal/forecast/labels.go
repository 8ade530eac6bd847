package forecast

import (
	"fmt"
	"time"
)

const periodLayout = "2006-01"

// futureLabels generates the x labels for the projected points. When the
// last historical label parses as YYYY-MM, the labels are the next horizon
// consecutive calendar months in the same format. Otherwise they degrade to
// ordinal placeholders (P1, P2, …); a label failure must never fail the
// forecast itself. The ok result reports which path was taken.
func futureLabels(lastLabel string, horizon int) (labels []string, ok bool) {
	last, err := time.Parse(periodLayout, lastLabel)
	if err != nil {
		labels = make([]string, horizon)
		for i := range labels {
			labels[i] = fmt.Sprintf("P%d", i+1)
		}
		return labels, false
	}

	labels = make([]string, horizon)
	for i := range labels {
		labels[i] = last.AddDate(0, i+1, 0).Format(periodLayout)
	}
	return labels, true
}
