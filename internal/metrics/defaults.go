package metrics

import "github.com/san-kum/gravsim/internal/sim"

// Defaults returns the metrics a headless run reports.
func Defaults(width, height int) []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewSurvival(),
		NewCaptures(),
		NewOnScreen(width, height),
	}
}
