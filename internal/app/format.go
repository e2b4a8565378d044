// internal/app/format.go
package app

import (
	"fmt"

	"go-astar-visualizer/pkg/gridmap"
)

// FormatResult renders a result for the status line and the CLI.
func FormatResult(res gridmap.Result) string {
	switch res.Outcome {
	case gridmap.PathFound:
		return fmt.Sprintf("path found: %d steps, %d expanded", res.Length(), res.Expanded)
	case gridmap.PathNotFound:
		return fmt.Sprintf("no path: %d expanded", res.Expanded)
	case gridmap.Cancelled:
		return fmt.Sprintf("cancelled after %d expanded", res.Expanded)
	default:
		return res.Outcome.String()
	}
}

// StepPresets are the steps-per-frame values the speed toggle cycles
// through.
var StepPresets = []int{1, 4, 16, 64}

// NextSteps returns the preset after current, wrapping around. A value
// that is not a preset moves to the smallest preset above it.
func NextSteps(current int) int {
	for _, p := range StepPresets {
		if p > current {
			return p
		}
	}
	return StepPresets[0]
}

// PresetIndex is the position of the largest preset not above steps.
func PresetIndex(steps int) int {
	idx := 0
	for i, p := range StepPresets {
		if p <= steps {
			idx = i
		}
	}
	return idx
}
