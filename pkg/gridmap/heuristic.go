// pkg/gridmap/heuristic.go
package gridmap

import (
	"errors"
	"fmt"
	"sort"

	"go-astar-visualizer/pkg/utils"
)

var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Heuristic estimates the remaining cost between two positions.
// It must be admissible and consistent for the movement policy in use.
type Heuristic func(a, b Point) int

// Manhattan is the L1 distance, exact on an empty 4-directional grid.
func Manhattan(a, b Point) int {
	return utils.Abs(a.Row-b.Row) + utils.Abs(a.Col-b.Col)
}

var heuristics = map[string]Heuristic{
	"manhattan": Manhattan,
}

// HeuristicByName resolves a configured heuristic policy.
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownHeuristic, name, HeuristicNames())
	}
	return h, nil
}

// HeuristicNames lists registered policies in sorted order.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for name := range heuristics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
