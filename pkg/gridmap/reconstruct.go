// pkg/gridmap/reconstruct.go
package gridmap

// Trace walks cameFrom from end back to start, calling emit for every
// predecessor. Emission order is end-to-start: the cell before end comes
// first and start comes last. end itself is not emitted. Callers that need
// start-to-end order must buffer and reverse, or use Reconstruct.
func Trace(cameFrom map[Point]Point, end Point, emit func(Point)) {
	current := end
	for {
		prev, ok := cameFrom[current]
		if !ok {
			return
		}
		current = prev
		emit(current)
	}
}

// Reconstruct returns the full path start..end.
func Reconstruct(cameFrom map[Point]Point, end Point) []Point {
	var trail []Point
	Trace(cameFrom, end, func(p Point) {
		trail = append(trail, p)
	})
	return orderPath(trail, end)
}

// orderPath turns an end-to-start emit sequence into start..end.
func orderPath(trail []Point, end Point) []Point {
	path := make([]Point, 0, len(trail)+1)
	for i := len(trail) - 1; i >= 0; i-- {
		path = append(path, trail[i])
	}
	return append(path, end)
}
