// pkg/gridmap/queue.go
package gridmap

// queueItem is one open-set entry. order is the insertion counter and
// breaks ties between equal f scores: earlier insertion wins.
type queueItem struct {
	point Point
	f     int
	order int
}

// openQueue is a min-heap of queueItem for container/heap. It has no
// decrease-key: a cell whose score improves while open keeps the entry and
// priority it was inserted with.
type openQueue []queueItem

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].order < q[j].order
}
func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x interface{}) {
	*q = append(*q, x.(queueItem))
}

func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}
