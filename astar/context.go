package astar

import "container/heap"

// SearchContext owns the scratch state of one A* invocation: the open set,
// the closed set, the came-from map and the g-score map.
//
// A SearchContext is reset at the start of every search that uses it, so it
// may be reused across sequential searches to save allocations. It is NOT
// safe for concurrent use; concurrent searches need their own contexts.
type SearchContext struct {
	open     openSet
	closed   map[Node]struct{}
	cameFrom map[Node]Node
	gScore   map[Node]float64
	seq      uint64 // insertion counter used as the final tie-break
}

// NewSearchContext returns an empty, ready-to-use SearchContext.
func NewSearchContext() *SearchContext {
	return &SearchContext{
		open:     openSet{index: make(map[Node]*openItem)},
		closed:   make(map[Node]struct{}),
		cameFrom: make(map[Node]Node),
		gScore:   make(map[Node]float64),
	}
}

// Reset clears all scratch state while keeping allocated capacity.
// Complexity: O(V) where V is the number of nodes touched by the last search.
func (sc *SearchContext) Reset() {
	clear(sc.closed)
	clear(sc.cameFrom)
	clear(sc.gScore)
	clear(sc.open.index)
	for i := range sc.open.items {
		sc.open.items[i] = nil
	}
	sc.open.items = sc.open.items[:0]
	sc.seq = 0
}

// OpenLen returns the number of nodes currently in the open set.
func (sc *SearchContext) OpenLen() int { return sc.open.Len() }

// ClosedLen returns the number of nodes finalized so far.
func (sc *SearchContext) ClosedLen() int { return len(sc.closed) }

// push inserts an undiscovered node into the open set.
func (sc *SearchContext) push(n Node, g, h float64) {
	sc.seq++
	item := &openItem{node: n, g: g, h: h, f: g + h, seq: sc.seq}
	heap.Push(&sc.open, item)
}

// decrease lowers the g-score of a node already in the open set, reusing the
// heuristic computed on discovery. Its insertion sequence is kept so ties
// still resolve by discovery order.
func (sc *SearchContext) decrease(n Node, g float64) {
	item := sc.open.index[n]
	item.g = g
	item.f = g + item.h
	heap.Fix(&sc.open, item.pos)
}

// popMin removes and returns the open node with the lowest priority.
func (sc *SearchContext) popMin() *openItem {
	return heap.Pop(&sc.open).(*openItem)
}

// inOpen reports whether n is currently in the open set.
func (sc *SearchContext) inOpen(n Node) bool {
	_, ok := sc.open.index[n]
	return ok
}

// isClosed reports whether n has been finalized.
func (sc *SearchContext) isClosed(n Node) bool {
	_, ok := sc.closed[n]
	return ok
}

// openItem is one entry of the open set heap.
type openItem struct {
	node Node
	g    float64 // best known cost from start
	h    float64 // heuristic to goal, evaluated once on discovery
	f    float64 // g + h
	seq  uint64  // insertion order
	pos  int     // index in the heap slice, maintained by Swap
}

// openSet is a min-heap of *openItem ordered by (f, g, seq) ascending,
// with an index for O(1) membership and decrease-key.
type openSet struct {
	items []*openItem
	index map[Node]*openItem
}

// Len returns the number of items in the heap.
func (s openSet) Len() int { return len(s.items) }

// Less orders by f-score, then g-score, then insertion order.
func (s openSet) Less(i, j int) bool {
	a, b := s.items[i], s.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

// Swap swaps two items and keeps their heap positions current.
func (s openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.items[i].pos = i
	s.items[j].pos = j
}

// Push appends x; called by heap.Push only.
func (s *openSet) Push(x any) {
	item := x.(*openItem)
	item.pos = len(s.items)
	s.items = append(s.items, item)
	s.index[item.node] = item
}

// Pop removes the last item; called by heap.Pop only.
func (s *openSet) Pop() any {
	old := s.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	s.items = old[:n-1]
	delete(s.index, item.node)
	item.pos = -1

	return item
}
