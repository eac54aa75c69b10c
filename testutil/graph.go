package testutil

import (
	"container/heap"
	"iter"
	"math"
)

// Edge is a weighted arc of a Graph.
type Edge struct {
	To   string
	Cost float64
}

// Graph is an explicit weighted digraph with a heuristic table and a goal set.
type Graph struct {
	Edges     map[string][]Edge
	Heuristic map[string]float64
	Goals     map[string]bool
}

// Node returns the state for vertex id.
func (g *Graph) Node(id string) Vertex { return Vertex{ID: id, g: g} }

// Vertex is a Graph state. It is comparable.
type Vertex struct {
	ID string
	g  *Graph
}

// NextStates yields the out-neighbours in edge order.
func (v Vertex) NextStates() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, e := range v.g.Edges[v.ID] {
			if !yield(v.g.Node(e.To)) {
				return
			}
		}
	}
}

// NextStatesWithCosts yields the out-neighbours with edge costs.
func (v Vertex) NextStatesWithCosts() iter.Seq2[Vertex, float64] {
	return func(yield func(Vertex, float64) bool) {
		for _, e := range v.g.Edges[v.ID] {
			if !yield(v.g.Node(e.To), e.Cost) {
				return
			}
		}
	}
}

// IsSolution reports whether v is a goal.
func (v Vertex) IsSolution() bool { return v.g.Goals[v.ID] }

// Score returns the heuristic of v (zero if absent).
func (v Vertex) Score() float64 { return v.g.Heuristic[v.ID] }

// PathCost sums edge costs along ids. It returns +Inf if an arc is missing.
func (g *Graph) PathCost(ids ...string) float64 {
	total := 0.0
	for i := 1; i < len(ids); i++ {
		found := false
		for _, e := range g.Edges[ids[i-1]] {
			if e.To == ids[i] {
				total += e.Cost
				found = true
				break
			}
		}
		if !found {
			return math.Inf(1)
		}
	}
	return total
}

// ShortestCost runs Dijkstra from start and returns the cheapest cost to any
// goal, or +Inf if no goal is reachable.
func (g *Graph) ShortestCost(start string) float64 {
	dist := map[string]float64{start: 0}
	pq := &distHeap{{start, 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(distItem)
		if cur.d > dist[cur.id] {
			continue
		}
		if g.Goals[cur.id] {
			return cur.d
		}
		for _, e := range g.Edges[cur.id] {
			nd := cur.d + e.Cost
			if d, ok := dist[e.To]; !ok || nd < d {
				dist[e.To] = nd
				heap.Push(pq, distItem{e.To, nd})
			}
		}
	}
	return math.Inf(1)
}

type distItem struct {
	id string
	d  float64
}

type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].d < h[j].d }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)        { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
