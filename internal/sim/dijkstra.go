package sim

import (
	"container/heap"
	"math"
)

// Path is the result of a shortest-path computation: the ordered station ids
// from start to end inclusive, and the total distance. An unreachable end
// yields an empty Stations slice and an infinite Distance.
type Path struct {
	Stations []StationID
	Distance float64
}

// Exists reports whether the path reaches its destination.
func (p Path) Exists() bool {
	return len(p.Stations) > 0
}

// frontierItem is a pending node in the Dijkstra frontier.
type frontierItem struct {
	id   StationID
	dist float64
}

// frontier is a min-heap of frontierItems keyed by cumulative distance.
type frontier []frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)         { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra from start, early-exiting once end is settled.
// Relaxation uses strict less-than, so the first discovered path achieving
// the minimum distance wins and repeated queries on an unchanged graph are
// deterministic. Stale frontier entries are discarded lazily via the visited
// set.
func (g *Graph) ShortestPath(start, end StationID) Path {
	if start == end {
		if g.HasNode(start) {
			return Path{Stations: []StationID{start}, Distance: 0}
		}
		return Path{Distance: math.Inf(1)}
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return Path{Distance: math.Inf(1)}
	}

	dist := map[StationID]float64{start: 0}
	prev := make(map[StationID]StationID)
	visited := make(map[StationID]bool)

	pq := &frontier{{id: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true
		if item.id == end {
			break
		}
		for _, e := range g.Neighbors(item.id) {
			candidate := item.dist + e.Weight
			known, seen := dist[e.To]
			if !seen || candidate < known {
				dist[e.To] = candidate
				prev[e.To] = item.id
				heap.Push(pq, frontierItem{id: e.To, dist: candidate})
			}
		}
	}

	total, ok := dist[end]
	if !ok {
		return Path{Distance: math.Inf(1)}
	}

	// Walk predecessors back from end, then reverse.
	stations := []StationID{end}
	for at := end; at != start; {
		at = prev[at]
		stations = append(stations, at)
	}
	for i, j := 0, len(stations)-1; i < j; i, j = i+1, j-1 {
		stations[i], stations[j] = stations[j], stations[i]
	}
	return Path{Stations: stations, Distance: total}
}
