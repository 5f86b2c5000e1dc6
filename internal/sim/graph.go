// Package sim implements the transit network simulation: the station/track
// graph with its all-pairs routing table, passenger spawning and lifecycle
// bookkeeping, the per-train movement state machine, and the tick pipeline
// that drives them.
package sim

import "sort"

// Edge is a weighted adjacency entry pointing at a neighboring station.
type Edge struct {
	To     StationID
	Weight float64
}

// Graph is an undirected weighted graph over station ids. Edges are stored
// symmetrically as two directed entries. AddEdge does not deduplicate;
// callers guard against repeated insertion for the same pair (the track
// registry rejects duplicate tracks before the edge is ever added).
type Graph struct {
	adjacency map[StationID][]Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[StationID][]Edge)}
}

// AddNode ensures an adjacency list exists for id. Idempotent.
func (g *Graph) AddNode(id StationID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// AddEdge connects a and b with the given weight, adding both nodes if they
// are absent. Both directed entries are appended.
func (g *Graph) AddEdge(a, b StationID, weight float64) {
	g.AddNode(a)
	g.AddNode(b)
	g.adjacency[a] = append(g.adjacency[a], Edge{To: b, Weight: weight})
	g.adjacency[b] = append(g.adjacency[b], Edge{To: a, Weight: weight})
}

// RemoveNode deletes id and strips every remaining adjacency list of entries
// targeting it.
func (g *Graph) RemoveNode(id StationID) {
	delete(g.adjacency, id)
	for node, edges := range g.adjacency {
		kept := edges[:0]
		for _, e := range edges {
			if e.To != id {
				kept = append(kept, e)
			}
		}
		g.adjacency[node] = kept
	}
}

// Neighbors returns the adjacency list for id; nil if the node is unknown or
// isolated.
func (g *Graph) Neighbors(id StationID) []Edge {
	return g.adjacency[id]
}

// HasNode reports whether id is present in the graph.
func (g *Graph) HasNode(id StationID) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Nodes returns all known station ids in ascending order.
func (g *Graph) Nodes() []StationID {
	ids := make([]StationID, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
