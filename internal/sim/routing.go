package sim

// routeKey identifies an ordered (from, to) pair in the routing table.
type routeKey struct {
	from, to StationID
}

// RoutingCache is the all-pairs shortest-path table over the current graph.
// It is discarded and rebuilt wholesale after every topology mutation; for
// the network sizes this simulation targets (tens of stations) the full
// rebuild is cheap enough that incremental patching is not worth its
// complexity.
type RoutingCache struct {
	paths map[routeKey]Path
}

// NewRoutingCache returns an empty cache. Call Rebuild before querying.
func NewRoutingCache() *RoutingCache {
	return &RoutingCache{paths: make(map[routeKey]Path)}
}

// Rebuild recomputes the table from scratch: one Dijkstra run per ordered
// pair of distinct nodes, storing only pairs a path actually exists for.
func (c *RoutingCache) Rebuild(g *Graph) {
	c.paths = make(map[routeKey]Path)
	nodes := g.Nodes()
	for _, from := range nodes {
		for _, to := range nodes {
			if from == to {
				continue
			}
			p := g.ShortestPath(from, to)
			if p.Exists() {
				c.paths[routeKey{from, to}] = p
			}
		}
	}
}

// Path returns the cached shortest path from from to to; the empty slice if
// none exists.
func (c *RoutingCache) Path(from, to StationID) []StationID {
	return c.paths[routeKey{from, to}].Stations
}

// HasPath reports whether a path between the ordered pair exists.
func (c *RoutingCache) HasPath(from, to StationID) bool {
	_, ok := c.paths[routeKey{from, to}]
	return ok
}

// NextHop returns the station immediately after from on the shortest path to
// to. The second result is false when no path exists or the path has fewer
// than two stations.
func (c *RoutingCache) NextHop(from, to StationID) (StationID, bool) {
	p := c.paths[routeKey{from, to}]
	if len(p.Stations) < 2 {
		return 0, false
	}
	return p.Stations[1], true
}
