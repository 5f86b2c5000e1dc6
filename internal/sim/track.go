package sim

import "math"

// Track connects two stations. The endpoint order only matters for deriving
// a train's initial movement direction along the segment; the connection
// itself is undirected. Length is the Euclidean distance between the two
// stations at creation time and never changes.
//
// CapSpeed is recorded per track but movement does not consult it: trains
// run at their own fixed speed. Kept because the data model defines it;
// honoring it as a per-segment cap would change trip times.
type Track struct {
	ID       TrackID
	From, To StationID
	Length   float64
	CapSpeed float64
}

// connects reports whether the track joins the unordered pair (a, b).
func (t *Track) connects(a, b StationID) bool {
	return (t.From == a && t.To == b) || (t.From == b && t.To == a)
}

// touches reports whether either endpoint is id.
func (t *Track) touches(id StationID) bool {
	return t.From == id || t.To == id
}

// distance returns the Euclidean distance between two stations.
func distance(a, b *Station) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
