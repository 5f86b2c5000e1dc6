package sim

import "slices"

// Train shuttles along its frozen route: the station sequence is computed
// from the shortest path at creation and never recomputed, even if the
// topology changes afterwards. A train whose route loses a station is
// removed by the delete cascade rather than re-routed.
//
// Segment state: TrackID resolves the current track through the registry at
// use time. FromID is the departure station of the current segment and ToID
// the arrival station; these match the track's two endpoints but their roles
// follow travel direction, not the track's recorded orientation. MoveDir is
// +1 when Progress runs 0→1 (travelling toward the track's recorded To
// endpoint) and -1 when it runs 1→0.
type Train struct {
	ID       TrainID
	Route    []StationID
	Capacity int
	Speed    float64 // position units per sim ms

	TrackID  TrackID
	Progress float64 // t along the track, always in [0,1]
	FromID   StationID
	ToID     StationID
	MoveDir  int
	RouteDir int // ping-pong traversal direction, used for routes > 2 stops

	Waiting      bool
	DwellElapsed float64
	DwellMillis  float64

	passengers []*Passenger
}

// CurrentStation returns the station the train is sitting at. Only an exact
// boundary progress counts; any intermediate t means the train is between
// stations and the second result is false. Resolution goes through MoveDir
// because the departure end is t=0 when heading toward t=1 but t=1 when
// heading the other way.
func (t *Train) CurrentStation() (StationID, bool) {
	atDeparture := (t.Progress == 0 && t.MoveDir > 0) || (t.Progress == 1 && t.MoveDir < 0)
	atArrival := (t.Progress == 1 && t.MoveDir > 0) || (t.Progress == 0 && t.MoveDir < 0)
	switch {
	case atDeparture:
		return t.FromID, true
	case atArrival:
		return t.ToID, true
	}
	return 0, false
}

// OnboardCount returns the number of passengers aboard.
func (t *Train) OnboardCount() int {
	return len(t.passengers)
}

// remainingCapacity returns the number of passengers that can still board.
func (t *Train) remainingCapacity() int {
	rem := t.Capacity - len(t.passengers)
	if rem < 0 {
		return 0
	}
	return rem
}

// routeContains reports whether id appears anywhere in the frozen route.
func (t *Train) routeContains(id StationID) bool {
	return slices.Contains(t.Route, id)
}

// removePassenger removes the passenger with the given id from the manifest,
// preserving boarding order of the rest. Returns false if not aboard.
func (t *Train) removePassenger(id PassengerID) bool {
	for i, p := range t.passengers {
		if p.ID == id {
			t.passengers = append(t.passengers[:i], t.passengers[i+1:]...)
			return true
		}
	}
	return false
}

// nextRouteStation computes the station the train departs toward from cur.
// Two-stop routes simply alternate endpoints. Longer routes continue along
// RouteDir, reversing it at either end of the sequence (ping-pong, never
// wrapping). The bool result is false when cur is not on the route, which
// indicates a broken invariant.
func (t *Train) nextRouteStation(cur StationID) (StationID, bool) {
	if len(t.Route) == 2 {
		if cur == t.Route[0] {
			return t.Route[1], true
		}
		return t.Route[0], true
	}
	idx := slices.Index(t.Route, cur)
	if idx < 0 {
		return 0, false
	}
	next := idx + t.RouteDir
	if next < 0 || next >= len(t.Route) {
		t.RouteDir = -t.RouteDir
		next = idx + t.RouteDir
	}
	return t.Route[next], true
}
