package sim

// The *Info types are value snapshots of live entities, taken under the
// manager mutex so callers never hold references into mutable state.

// StationInfo is a read-only view of a station.
type StationInfo struct {
	ID         StationID
	X, Y       float64
	Importance int
	Waiting    int
}

// TrackInfo is a read-only view of a track.
type TrackInfo struct {
	ID       TrackID
	From, To StationID
	Length   float64
	CapSpeed float64
}

// TrainInfo is a read-only view of a train. X and Y are the render position,
// interpolated along the current track by progress. AtStation is non-nil
// only when the train sits exactly at a station.
type TrainInfo struct {
	ID        TrainID
	Route     []StationID
	Capacity  int
	Onboard   int
	Waiting   bool
	Progress  float64
	X, Y      float64
	AtStation *StationID
}

// PassengerInfo is a read-only view of an active passenger.
type PassengerInfo struct {
	ID          PassengerID
	Origin      StationID
	Destination StationID
	State       string
	WaitSeconds float64
}

// Stats aggregates the whole simulation. AverageWaitSeconds covers only
// passengers currently in the waiting state.
type Stats struct {
	TotalPassengers    int
	AverageWaitSeconds float64
	StationCount       int
	TrainCount         int
}

// Stations returns snapshots of every station in id order.
func (m *Manager) Stations() []StationInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]StationInfo, 0, len(m.stations))
	for _, id := range m.stationIDs() {
		out = append(out, m.stationInfo(m.stations[id]))
	}
	return out
}

// Station returns a snapshot of one station.
func (m *Manager) Station(id StationID) (StationInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stations[id]
	if !ok {
		return StationInfo{}, false
	}
	return m.stationInfo(s), true
}

func (m *Manager) stationInfo(s *Station) StationInfo {
	return StationInfo{
		ID:         s.ID,
		X:          s.X,
		Y:          s.Y,
		Importance: s.Importance,
		Waiting:    s.WaitingCount(),
	}
}

// Tracks returns snapshots of every track in id order.
func (m *Manager) Tracks() []TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]TrackInfo, 0, len(m.tracks))
	for _, id := range m.trackIDs() {
		t := m.tracks[id]
		out = append(out, TrackInfo{
			ID:       t.ID,
			From:     t.From,
			To:       t.To,
			Length:   t.Length,
			CapSpeed: t.CapSpeed,
		})
	}
	return out
}

// Track returns a snapshot of one track.
func (m *Manager) Track(id TrackID) (TrackInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tracks[id]
	if !ok {
		return TrackInfo{}, false
	}
	return TrackInfo{
		ID:       t.ID,
		From:     t.From,
		To:       t.To,
		Length:   t.Length,
		CapSpeed: t.CapSpeed,
	}, true
}

// Trains returns snapshots of every train in id order.
func (m *Manager) Trains() []TrainInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]TrainInfo, 0, len(m.trains))
	for _, id := range m.trainIDs() {
		out = append(out, m.trainInfo(m.trains[id]))
	}
	return out
}

// Train returns a snapshot of one train.
func (m *Manager) Train(id TrainID) (TrainInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trains[id]
	if !ok {
		return TrainInfo{}, false
	}
	return m.trainInfo(t), true
}

func (m *Manager) trainInfo(t *Train) TrainInfo {
	route := make([]StationID, len(t.Route))
	copy(route, t.Route)

	info := TrainInfo{
		ID:       t.ID,
		Route:    route,
		Capacity: t.Capacity,
		Onboard:  t.OnboardCount(),
		Waiting:  t.Waiting,
		Progress: t.Progress,
	}
	if at, ok := t.CurrentStation(); ok {
		id := at
		info.AtStation = &id
	}
	// Progress is relative to the track's recorded endpoints, so the lerp
	// uses those rather than the train's departure/arrival roles.
	if track, ok := m.tracks[t.TrackID]; ok {
		from, okFrom := m.stations[track.From]
		to, okTo := m.stations[track.To]
		if okFrom && okTo {
			info.X = from.X + (to.X-from.X)*t.Progress
			info.Y = from.Y + (to.Y-from.Y)*t.Progress
		}
	}
	return info
}

// Passengers returns snapshots of every active (waiting or onboard)
// passenger in id order.
func (m *Manager) Passengers() []PassengerInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]PassengerInfo, 0, len(m.ledger.active))
	for _, p := range m.ledger.all {
		if _, live := m.ledger.active[p.ID]; !live {
			continue
		}
		out = append(out, PassengerInfo{
			ID:          p.ID,
			Origin:      p.Origin,
			Destination: p.Destination,
			State:       p.State.String(),
			WaitSeconds: p.WaitMillis(m.now) / 1000,
		})
	}
	return out
}

// Stats returns the aggregate counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	var waitTotal float64
	var waiting int
	for _, p := range m.ledger.active {
		if p.State == PassengerWaiting {
			waiting++
			waitTotal += (m.now - p.SpawnedAt) / 1000
		}
	}
	avg := 0.0
	if waiting > 0 {
		avg = waitTotal / float64(waiting)
	}
	return Stats{
		TotalPassengers:    m.ledger.TotalSpawned(),
		AverageWaitSeconds: avg,
		StationCount:       len(m.stations),
		TrainCount:         len(m.trains),
	}
}
