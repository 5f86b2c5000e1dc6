package sim

// Advance runs one simulation tick. deltaMs is a wall-clock delta in
// milliseconds; it is scaled by the speed multiplier, and a non-positive
// effective delta is a no-op. The pipeline order is fixed:
//
//  1. spawn  - stations generate passengers on their importance-driven timers
//  2. alight - arrived passengers leave waiting trains
//  3. board  - queued passengers fill the freed capacity
//  4. move   - trains advance along tracks or dwell toward departure
//
// Alighting before boarding keeps a passenger from leaving and re-entering
// the same train in one tick against stale capacity, and moving last means
// the waiting flag consulted by alight/board reflects the previous tick's
// outcome rather than anything that happened this tick.
func (m *Manager) Advance(deltaMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dt := deltaMs * m.speed
	if dt <= 0 {
		return
	}
	m.now += dt

	m.spawnPassengers()
	m.alightPassengers()
	m.boardPassengers()
	m.moveTrains(dt)
}

// spawnPassengers creates at most one passenger per station per tick, once
// the station's spawn interval has elapsed.
func (m *Manager) spawnPassengers() {
	for _, id := range m.stationIDs() {
		s := m.stations[id]
		if m.now-s.lastSpawnAt < m.spawnInterval(s.Importance) {
			continue
		}
		dest, ok := m.chooseDestination(s)
		if !ok {
			continue
		}
		p, err := m.ledger.spawn(s.ID, dest, m.now)
		if err != nil {
			// chooseDestination never returns the origin; reaching this
			// means the gravity draw is broken.
			m.logger.Error("passenger spawn rejected", "error", err, "station_id", int64(s.ID))
			continue
		}
		s.enqueue(p)
		s.lastSpawnAt = m.now
	}
}

// alightPassengers disembarks every onboard passenger whose destination is
// the station their train is currently waiting at.
func (m *Manager) alightPassengers() {
	for _, id := range m.trainIDs() {
		train := m.trains[id]
		if !train.Waiting {
			continue
		}
		station, ok := train.CurrentStation()
		if !ok {
			continue
		}
		kept := make([]*Passenger, 0, len(train.passengers))
		for _, p := range train.passengers {
			if p.Destination == station {
				m.ledger.arrive(p, m.now)
				continue
			}
			kept = append(kept, p)
		}
		train.passengers = kept
	}
}

// boardPassengers admits queued passengers onto waiting trains, in queue
// order, up to remaining capacity. A passenger boards only if their
// destination appears somewhere on the train's frozen route.
func (m *Manager) boardPassengers() {
	for _, id := range m.trainIDs() {
		train := m.trains[id]
		if !train.Waiting {
			continue
		}
		station, ok := train.CurrentStation()
		if !ok {
			continue
		}
		s, found := m.stations[station]
		if !found {
			continue
		}
		space := train.remainingCapacity()
		if space == 0 {
			continue
		}
		remaining := make([]*Passenger, 0, len(s.queue))
		for _, p := range s.queue {
			if space > 0 && train.routeContains(p.Destination) {
				p.markBoarded(m.now)
				train.passengers = append(train.passengers, p)
				space--
				continue
			}
			remaining = append(remaining, p)
		}
		s.queue = remaining
	}
}

// moveTrains advances transiting trains and accumulates dwell on waiting
// ones, departing them once the dwell duration is reached.
func (m *Manager) moveTrains(dt float64) {
	for _, id := range m.trainIDs() {
		train := m.trains[id]
		if train.Waiting {
			train.DwellElapsed += dt
			if train.DwellElapsed >= train.DwellMillis {
				m.departTrain(train)
			}
			continue
		}
		m.advanceTrain(train, dt)
	}
}

// advanceTrain applies one tick of movement along the current track. If the
// updated progress would cross a boundary it is clamped to exactly 0 or 1
// and the train transitions to Waiting with its dwell timer reset; overshoot
// is discarded, never carried into the next segment.
func (m *Manager) advanceTrain(train *Train, dt float64) {
	track, ok := m.tracks[train.TrackID]
	if !ok {
		m.logger.Error("train references missing track",
			"train_id", int64(train.ID), "track_id", int64(train.TrackID))
		return
	}
	step := train.Speed * dt / track.Length
	t := train.Progress + float64(train.MoveDir)*step
	switch {
	case train.MoveDir > 0 && t >= 1:
		train.Progress = 1
		train.Waiting = true
		train.DwellElapsed = 0
	case train.MoveDir < 0 && t <= 0:
		train.Progress = 0
		train.Waiting = true
		train.DwellElapsed = 0
	default:
		train.Progress = t
	}
}

// departTrain computes the next segment for a train whose dwell has elapsed
// and switches it to Transiting. A missing track between consecutive route
// stations is an invariant violation: it is logged and the train stays
// Waiting rather than crashing the tick.
func (m *Manager) departTrain(train *Train) {
	cur, ok := train.CurrentStation()
	if !ok {
		m.logger.Error("waiting train has no definite station",
			"train_id", int64(train.ID), "progress", train.Progress)
		return
	}
	next, ok := train.nextRouteStation(cur)
	if !ok {
		m.logger.Error("train station not on its route",
			"train_id", int64(train.ID), "station_id", int64(cur))
		return
	}
	track := m.trackBetween(cur, next)
	if track == nil {
		m.logger.Error("no track between consecutive route stations",
			"train_id", int64(train.ID), "from", int64(cur), "to", int64(next))
		return
	}
	train.setSegment(track, cur, next)
	train.Waiting = false
	train.DwellElapsed = 0
}
