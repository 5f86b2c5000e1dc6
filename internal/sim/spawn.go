package sim

// spawnInterval returns the milliseconds between passenger spawns for a
// station of the given importance. Tier 1 stations spawn fastest.
func (m *Manager) spawnInterval(importance int) float64 {
	return 1000 / (m.cfg.BaseSpawnRate * float64(4-importance))
}

// gravityWeight is the destination-choice weight of a candidate station as
// seen from origin: pull rises with importance rank and falls with the
// square of distance. The max(1, ...) floor keeps nearby stations from
// dominating with unbounded weight.
func gravityWeight(origin, candidate *Station) float64 {
	d := distance(origin, candidate)
	denom := d * d / 10000
	if denom < 1 {
		denom = 1
	}
	return float64(4-candidate.Importance) / denom
}

// chooseDestination draws a destination for a passenger spawning at origin,
// weighted by the gravity model over every other station. Candidates are
// visited in ascending id order so a seeded random source reproduces the
// same draws. The final candidate absorbs any residual from floating-point
// rounding. Returns false when origin is the only station.
func (m *Manager) chooseDestination(origin *Station) (StationID, bool) {
	ids := m.stationIDs()
	candidates := make([]*Station, 0, len(ids)-1)
	total := 0.0
	for _, id := range ids {
		if id == origin.ID {
			continue
		}
		c := m.stations[id]
		candidates = append(candidates, c)
		total += gravityWeight(origin, c)
	}
	if len(candidates) == 0 || total <= 0 {
		return 0, false
	}

	draw := m.rng.Float64() * total
	for _, c := range candidates {
		draw -= gravityWeight(origin, c)
		if draw <= 0 {
			return c.ID, true
		}
	}
	return candidates[len(candidates)-1].ID, true
}
