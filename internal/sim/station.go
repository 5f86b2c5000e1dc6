package sim

// StationID, TrackID, TrainID, and PassengerID are sequential handles issued
// by the manager's registries. Entities reference each other by id, never by
// direct pointer, so registries can delete entries without leaving dangling
// references.
type (
	StationID   int64
	TrackID     int64
	TrainID     int64
	PassengerID int64
)

const (
	// MinImportance is the highest-pull tier; MaxImportance the lowest.
	MinImportance = 1
	MaxImportance = 3
)

// Station is a fixed point in the network that generates passengers. Its
// position never changes after placement. The queue holds waiting passengers
// in spawn order; queue position is boarding priority.
type Station struct {
	ID         StationID
	X, Y       float64
	Importance int

	queue       []*Passenger
	lastSpawnAt float64 // sim clock ms of the most recent spawn (or timer reset)
}

// clampImportance forces v into [MinImportance, MaxImportance]. Out-of-range
// values are silently clamped, never rejected.
func clampImportance(v int) int {
	if v < MinImportance {
		return MinImportance
	}
	if v > MaxImportance {
		return MaxImportance
	}
	return v
}

// WaitingCount returns the number of queued passengers.
func (s *Station) WaitingCount() int {
	return len(s.queue)
}

// enqueue appends p to the waiting queue.
func (s *Station) enqueue(p *Passenger) {
	s.queue = append(s.queue, p)
}

// removeFromQueue removes the passenger with the given id, preserving the
// order of the remaining queue. Returns false if the passenger is not queued.
func (s *Station) removeFromQueue(id PassengerID) bool {
	for i, p := range s.queue {
		if p.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	return false
}
