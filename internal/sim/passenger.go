package sim

import "errors"

// PassengerState is the forward-only lifecycle of a passenger.
type PassengerState int

const (
	PassengerWaiting PassengerState = iota
	PassengerOnboard
	PassengerArrived
)

func (s PassengerState) String() string {
	switch s {
	case PassengerWaiting:
		return "waiting"
	case PassengerOnboard:
		return "onboard"
	case PassengerArrived:
		return "arrived"
	}
	return "unknown"
}

// ErrSameStation is returned when a passenger's origin and destination (or a
// track's or train's endpoints) are the same station.
var ErrSameStation = errors.New("origin and destination must differ")

// Passenger is a single rider. State only moves forward; the board and
// arrival timestamps are each set exactly once.
type Passenger struct {
	ID          PassengerID
	Origin      StationID
	Destination StationID
	State       PassengerState

	SpawnedAt float64 // sim clock ms
	BoardedAt float64
	ArrivedAt float64
}

// markBoarded transitions waiting → onboard.
func (p *Passenger) markBoarded(now float64) {
	p.State = PassengerOnboard
	p.BoardedAt = now
}

// markArrived transitions onboard → arrived.
func (p *Passenger) markArrived(now float64) {
	p.State = PassengerArrived
	p.ArrivedAt = now
}

// WaitMillis returns how long the passenger has been (or was) waiting to
// board, relative to now for passengers still in the queue.
func (p *Passenger) WaitMillis(now float64) float64 {
	if p.State == PassengerWaiting {
		return now - p.SpawnedAt
	}
	return p.BoardedAt - p.SpawnedAt
}

// Ledger tracks every passenger ever spawned. The all slice is append-only
// and feeds statistics; the active map is the live view, which passengers
// leave on arrival or when a topology change removes them from the system.
type Ledger struct {
	nextID PassengerID
	all    []*Passenger
	active map[PassengerID]*Passenger
}

func newLedger() *Ledger {
	return &Ledger{active: make(map[PassengerID]*Passenger)}
}

// spawn creates a waiting passenger with a fresh id.
func (l *Ledger) spawn(origin, destination StationID, now float64) (*Passenger, error) {
	if origin == destination {
		return nil, ErrSameStation
	}
	l.nextID++
	p := &Passenger{
		ID:          l.nextID,
		Origin:      origin,
		Destination: destination,
		State:       PassengerWaiting,
		SpawnedAt:   now,
	}
	l.all = append(l.all, p)
	l.active[p.ID] = p
	return p, nil
}

// arrive finalizes p and retires it from the active view.
func (l *Ledger) arrive(p *Passenger, now float64) {
	p.markArrived(now)
	delete(l.active, p.ID)
}

// drop removes a passenger from the active view without arrival, used when a
// station deletion cascades through the network.
func (l *Ledger) drop(id PassengerID) {
	delete(l.active, id)
}

// TotalSpawned returns the number of passengers ever created.
func (l *Ledger) TotalSpawned() int {
	return len(l.all)
}

// countByState tallies lifecycle states over every passenger ever spawned.
func (l *Ledger) countByState() map[PassengerState]int {
	counts := make(map[PassengerState]int, 3)
	for _, p := range l.all {
		counts[p.State]++
	}
	return counts
}
