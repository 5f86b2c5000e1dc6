package sim

import (
	"errors"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"
)

var (
	// ErrStationNotFound is returned when a mutation references an unknown
	// station id.
	ErrStationNotFound = errors.New("station not found")
	// ErrDuplicateTrack is returned when a track already connects the pair.
	ErrDuplicateTrack = errors.New("track already connects these stations")
	// ErrNoRoute is returned when the routing table has no path between the
	// requested endpoints.
	ErrNoRoute = errors.New("no route between stations")
)

// Manager owns the entire simulation state: the graph and routing table, the
// station/track/train registries with their id allocators, the passenger
// ledger, and the simulation clock. Every query and mutation serializes on
// the mutex, so a topology change can never interleave with an in-progress
// tick.
type Manager struct {
	mu     sync.Mutex
	cfg    Config
	logger *slog.Logger
	rng    *rand.Rand

	graph  *Graph
	routes *RoutingCache

	stations map[StationID]*Station
	tracks   map[TrackID]*Track
	trains   map[TrainID]*Train
	ledger   *Ledger

	nextStationID StationID
	nextTrackID   TrackID
	nextTrainID   TrainID

	now   float64 // sim clock, milliseconds
	speed float64 // multiplier applied to advance deltas, clamped to [0,2]

	shutdownChan chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewManager creates an empty simulation with the given tunables. A zero
// cfg.Seed seeds the gravity-model random source from the wall clock;
// anything else makes destination draws reproducible.
func NewManager(cfg Config, logger *slog.Logger) *Manager {
	cfg = cfg.WithDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		cfg:          cfg,
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		graph:        NewGraph(),
		routes:       NewRoutingCache(),
		stations:     make(map[StationID]*Station),
		tracks:       make(map[TrackID]*Track),
		trains:       make(map[TrainID]*Train),
		ledger:       newLedger(),
		speed:        1,
		shutdownChan: make(chan struct{}),
	}
}

// AddStation places a new station and rebuilds the routing table. The
// importance tier is clamped to the valid range.
func (m *Manager) AddStation(x, y float64, importance int) StationID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextStationID++
	s := &Station{
		ID:          m.nextStationID,
		X:           x,
		Y:           y,
		Importance:  clampImportance(importance),
		lastSpawnAt: m.now,
	}
	m.stations[s.ID] = s
	m.graph.AddNode(s.ID)
	m.routes.Rebuild(m.graph)

	m.logger.Info("station added", "station_id", int64(s.ID), "importance", s.Importance)
	return s.ID
}

// ChangeStationImportance clamps and writes the tier, resetting the spawn
// timer so the new rate applies immediately. Returns false for an unknown id.
func (m *Manager) ChangeStationImportance(id StationID, importance int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stations[id]
	if !ok {
		return false
	}
	s.Importance = clampImportance(importance)
	s.lastSpawnAt = m.now
	return true
}

// DeleteStation removes a station and everything that references it: tracks
// touching it, trains whose frozen route contains it, and passengers whose
// origin or destination is it (pulled out of station queues, train manifests,
// and the ledger's active view). Passengers aboard a removed train leave the
// active view with it. The graph node is removed last and the routing table
// rebuilt, so no cached path mentions the deleted id. Returns false for an
// unknown id.
func (m *Manager) DeleteStation(id StationID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stations[id]
	if !ok {
		return false
	}

	for trackID, track := range m.tracks {
		if track.touches(id) {
			delete(m.tracks, trackID)
		}
	}

	for trainID, train := range m.trains {
		if !train.routeContains(id) {
			continue
		}
		for _, p := range train.passengers {
			m.ledger.drop(p.ID)
		}
		delete(m.trains, trainID)
	}

	// Strip doomed passengers from every remaining container.
	for pid, p := range m.ledger.active {
		if p.Origin != id && p.Destination != id {
			continue
		}
		if origin, ok := m.stations[p.Origin]; ok {
			origin.removeFromQueue(pid)
		}
		for _, train := range m.trains {
			train.removePassenger(pid)
		}
		m.ledger.drop(pid)
	}
	s.queue = nil

	delete(m.stations, id)
	m.graph.RemoveNode(id)
	m.routes.Rebuild(m.graph)

	m.logger.Info("station deleted", "station_id", int64(id))
	return true
}

// AddTrack connects two stations. Unknown endpoints are a precondition
// violation and fail with ErrStationNotFound; a second track for the same
// unordered pair fails with ErrDuplicateTrack. On success the edge is added
// to the graph and the routing table rebuilt.
func (m *Manager) AddTrack(from, to StationID) (TrackID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if from == to {
		return 0, ErrSameStation
	}
	a, ok := m.stations[from]
	if !ok {
		return 0, ErrStationNotFound
	}
	b, ok := m.stations[to]
	if !ok {
		return 0, ErrStationNotFound
	}
	if m.trackBetween(from, to) != nil {
		return 0, ErrDuplicateTrack
	}

	m.nextTrackID++
	t := &Track{
		ID:       m.nextTrackID,
		From:     from,
		To:       to,
		Length:   distance(a, b),
		CapSpeed: m.cfg.TrackCapSpeed,
	}
	m.tracks[t.ID] = t
	m.graph.AddEdge(from, to, t.Length)
	m.routes.Rebuild(m.graph)

	m.logger.Info("track added",
		"track_id", int64(t.ID),
		"from", int64(from),
		"to", int64(to),
		"length", t.Length)
	return t.ID, nil
}

// AddTrain creates a train on the current shortest path between the two
// stations, freezing that path as its route. Fails with ErrNoRoute when the
// routing table has no path. The train starts Waiting at from, with its
// first segment set up and the movement direction derived from the first
// track's recorded endpoint orientation.
func (m *Manager) AddTrain(from, to StationID) (TrainID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if from == to {
		return 0, ErrSameStation
	}
	if _, ok := m.stations[from]; !ok {
		return 0, ErrStationNotFound
	}
	if _, ok := m.stations[to]; !ok {
		return 0, ErrStationNotFound
	}
	cached := m.routes.Path(from, to)
	if len(cached) < 2 {
		return 0, ErrNoRoute
	}

	route := make([]StationID, len(cached))
	copy(route, cached)

	track := m.trackBetween(route[0], route[1])
	if track == nil {
		// Route edges come straight from the graph, which only ever gains
		// edges through AddTrack, so this cannot happen unless the
		// registries are out of sync.
		m.logger.Error("no track for first route segment",
			"from", int64(route[0]), "to", int64(route[1]))
		return 0, ErrNoRoute
	}

	m.nextTrainID++
	train := &Train{
		ID:          m.nextTrainID,
		Route:       route,
		Capacity:    m.cfg.TrainCapacity,
		Speed:       m.cfg.TrainSpeed,
		RouteDir:    1,
		Waiting:     true,
		DwellMillis: m.cfg.DwellMillis,
	}
	train.setSegment(track, route[0], route[1])
	m.trains[train.ID] = train

	m.logger.Info("train added",
		"train_id", int64(train.ID),
		"from", int64(from),
		"to", int64(to),
		"stops", len(route))
	return train.ID, nil
}

// setSegment points the train at the track between cur and next, orienting
// progress and direction from the track's recorded endpoints.
func (t *Train) setSegment(track *Track, cur, next StationID) {
	t.TrackID = track.ID
	t.FromID = cur
	t.ToID = next
	if track.From == cur {
		t.MoveDir = 1
		t.Progress = 0
	} else {
		t.MoveDir = -1
		t.Progress = 1
	}
}

// trackBetween returns the track connecting the unordered pair, or nil.
// Lookup is by id scan; with tens of tracks this beats maintaining a second
// index through the delete cascade.
func (m *Manager) trackBetween(a, b StationID) *Track {
	for _, t := range m.tracks {
		if t.connects(a, b) {
			return t
		}
	}
	return nil
}

// SetSpeed clamps and stores the simulation speed multiplier, returning the
// value actually applied.
func (m *Manager) SetSpeed(multiplier float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if multiplier < 0 {
		multiplier = 0
	}
	if multiplier > 2 {
		multiplier = 2
	}
	m.speed = multiplier
	return m.speed
}

// Speed returns the current multiplier.
func (m *Manager) Speed() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.speed
}

// Now returns the simulation clock in milliseconds.
func (m *Manager) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// stationIDs returns station ids in ascending order for deterministic
// iteration.
func (m *Manager) stationIDs() []StationID {
	ids := make([]StationID, 0, len(m.stations))
	for id := range m.stations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// trainIDs returns train ids in ascending order.
func (m *Manager) trainIDs() []TrainID {
	ids := make([]TrainID, 0, len(m.trains))
	for id := range m.trains {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// trackIDs returns track ids in ascending order.
func (m *Manager) trackIDs() []TrackID {
	ids := make([]TrackID, 0, len(m.tracks))
	for id := range m.tracks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// StartTicker drives the simulation from a background goroutine, advancing
// by the wall-clock interval each tick until Shutdown.
func (m *Manager) StartTicker(interval time.Duration) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-m.shutdownChan:
				return
			case <-ticker.C:
				m.Advance(float64(interval.Milliseconds()))
			}
		}
	}()
}

// Shutdown stops background goroutines and waits for them to exit. The last
// completed tick's state is left intact.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownChan)
		m.wg.Wait()
	})
}
