package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceIgnoresNonPositiveDelta(t *testing.T) {
	m := newTestManager(t, Config{})
	buildShuttle(t, m)

	m.Advance(0)
	m.Advance(-100)

	assert.Equal(t, 0.0, m.Now())
	assert.Zero(t, m.Stats().TotalPassengers)
}

func TestAdvanceAppliesSpeedMultiplier(t *testing.T) {
	m := newTestManager(t, Config{})

	m.SetSpeed(2)
	m.Advance(100)
	assert.Equal(t, 200.0, m.Now())

	m.SetSpeed(0)
	m.Advance(100)
	assert.Equal(t, 200.0, m.Now())
}

func TestSpawnFollowsImportanceInterval(t *testing.T) {
	// BaseSpawnRate 1, importance 1: interval = 1000/(1*3) ≈ 333.3ms.
	m := newTestManager(t, Config{BaseSpawnRate: 1})
	a := m.AddStation(0, 0, 1)
	m.AddStation(500, 0, 3)

	m.Advance(300)
	info, _ := m.Station(a)
	assert.Zero(t, info.Waiting, "spawn interval not yet elapsed")

	m.Advance(40)
	info, _ = m.Station(a)
	assert.Equal(t, 1, info.Waiting)

	// One spawn per station per tick, even after a long gap.
	m.Advance(10000)
	info, _ = m.Station(a)
	assert.Equal(t, 2, info.Waiting)
}

func TestSpawnedPassengerHasDistinctDestination(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 1})
	buildShuttle(t, m)

	for i := 0; i < 20; i++ {
		m.Advance(400)
	}

	require.NotZero(t, m.Stats().TotalPassengers)
	for _, p := range m.ledger.all {
		assert.NotEqual(t, p.Origin, p.Destination)
	}
}

func TestLoneStationNeverSpawns(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 1})
	m.AddStation(0, 0, 1)

	for i := 0; i < 10; i++ {
		m.Advance(1000)
	}

	assert.Zero(t, m.Stats().TotalPassengers)
}

// Progress must stay in [0,1] for any delta, including absurdly large ones:
// boundary crossings clamp, never overshoot into the next segment.
func TestMovementClampsProgress(t *testing.T) {
	m := newTestManager(t, Config{TrainSpeed: 0.1, DwellMillis: 500, BaseSpawnRate: 0.0001})
	a, b := buildShuttle(t, m)
	_, err := m.AddTrain(a, b)
	require.NoError(t, err)

	deltas := []float64{1, 17, 250, 500, 1000, 5000, 1e7}
	for _, dt := range deltas {
		m.Advance(dt)
		for _, train := range m.trains {
			assert.GreaterOrEqual(t, train.Progress, 0.0)
			assert.LessOrEqual(t, train.Progress, 1.0)
		}
	}
}

// A two-stop train's arrival sequence is a,b,a,b,... indefinitely.
func TestShuttlePingPong(t *testing.T) {
	m := newTestManager(t, Config{TrainSpeed: 0.1, DwellMillis: 500, BaseSpawnRate: 0.0001})
	a, b := buildShuttle(t, m)
	id, err := m.AddTrain(a, b)
	require.NoError(t, err)

	expected := []StationID{b, a, b, a, b, a}
	for i, want := range expected {
		m.Advance(500)  // dwell elapses, train departs
		m.Advance(1000) // full track traversal, train arrives

		info, ok := m.Train(id)
		require.True(t, ok)
		require.True(t, info.Waiting, "leg %d", i)
		require.NotNil(t, info.AtStation, "leg %d", i)
		assert.Equal(t, want, *info.AtStation, "leg %d", i)
	}
}

// A longer route ping-pongs: direction reverses at the ends instead of
// wrapping around.
func TestLongRoutePingPong(t *testing.T) {
	m := newTestManager(t, Config{TrainSpeed: 0.1, DwellMillis: 500, BaseSpawnRate: 0.0001})
	a := m.AddStation(0, 0, 1)
	b := m.AddStation(100, 0, 1)
	c := m.AddStation(200, 0, 1)
	_, err := m.AddTrack(a, b)
	require.NoError(t, err)
	_, err = m.AddTrack(b, c)
	require.NoError(t, err)
	id, err := m.AddTrain(a, c)
	require.NoError(t, err)

	expected := []StationID{b, c, b, a, b, c}
	for i, want := range expected {
		m.Advance(500)
		m.Advance(1000)

		info, ok := m.Train(id)
		require.True(t, ok)
		require.NotNil(t, info.AtStation, "leg %d", i)
		assert.Equal(t, want, *info.AtStation, "leg %d", i)
	}
}

func TestPassengerConservation(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 1, TrainSpeed: 0.1, DwellMillis: 500})
	a, b := buildShuttle(t, m)
	_, err := m.AddTrain(a, b)
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		m.Advance(300)

		counts := m.ledger.countByState()
		sum := counts[PassengerWaiting] + counts[PassengerOnboard] + counts[PassengerArrived]
		require.Equal(t, m.ledger.TotalSpawned(), sum, "tick %d", i)
	}
	assert.NotZero(t, m.Stats().TotalPassengers)
}

func TestBoardingRespectsCapacity(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 1, TrainCapacity: 2, DwellMillis: 1e8})
	a, b := buildShuttle(t, m)
	id, err := m.AddTrain(a, b)
	require.NoError(t, err)

	// The train dwells at a for the whole test; passengers spawn and the
	// first two board, the rest stay queued.
	for i := 0; i < 6; i++ {
		m.Advance(400)
	}

	info, ok := m.Train(id)
	require.True(t, ok)
	assert.Equal(t, 2, info.Onboard)

	stationInfo, _ := m.Station(a)
	assert.Equal(t, 4, stationInfo.Waiting)
}

func TestBoardingRequiresDestinationOnRoute(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 0.0001, DwellMillis: 1e8})
	a := m.AddStation(0, 0, 1)
	b := m.AddStation(100, 0, 1)
	c := m.AddStation(100, 100, 1)
	_, err := m.AddTrack(a, b)
	require.NoError(t, err)
	_, err = m.AddTrack(a, c)
	require.NoError(t, err)
	id, err := m.AddTrain(a, b)
	require.NoError(t, err)

	onRoute, err := m.ledger.spawn(a, b, 0)
	require.NoError(t, err)
	offRoute, err := m.ledger.spawn(a, c, 0)
	require.NoError(t, err)
	m.stations[a].enqueue(offRoute)
	m.stations[a].enqueue(onRoute)

	m.Advance(10)

	info, _ := m.Train(id)
	assert.Equal(t, 1, info.Onboard)
	assert.Equal(t, PassengerOnboard, onRoute.State)
	assert.Equal(t, PassengerWaiting, offRoute.State)
	assert.Equal(t, 1, m.stations[a].WaitingCount())
}

// Alighting happens before boarding, so a freed seat is available in the
// same tick but an alighted passenger can never bounce straight back on.
func TestAlightThenBoardSameTick(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 0.0001, TrainCapacity: 1, DwellMillis: 1e8})
	a, b := buildShuttle(t, m)
	id, err := m.AddTrain(a, b)
	require.NoError(t, err)

	train := m.trains[id]

	// Hand-place the train waiting at b with a full manifest.
	arriving, err := m.ledger.spawn(a, b, 0)
	require.NoError(t, err)
	arriving.markBoarded(0)
	train.passengers = append(train.passengers, arriving)
	train.Progress = 1
	train.Waiting = true
	train.DwellElapsed = 0

	departing, err := m.ledger.spawn(b, a, 0)
	require.NoError(t, err)
	m.stations[b].enqueue(departing)

	m.Advance(10)

	assert.Equal(t, PassengerArrived, arriving.State)
	assert.Equal(t, PassengerOnboard, departing.State)
	info, _ := m.Train(id)
	assert.Equal(t, 1, info.Onboard)
	assert.LessOrEqual(t, info.Onboard, info.Capacity)
}

func TestStatsAverageWait(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 1})
	buildShuttle(t, m)

	m.Advance(400) // one spawn per station at now=400
	m.Advance(200) // no further spawns; waiting passengers age 200ms

	stats := m.Stats()
	assert.Equal(t, 2, stats.TotalPassengers)
	assert.Equal(t, 2, stats.StationCount)
	assert.Zero(t, stats.TrainCount)
	assert.InDelta(t, 0.2, stats.AverageWaitSeconds, 1e-9)
}
