package sim

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, cfg Config) *Manager {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(cfg, logger)
}

// buildShuttle creates two connected stations and returns their ids.
func buildShuttle(t *testing.T, m *Manager) (StationID, StationID) {
	t.Helper()
	a := m.AddStation(0, 0, 1)
	b := m.AddStation(100, 0, 1)
	_, err := m.AddTrack(a, b)
	require.NoError(t, err)
	return a, b
}

func TestAddStationClampsImportance(t *testing.T) {
	m := newTestManager(t, Config{})

	low := m.AddStation(0, 0, -5)
	high := m.AddStation(10, 0, 99)

	lowInfo, ok := m.Station(low)
	require.True(t, ok)
	highInfo, ok := m.Station(high)
	require.True(t, ok)

	assert.Equal(t, MinImportance, lowInfo.Importance)
	assert.Equal(t, MaxImportance, highInfo.Importance)
}

func TestAddStationIssuesSequentialIDs(t *testing.T) {
	m := newTestManager(t, Config{})

	first := m.AddStation(0, 0, 2)
	second := m.AddStation(1, 1, 2)

	assert.Equal(t, first+1, second)
}

func TestChangeStationImportance(t *testing.T) {
	m := newTestManager(t, Config{})
	id := m.AddStation(0, 0, 2)

	assert.True(t, m.ChangeStationImportance(id, 99))
	info, _ := m.Station(id)
	assert.Equal(t, MaxImportance, info.Importance)

	assert.False(t, m.ChangeStationImportance(id+100, 1))
}

func TestChangeStationImportanceResetsSpawnTimer(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 1})
	a, _ := buildShuttle(t, m)

	// Bring the station right up to its spawn threshold, then reset.
	m.Advance(300)
	require.True(t, m.ChangeStationImportance(a, 1))
	assert.Equal(t, m.now, m.stations[a].lastSpawnAt)
}

func TestAddTrackRejectsUnknownStations(t *testing.T) {
	m := newTestManager(t, Config{})
	a := m.AddStation(0, 0, 1)

	_, err := m.AddTrack(a, a+50)
	assert.ErrorIs(t, err, ErrStationNotFound)

	_, err = m.AddTrack(a+50, a)
	assert.ErrorIs(t, err, ErrStationNotFound)

	_, err = m.AddTrack(a, a)
	assert.ErrorIs(t, err, ErrSameStation)
}

func TestAddTrackRejectsDuplicatePair(t *testing.T) {
	m := newTestManager(t, Config{})
	a, b := buildShuttle(t, m)

	_, err := m.AddTrack(a, b)
	assert.ErrorIs(t, err, ErrDuplicateTrack)

	// The reversed pair is the same unordered connection.
	_, err = m.AddTrack(b, a)
	assert.ErrorIs(t, err, ErrDuplicateTrack)

	assert.Len(t, m.Tracks(), 1)
}

func TestAddTrackLengthIsEuclidean(t *testing.T) {
	m := newTestManager(t, Config{})
	a := m.AddStation(0, 0, 1)
	b := m.AddStation(3, 4, 1)

	id, err := m.AddTrack(a, b)
	require.NoError(t, err)

	tracks := m.Tracks()
	require.Len(t, tracks, 1)
	assert.Equal(t, id, tracks[0].ID)
	assert.Equal(t, 5.0, tracks[0].Length)
}

func TestAddTrainRequiresPath(t *testing.T) {
	m := newTestManager(t, Config{})
	a := m.AddStation(0, 0, 1)
	b := m.AddStation(100, 0, 1)

	_, err := m.AddTrain(a, b)
	assert.ErrorIs(t, err, ErrNoRoute)

	_, err = m.AddTrain(a, a+50)
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestAddTrainFreezesRoute(t *testing.T) {
	m := newTestManager(t, Config{})
	a := m.AddStation(0, 0, 1)
	b := m.AddStation(100, 0, 1)
	c := m.AddStation(200, 0, 1)
	_, err := m.AddTrack(a, b)
	require.NoError(t, err)
	_, err = m.AddTrack(b, c)
	require.NoError(t, err)

	id, err := m.AddTrain(a, c)
	require.NoError(t, err)

	info, ok := m.Train(id)
	require.True(t, ok)
	assert.Equal(t, []StationID{a, b, c}, info.Route)
	assert.True(t, info.Waiting)
	require.NotNil(t, info.AtStation)
	assert.Equal(t, a, *info.AtStation)

	// A later shortcut does not change the frozen route.
	_, err = m.AddTrack(a, c)
	require.NoError(t, err)
	info, _ = m.Train(id)
	assert.Equal(t, []StationID{a, b, c}, info.Route)
}

func TestDeleteStationUnknownID(t *testing.T) {
	m := newTestManager(t, Config{})
	assert.False(t, m.DeleteStation(7))
}

func TestDeleteStationCascades(t *testing.T) {
	m := newTestManager(t, Config{BaseSpawnRate: 1})
	a := m.AddStation(0, 0, 1)
	b := m.AddStation(100, 0, 1)
	c := m.AddStation(200, 0, 1)
	_, err := m.AddTrack(a, b)
	require.NoError(t, err)
	_, err = m.AddTrack(b, c)
	require.NoError(t, err)
	trainID, err := m.AddTrain(a, c)
	require.NoError(t, err)

	// Generate passengers so queues are non-empty before the cascade.
	for i := 0; i < 10; i++ {
		m.Advance(400)
	}
	require.NotZero(t, m.Stats().TotalPassengers)

	require.True(t, m.DeleteStation(b))

	// Tracks touching b are gone.
	for _, track := range m.Tracks() {
		assert.NotEqual(t, b, track.From)
		assert.NotEqual(t, b, track.To)
	}
	assert.Empty(t, m.Tracks())

	// The train's frozen route contained b, so the train is gone.
	_, ok := m.Train(trainID)
	assert.False(t, ok)
	assert.Zero(t, m.Stats().TrainCount)

	// No active passenger references b.
	for _, p := range m.Passengers() {
		assert.NotEqual(t, b, p.Origin)
		assert.NotEqual(t, b, p.Destination)
	}

	// Station queues only hold passengers that survived the cascade.
	for _, s := range m.stations {
		for _, p := range s.queue {
			assert.NotEqual(t, b, p.Origin)
			assert.NotEqual(t, b, p.Destination)
		}
	}

	// The routing table references neither b nor any path through it.
	for key, p := range m.routes.paths {
		assert.NotEqual(t, b, key.from)
		assert.NotEqual(t, b, key.to)
		assert.NotContains(t, p.Stations, b)
	}
	assert.False(t, m.routes.HasPath(a, c))
}

func TestSetSpeedClamps(t *testing.T) {
	m := newTestManager(t, Config{})

	assert.Equal(t, 2.0, m.SetSpeed(5))
	assert.Equal(t, 2.0, m.Speed())
	assert.Equal(t, 0.0, m.SetSpeed(-1))
	assert.Equal(t, 1.5, m.SetSpeed(1.5))
}

func TestTrainRenderPositionInterpolates(t *testing.T) {
	m := newTestManager(t, Config{TrainSpeed: 0.05, DwellMillis: 100, BaseSpawnRate: 0.0001})
	a, b := buildShuttle(t, m)
	id, err := m.AddTrain(a, b)
	require.NoError(t, err)

	// Depart, then travel half the 100-unit track: 0.05 units/ms * 1000ms = 50.
	m.Advance(100)
	m.Advance(1000)

	info, ok := m.Train(id)
	require.True(t, ok)
	assert.False(t, info.Waiting)
	assert.Nil(t, info.AtStation)
	assert.InDelta(t, 0.5, info.Progress, 1e-9)
	assert.InDelta(t, 50, info.X, 1e-9)
	assert.InDelta(t, 0, info.Y, 1e-9)
}
