package sim

// Config holds the simulation tunables. Zero fields are filled with defaults
// so a scenario file may override only what it cares about.
type Config struct {
	// BaseSpawnRate scales station passenger generation. The spawn interval
	// for a station is 1000 / (BaseSpawnRate * (4 - importance)) milliseconds.
	BaseSpawnRate float64 `yaml:"base_spawn_rate"`
	// DwellMillis is how long a train holds at each station before departing.
	DwellMillis float64 `yaml:"dwell_millis"`
	// TrainSpeed is the per-train speed in position units per millisecond.
	TrainSpeed float64 `yaml:"train_speed"`
	// TrainCapacity is the passenger capacity of newly created trains.
	TrainCapacity int `yaml:"train_capacity"`
	// TrackCapSpeed is recorded on new tracks; movement does not consult it.
	TrackCapSpeed float64 `yaml:"track_cap_speed"`
	// Seed seeds the gravity-model random source; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		BaseSpawnRate: 0.05,
		DwellMillis:   2000,
		TrainSpeed:    0.09,
		TrainCapacity: 6,
		TrackCapSpeed: 0.18,
	}
}

// WithDefaults returns c with every zero field replaced by its default.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.BaseSpawnRate == 0 {
		c.BaseSpawnRate = def.BaseSpawnRate
	}
	if c.DwellMillis == 0 {
		c.DwellMillis = def.DwellMillis
	}
	if c.TrainSpeed == 0 {
		c.TrainSpeed = def.TrainSpeed
	}
	if c.TrainCapacity == 0 {
		c.TrainCapacity = def.TrainCapacity
	}
	if c.TrackCapSpeed == 0 {
		c.TrackCapSpeed = def.TrackCapSpeed
	}
	return c
}
