package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario seeds a fresh simulation from a YAML file: tunables plus an
// initial network. Stations are declared first and referenced by list index
// from tracks and trains, since real ids are only issued at apply time.
type Scenario struct {
	Simulation Config            `yaml:"simulation"`
	Stations   []ScenarioStation `yaml:"stations"`
	Tracks     []ScenarioLink    `yaml:"tracks"`
	Trains     []ScenarioLink    `yaml:"trains"`
}

// ScenarioStation places one station.
type ScenarioStation struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Importance int     `yaml:"importance"`
}

// ScenarioLink references two stations by their index in the scenario's
// station list.
type ScenarioLink struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Apply seeds the manager through the regular mutation surface so every
// topology invariant holds for scenario-built networks. Invalid references
// fail loudly instead of producing a half-built network.
func (sc *Scenario) Apply(m *Manager) error {
	ids := make([]StationID, len(sc.Stations))
	for i, s := range sc.Stations {
		ids[i] = m.AddStation(s.X, s.Y, s.Importance)
	}

	resolve := func(kind string, n int, link ScenarioLink) (StationID, StationID, error) {
		if link.From < 0 || link.From >= len(ids) || link.To < 0 || link.To >= len(ids) {
			return 0, 0, fmt.Errorf("%s %d references station index out of range", kind, n)
		}
		return ids[link.From], ids[link.To], nil
	}

	for i, link := range sc.Tracks {
		from, to, err := resolve("track", i, link)
		if err != nil {
			return err
		}
		if _, err := m.AddTrack(from, to); err != nil {
			return fmt.Errorf("track %d: %w", i, err)
		}
	}

	for i, link := range sc.Trains {
		from, to, err := resolve("train", i, link)
		if err != nil {
			return err
		}
		if _, err := m.AddTrain(from, to); err != nil {
			return fmt.Errorf("train %d: %w", i, err)
		}
	}
	return nil
}
