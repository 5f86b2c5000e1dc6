package models

import "metrosim.transitlab.org/internal/sim"

// Stats is the wire representation of the aggregate simulation counters.
type Stats struct {
	TotalPassengers    int     `json:"totalPassengers"`
	AverageWaitSeconds float64 `json:"averageWaitSeconds"`
	StationCount       int     `json:"stationCount"`
	TrainCount         int     `json:"trainCount"`
}

// NewStats builds the wire model from a simulation snapshot.
func NewStats(s sim.Stats) Stats {
	return Stats{
		TotalPassengers:    s.TotalPassengers,
		AverageWaitSeconds: s.AverageWaitSeconds,
		StationCount:       s.StationCount,
		TrainCount:         s.TrainCount,
	}
}
