package models

import "metrosim.transitlab.org/internal/sim"

// Station is the wire representation of a station.
type Station struct {
	ID           int64   `json:"id"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Importance   int     `json:"importance"`
	WaitingCount int     `json:"waitingCount"`
}

// NewStation builds the wire model from a simulation snapshot.
func NewStation(info sim.StationInfo) Station {
	return Station{
		ID:           int64(info.ID),
		X:            info.X,
		Y:            info.Y,
		Importance:   info.Importance,
		WaitingCount: info.Waiting,
	}
}

// NewStationList converts a slice of snapshots.
func NewStationList(infos []sim.StationInfo) []Station {
	list := make([]Station, len(infos))
	for i, info := range infos {
		list[i] = NewStation(info)
	}
	return list
}
