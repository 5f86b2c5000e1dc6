package models

import "metrosim.transitlab.org/internal/sim"

// Passenger is the wire representation of an active passenger.
type Passenger struct {
	ID            int64   `json:"id"`
	OriginID      int64   `json:"originId"`
	DestinationID int64   `json:"destinationId"`
	State         string  `json:"state"`
	WaitSeconds   float64 `json:"waitSeconds"`
}

// NewPassenger builds the wire model from a simulation snapshot.
func NewPassenger(info sim.PassengerInfo) Passenger {
	return Passenger{
		ID:            int64(info.ID),
		OriginID:      int64(info.Origin),
		DestinationID: int64(info.Destination),
		State:         info.State,
		WaitSeconds:   info.WaitSeconds,
	}
}

// NewPassengerList converts a slice of snapshots.
func NewPassengerList(infos []sim.PassengerInfo) []Passenger {
	list := make([]Passenger, len(infos))
	for i, info := range infos {
		list[i] = NewPassenger(info)
	}
	return list
}
