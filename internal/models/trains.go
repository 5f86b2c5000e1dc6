package models

import "metrosim.transitlab.org/internal/sim"

// Train is the wire representation of a train. X and Y are the render
// position interpolated along the current track; atStationId is null while
// the train is between stations.
type Train struct {
	ID          int64   `json:"id"`
	Route       []int64 `json:"route"`
	Capacity    int     `json:"capacity"`
	Onboard     int     `json:"onboard"`
	Waiting     bool    `json:"waiting"`
	Progress    float64 `json:"progress"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	AtStationID *int64  `json:"atStationId"`
}

// NewTrain builds the wire model from a simulation snapshot.
func NewTrain(info sim.TrainInfo) Train {
	route := make([]int64, len(info.Route))
	for i, id := range info.Route {
		route[i] = int64(id)
	}
	train := Train{
		ID:       int64(info.ID),
		Route:    route,
		Capacity: info.Capacity,
		Onboard:  info.Onboard,
		Waiting:  info.Waiting,
		Progress: info.Progress,
		X:        info.X,
		Y:        info.Y,
	}
	if info.AtStation != nil {
		id := int64(*info.AtStation)
		train.AtStationID = &id
	}
	return train
}

// NewTrainList converts a slice of snapshots.
func NewTrainList(infos []sim.TrainInfo) []Train {
	list := make([]Train, len(infos))
	for i, info := range infos {
		list[i] = NewTrain(info)
	}
	return list
}
