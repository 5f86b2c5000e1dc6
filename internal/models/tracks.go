package models

import "metrosim.transitlab.org/internal/sim"

// Track is the wire representation of a track.
type Track struct {
	ID       int64   `json:"id"`
	FromID   int64   `json:"fromId"`
	ToID     int64   `json:"toId"`
	Length   float64 `json:"length"`
	CapSpeed float64 `json:"capSpeed"`
}

// NewTrack builds the wire model from a simulation snapshot.
func NewTrack(info sim.TrackInfo) Track {
	return Track{
		ID:       int64(info.ID),
		FromID:   int64(info.From),
		ToID:     int64(info.To),
		Length:   info.Length,
		CapSpeed: info.CapSpeed,
	}
}

// NewTrackList converts a slice of snapshots.
func NewTrackList(infos []sim.TrackInfo) []Track {
	list := make([]Track, len(infos))
	for i, info := range infos {
		list[i] = NewTrack(info)
	}
	return list
}
