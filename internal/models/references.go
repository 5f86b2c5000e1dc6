package models

// ReferencesModel carries related entities alongside a response entry or
// list, so consumers can resolve ids without extra round trips.
type ReferencesModel struct {
	Stations []Station `json:"stations"`
	Tracks   []Track   `json:"tracks"`
}

// NewEmptyReferences creates a new empty References model with initialized
// empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Stations: []Station{},
		Tracks:   []Track{},
	}
}
