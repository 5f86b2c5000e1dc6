package restapi

import (
	"metrosim.transitlab.org/internal/models"
	"metrosim.transitlab.org/internal/sim"
)

// routeReferences resolves the stations a train's route visits so consumers
// can render the route without extra lookups. Stations deleted since the
// snapshot was taken are skipped.
func (api *RestAPI) routeReferences(route []int64) models.ReferencesModel {
	references := models.NewEmptyReferences()
	seen := make(map[int64]struct{}, len(route))
	for _, id := range route {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if info, ok := api.Sim.Station(sim.StationID(id)); ok {
			references.Stations = append(references.Stations, models.NewStation(info))
		}
	}
	return references
}

// stationReferences resolves a pair of track endpoints.
func (api *RestAPI) stationReferences(ids ...int64) models.ReferencesModel {
	return api.routeReferences(ids)
}
