package restapi

import (
	"encoding/json"
	"net/http"

	"metrosim.transitlab.org/internal/models"
	"metrosim.transitlab.org/internal/sim"
	"metrosim.transitlab.org/internal/utils"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stations := models.NewStationList(api.Sim.Stations())
	response := models.NewListResponse(stations, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) createStationHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		X          float64 `json:"x"`
		Y          float64 `json:"y"`
		Importance int     `json:"importance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"must be a valid JSON object"},
		})
		return
	}

	id := api.Sim.AddStation(input.X, input.Y, input.Importance)
	info, ok := api.Sim.Station(id)
	if !ok {
		api.serverErrorResponse(w, r, errEntityVanished)
		return
	}

	response := models.NewEntryResponse(models.NewStation(info), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.stationIDFromRequest(w, r)
	if !ok {
		return
	}

	info, found := api.Sim.Station(sim.StationID(id))
	if !found {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(models.NewStation(info), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) deleteStationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.stationIDFromRequest(w, r)
	if !ok {
		return
	}

	if !api.Sim.DeleteStation(sim.StationID(id)) {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(nil))
}

func (api *RestAPI) stationImportanceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.stationIDFromRequest(w, r)
	if !ok {
		return
	}

	var input struct {
		Importance int `json:"importance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"importance": {"must be a valid JSON object with an importance field"},
		})
		return
	}

	if !api.Sim.ChangeStationImportance(sim.StationID(id), input.Importance) {
		api.sendNotFound(w, r)
		return
	}

	info, found := api.Sim.Station(sim.StationID(id))
	if !found {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(models.NewStation(info), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) stationIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(utils.ExtractIDFromParams(r, "id"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return 0, false
	}
	return id, true
}
