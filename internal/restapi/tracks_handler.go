package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"metrosim.transitlab.org/internal/models"
	"metrosim.transitlab.org/internal/sim"
)

func (api *RestAPI) tracksHandler(w http.ResponseWriter, r *http.Request) {
	tracks := models.NewTrackList(api.Sim.Tracks())
	response := models.NewListResponse(tracks, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) createTrackHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		FromID int64 `json:"fromId"`
		ToID   int64 `json:"toId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"must be a valid JSON object with fromId and toId fields"},
		})
		return
	}

	id, err := api.Sim.AddTrack(sim.StationID(input.FromID), sim.StationID(input.ToID))
	switch {
	case errors.Is(err, sim.ErrStationNotFound):
		api.sendNotFound(w, r)
		return
	case errors.Is(err, sim.ErrSameStation):
		api.validationErrorResponse(w, r, map[string][]string{
			"toId": {"must differ from fromId"},
		})
		return
	case errors.Is(err, sim.ErrDuplicateTrack):
		api.sendConflict(w, r, err.Error())
		return
	case err != nil:
		api.serverErrorResponse(w, r, err)
		return
	}

	info, ok := api.Sim.Track(id)
	if !ok {
		api.serverErrorResponse(w, r, errEntityVanished)
		return
	}

	references := api.stationReferences(input.FromID, input.ToID)
	response := models.NewEntryResponse(models.NewTrack(info), references)
	api.sendResponse(w, r, response)
}
