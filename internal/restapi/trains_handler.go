package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"metrosim.transitlab.org/internal/models"
	"metrosim.transitlab.org/internal/sim"
	"metrosim.transitlab.org/internal/utils"
)

func (api *RestAPI) trainsHandler(w http.ResponseWriter, r *http.Request) {
	trains := models.NewTrainList(api.Sim.Trains())
	response := models.NewListResponse(trains, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) createTrainHandler(w http.ResponseWriter, r *http.Request) {
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

	id, err := api.Sim.AddTrain(sim.StationID(input.FromID), sim.StationID(input.ToID))
	switch {
	case errors.Is(err, sim.ErrStationNotFound):
		api.sendNotFound(w, r)
		return
	case errors.Is(err, sim.ErrSameStation):
		api.validationErrorResponse(w, r, map[string][]string{
			"toId": {"must differ from fromId"},
		})
		return
	case errors.Is(err, sim.ErrNoRoute):
		api.sendConflict(w, r, err.Error())
		return
	case err != nil:
		api.serverErrorResponse(w, r, err)
		return
	}

	info, ok := api.Sim.Train(id)
	if !ok {
		api.serverErrorResponse(w, r, errEntityVanished)
		return
	}

	train := models.NewTrain(info)
	response := models.NewEntryResponse(train, api.routeReferences(train.Route))
	api.sendResponse(w, r, response)
}

func (api *RestAPI) trainHandler(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(utils.ExtractIDFromParams(r, "id"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	info, found := api.Sim.Train(sim.TrainID(id))
	if !found {
		api.sendNotFound(w, r)
		return
	}

	train := models.NewTrain(info)
	response := models.NewEntryResponse(train, api.routeReferences(train.Route))
	api.sendResponse(w, r, response)
}
