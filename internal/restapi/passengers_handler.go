package restapi

import (
	"net/http"

	"metrosim.transitlab.org/internal/models"
)

func (api *RestAPI) passengersHandler(w http.ResponseWriter, r *http.Request) {
	passengers := models.NewPassengerList(api.Sim.Passengers())
	response := models.NewListResponse(passengers, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
