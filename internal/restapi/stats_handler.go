package restapi

import (
	"net/http"

	"metrosim.transitlab.org/internal/models"
)

func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats := models.NewStats(api.Sim.Stats())
	response := models.NewEntryResponse(stats, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
