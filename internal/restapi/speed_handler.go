package restapi

import (
	"encoding/json"
	"net/http"

	"metrosim.transitlab.org/internal/models"
)

func (api *RestAPI) speedHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Multiplier float64 `json:"multiplier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"multiplier": {"must be a valid JSON object with a multiplier field"},
		})
		return
	}

	applied := api.Sim.SetSpeed(input.Multiplier)

	entry := struct {
		Multiplier float64 `json:"multiplier"`
	}{
		Multiplier: applied,
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
