package restapi

import (
	"encoding/json"
	"net/http"

	"metrosim.transitlab.org/internal/models"
)

func (api *RestAPI) advanceHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		DeltaMs float64 `json:"deltaMs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"deltaMs": {"must be a valid JSON object with a deltaMs field"},
		})
		return
	}
	if input.DeltaMs < 0 {
		api.validationErrorResponse(w, r, map[string][]string{
			"deltaMs": {"must not be negative"},
		})
		return
	}

	api.Sim.Advance(input.DeltaMs)

	entry := struct {
		Now   float64      `json:"now"`
		Stats models.Stats `json:"stats"`
	}{
		Now:   api.Sim.Now(),
		Stats: models.NewStats(api.Sim.Stats()),
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
