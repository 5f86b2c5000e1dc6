// Package restapi exposes the simulation's query and mutation surface over
// HTTP. Handlers never touch simulation internals directly; everything goes
// through the manager's snapshot and mutation methods.
package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"metrosim.transitlab.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance wrapping the application.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{Application: application}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers every endpoint on the router. All routes share the
// request-logging middleware and the API key check.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	logRequests := NewRequestLoggingMiddleware(api.Logger)
	register := func(method, path string, h handlerFunc) {
		router.Handler(method, path, logRequests(validateAPIKey(api, h)))
	}

	register(http.MethodGet, "/api/transit/stations.json", api.stationsHandler)
	register(http.MethodPost, "/api/transit/stations.json", api.createStationHandler)
	register(http.MethodGet, "/api/transit/stations/:id", api.stationHandler)
	register(http.MethodDelete, "/api/transit/stations/:id", api.deleteStationHandler)
	register(http.MethodPut, "/api/transit/stations/:id/importance.json", api.stationImportanceHandler)

	register(http.MethodGet, "/api/transit/tracks.json", api.tracksHandler)
	register(http.MethodPost, "/api/transit/tracks.json", api.createTrackHandler)

	register(http.MethodGet, "/api/transit/trains.json", api.trainsHandler)
	register(http.MethodPost, "/api/transit/trains.json", api.createTrainHandler)
	register(http.MethodGet, "/api/transit/trains/:id", api.trainHandler)

	register(http.MethodGet, "/api/transit/passengers.json", api.passengersHandler)
	register(http.MethodGet, "/api/transit/stats.json", api.statsHandler)

	register(http.MethodPost, "/api/transit/advance.json", api.advanceHandler)
	register(http.MethodPut, "/api/transit/speed.json", api.speedHandler)
}
