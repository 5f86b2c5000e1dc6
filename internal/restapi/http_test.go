package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"metrosim.transitlab.org/internal/app"
	"metrosim.transitlab.org/internal/logging"
	"metrosim.transitlab.org/internal/models"
	"metrosim.transitlab.org/internal/sim"
)

// createTestApi creates a RestAPI instance backed by an empty, seeded
// simulation for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	cfg := sim.DefaultConfig()
	cfg.Seed = 1
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	application := &app.Application{
		Config: app.Config{
			Env:     "test",
			ApiKeys: []string{"TEST"},
		},
		SimConfig: cfg,
		Logger:    logger,
		Sim:       sim.NewManager(cfg, logger),
	}

	return NewRestAPI(application)
}

func serveApi(t *testing.T, api *RestAPI) *httptest.Server {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// requestEndpoint makes a request against a freshly served router and decodes
// the response envelope. A nil body sends an empty request.
func requestEndpoint(t *testing.T, api *RestAPI, method, endpoint string, body any) (*http.Response, models.ResponseModel) {
	server := serveApi(t, api)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, server.URL+endpoint, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveAndRetrieveEndpoint sets up a test server, makes a GET request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := requestEndpoint(t, api, http.MethodGet, endpoint, nil)
	return api, resp, model
}

// buildTestNetwork seeds a three station line a-b-c with one track pair and
// returns the station ids in order.
func buildTestNetwork(t *testing.T, api *RestAPI) []sim.StationID {
	a := api.Sim.AddStation(0, 0, 1)
	b := api.Sim.AddStation(100, 0, 2)
	c := api.Sim.AddStation(200, 0, 3)

	_, err := api.Sim.AddTrack(a, b)
	require.NoError(t, err)
	_, err = api.Sim.AddTrack(b, c)
	require.NoError(t, err)

	return []sim.StationID{a, b, c}
}

func entryFromResponse(t *testing.T, response models.ResponseModel) map[string]interface{} {
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should hold an entry")
	return entry
}

func listFromResponse(t *testing.T, response models.ResponseModel) []interface{} {
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response data should hold a list")
	return list
}
