package utils

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a parameter value from the request context
// and removes file extensions like ".json".
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	return strings.Split(rawID, ".json")[0]
}

// ParseID parses a numeric entity id. Ids are positive integers issued
// sequentially by the simulation registries.
func ParseID(raw string) (int64, error) {
	if raw == "" {
		return 0, errors.New("id cannot be empty")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("id must be an integer")
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
