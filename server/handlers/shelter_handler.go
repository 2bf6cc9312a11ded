package handlers

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	services "district-server/service"
)

const (
	LAT_QUERY_ARG    = "lat"
	LNG_QUERY_ARG    = "lng"
	RADIUS_QUERY_ARG = "radius"

	DEFAULT_RADIUS_KM = 2.0
	MAX_RADIUS_KM     = 50.0
)

type ShelterHandler struct {
	indexer *services.SheltersIndexerService
}

func NewShelterHandler(indexer *services.SheltersIndexerService) *ShelterHandler {
	return &ShelterHandler{indexer: indexer}
}

// GetSheltersNearby handles GET /v1/disaster/shelters/nearby?lat=&lng=&radius=
// radius is in km and optional.
func (h *ShelterHandler) GetSheltersNearby(w http.ResponseWriter, r *http.Request) {
	lat, lng, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	shelters, err := h.indexer.GetNearbyShelters(r.Context(), lat, lng, radius)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, shelters)
}

func (h *ShelterHandler) parseArgs(vals url.Values, w http.ResponseWriter) (lat, lng, radius float64, ok bool) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil || lat < -90 || lat > 90 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid argument "+LAT_QUERY_ARG)
		return
	}
	lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil || lng < -180 || lng > 180 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid argument "+LNG_QUERY_ARG)
		return
	}
	radius = DEFAULT_RADIUS_KM
	if vals.Has(RADIUS_QUERY_ARG) {
		radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil || radius <= 0 || radius > MAX_RADIUS_KM {
			writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid argument "+RADIUS_QUERY_ARG)
			return
		}
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	f, err := strconv.ParseFloat(vals.Get(name), 64)
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return 0, strconv.ErrRange
	}
	return f, err
}
