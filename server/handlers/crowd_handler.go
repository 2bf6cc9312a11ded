package handlers

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	services "district-server/service"
)

const (
	EVENT_ID_QUERY_ARG    = "eventId"
	EVENT_TITLE_QUERY_ARG = "eventTitle"
	EVENT_ID_PATH_VAR     = "eventId"

	FORECAST_SOURCE_HEADER = "X-Forecast-Source"
	PEAK_HOUR_HEADER       = "X-Peak-Hour"
)

type CrowdHandler struct {
	crowdService *services.CrowdForecastService
}

func NewCrowdHandler(crowdService *services.CrowdForecastService) *CrowdHandler {
	return &CrowdHandler{crowdService: crowdService}
}

// GetForecast handles GET /v1/crowd/forecast and /v1/crowd/forecast/{eventId}.
// Both ids are optional; an unknown or missing id yields the default forecast.
func (h *CrowdHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	eventID := vals.Get(EVENT_ID_QUERY_ARG)
	if v, ok := mux.Vars(r)[EVENT_ID_PATH_VAR]; ok {
		eventID = v
	}

	res := h.crowdService.GetForecastResolution(r.Context(), eventID, vals.Get(EVENT_TITLE_QUERY_ARG))

	w.Header().Set(FORECAST_SOURCE_HEADER, string(res.Source))
	if peak, ok := res.Record.PeakHour(); ok {
		w.Header().Set(PEAK_HOUR_HEADER, url.QueryEscape(peak.Hour))
	}
	writeJSON(w, r, res.Record)
}

// GetAllForecasts handles GET /v1/crowd/forecasts
func (h *CrowdHandler) GetAllForecasts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.crowdService.GetAllForecasts())
}

// GetHourlyTrend handles GET /v1/crowd/hourly-trend
func (h *CrowdHandler) GetHourlyTrend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.crowdService.GetHourlyTrend())
}

// GetDailyComparison handles GET /v1/crowd/daily-comparison
func (h *CrowdHandler) GetDailyComparison(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.crowdService.GetDailyComparison())
}
