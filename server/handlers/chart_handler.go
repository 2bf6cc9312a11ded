package handlers

import (
	"bytes"
	"net/http"

	"github.com/rs/zerolog/log"

	services "district-server/service"
	"district-server/util"
)

const (
	HOURLY_TREND_CHART_TITLE     = "時間帯別の混雑予測"
	DAILY_COMPARISON_CHART_TITLE = "過去との比較"
)

// ChartHandler renders the crowd series as standalone echarts pages.
type ChartHandler struct {
	crowdService *services.CrowdForecastService
}

func NewChartHandler(crowdService *services.CrowdForecastService) *ChartHandler {
	return &ChartHandler{crowdService: crowdService}
}

func (h *ChartHandler) GetHourlyTrendChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := util.RenderHourlyTrendChart(&buf, HOURLY_TREND_CHART_TITLE, h.crowdService.GetHourlyTrend()); err != nil {
		log.Error().Err(err).Msg("failed to render hourly trend chart")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *ChartHandler) GetDailyComparisonChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := util.RenderDailyComparisonChart(&buf, DAILY_COMPARISON_CHART_TITLE, h.crowdService.GetDailyComparison()); err != nil {
		log.Error().Err(err).Msg("failed to render daily comparison chart")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write chart body")
	}
}
