package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"district-server/dao/memory"
	"district-server/models/crowd"
	"district-server/observability"
)

// CrowdForecastService resolves crowd forecasts for events and serves the fixed crowd series.
type CrowdForecastService struct {
	repo *memory.FixtureRepository
}

// NewCrowdForecastService constructs a CrowdForecastService over the fixture repository.
func NewCrowdForecastService(repo *memory.FixtureRepository) *CrowdForecastService {
	return &CrowdForecastService{repo: repo}
}

// Resolve looks eventID up and reports whether the default record stood in for it.
func (cs *CrowdForecastService) Resolve(ctx context.Context, eventID string) crowd.Resolution {
	res := cs.repo.Forecast(eventID)
	observability.ObserveForecast(string(res.Source))
	if !res.Found() {
		log.Ctx(ctx).Debug().Str("component", "CrowdForecastService").Str("event_id", eventID).Msg("no forecast for event, using default")
	}
	return res
}

// GetForecast returns the forecast for eventID, or the default one when the id is empty or unknown.
// A non-empty title replaces the event name on the returned copy only.
func (cs *CrowdForecastService) GetForecast(ctx context.Context, eventID, title string) crowd.CrowdForecastRecord {
	return cs.GetForecastResolution(ctx, eventID, title).Record
}

// GetForecastResolution is GetForecast that also tells whether the default record was used.
func (cs *CrowdForecastService) GetForecastResolution(ctx context.Context, eventID, title string) crowd.Resolution {
	res := cs.Resolve(ctx, eventID)
	if title != "" {
		res.Record.Event.Name = title
	}
	return res
}

// GetAllForecasts returns every event-specific forecast ordered by event id.
func (cs *CrowdForecastService) GetAllForecasts() []crowd.CrowdForecastRecord {
	return cs.repo.Forecasts()
}

func (cs *CrowdForecastService) GetHourlyTrend() []crowd.HourlyTrendPoint {
	return cs.repo.HourlyTrend()
}

func (cs *CrowdForecastService) GetDailyComparison() []crowd.DailyComparisonPoint {
	return cs.repo.DailyComparison()
}
