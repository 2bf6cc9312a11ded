package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"district-server/api/fixtures"
	"district-server/config"
	"district-server/models"
	"district-server/models/crowd"
)

// FixtureRepository is the read-only fixture table, loaded once at startup.
// Every accessor hands out a deep copy, so the table cannot be mutated after load.
type FixtureRepository struct {
	home      models.HomeFeed
	events    models.EventListing
	disaster  models.DisasterInfo
	localInfo models.LocalInfo
	crowd     crowd.CrowdFixture
	eventIDs  []string
}

// LoadFixtureRepository reads and validates every fixture document from src.
// Any error here is meant to stop the process.
func LoadFixtureRepository(ctx context.Context, src fixtures.Source) (*FixtureRepository, error) {
	repo := &FixtureRepository{}

	docs := []struct {
		name string
		dst  any
	}{
		{config.CROWD_DATA_RESOURCE, &repo.crowd},
		{config.HOME_DATA_RESOURCE, &repo.home},
		{config.EVENT_DATA_RESOURCE, &repo.events},
		{config.DISASTER_DATA_RESOURCE, &repo.disaster},
		{config.LOCAL_INFO_DATA_RESOURCE, &repo.localInfo},
	}
	for _, d := range docs {
		if err := src.Load(ctx, d.name, d.dst); err != nil {
			return nil, fmt.Errorf("[FixtureRepository] failed to load %s from %s: %w", d.name, src, err)
		}
	}

	if err := validateCrowdFixture(repo.crowd); err != nil {
		return nil, fmt.Errorf("[FixtureRepository] invalid %s: %w", config.CROWD_DATA_RESOURCE, err)
	}
	if err := validateEventListing(repo.events); err != nil {
		return nil, fmt.Errorf("[FixtureRepository] invalid %s: %w", config.EVENT_DATA_RESOURCE, err)
	}
	if err := validateDisasterInfo(repo.disaster); err != nil {
		return nil, fmt.Errorf("[FixtureRepository] invalid %s: %w", config.DISASTER_DATA_RESOURCE, err)
	}

	repo.eventIDs = make([]string, 0, len(repo.crowd.Events))
	for id := range repo.crowd.Events {
		repo.eventIDs = append(repo.eventIDs, id)
	}
	sort.Strings(repo.eventIDs)

	warnIndicatorMismatch("default", repo.crowd.Default)
	for _, id := range repo.eventIDs {
		warnIndicatorMismatch("events["+id+"]", repo.crowd.Events[id])
	}

	log.Info().
		Str("component", "FixtureRepository").
		Str("source", src.String()).
		Int("forecasts", len(repo.eventIDs)).
		Int("shelters", len(repo.disaster.Shelters)).
		Msg("fixtures loaded")
	return repo, nil
}

func (r *FixtureRepository) Home() models.HomeFeed {
	return r.home.Clone()
}

func (r *FixtureRepository) Events() models.EventListing {
	return r.events.Clone()
}

func (r *FixtureRepository) Disaster() models.DisasterInfo {
	return r.disaster.Clone()
}

func (r *FixtureRepository) LocalInfo() models.LocalInfo {
	return r.localInfo.Clone()
}

// Forecast resolves eventID against the known forecasts, falling back to the default record.
func (r *FixtureRepository) Forecast(eventID string) crowd.Resolution {
	if rec, ok := r.crowd.Events[eventID]; ok {
		return crowd.Resolution{EventID: eventID, Source: crowd.SourceFound, Record: rec.Clone()}
	}
	return crowd.Resolution{EventID: eventID, Source: crowd.SourceDefault, Record: r.crowd.Default.Clone()}
}

// EventIDs lists the ids with a dedicated forecast, sorted.
func (r *FixtureRepository) EventIDs() []string {
	return append([]string(nil), r.eventIDs...)
}

// Forecasts returns every dedicated forecast in EventIDs order.
func (r *FixtureRepository) Forecasts() []crowd.CrowdForecastRecord {
	out := make([]crowd.CrowdForecastRecord, 0, len(r.eventIDs))
	for _, id := range r.eventIDs {
		out = append(out, r.crowd.Events[id].Clone())
	}
	return out
}

func (r *FixtureRepository) HourlyTrend() []crowd.HourlyTrendPoint {
	return append([]crowd.HourlyTrendPoint(nil), r.crowd.HourlyTrendData...)
}

func (r *FixtureRepository) DailyComparison() []crowd.DailyComparisonPoint {
	return append([]crowd.DailyComparisonPoint(nil), r.crowd.DailyComparisonData...)
}

// warnIndicatorMismatch flags records whose crowd indicators would render out of step with their values.
// The data still loads: the indicators are drawn as given.
func warnIndicatorMismatch(where string, r crowd.CrowdForecastRecord) {
	if busier, quieter, found := indicatorMismatch(r); found {
		log.Warn().
			Str("component", "FixtureRepository").
			Str("record", where).
			Str("busier_hour", busier.Hour).
			Str("quieter_hour", quieter.Hour).
			Msg("crowd indicators disagree with values")
	}
}
