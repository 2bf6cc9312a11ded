package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"district-server/models/crowd"
)

func TestCrowdForecastService_GetForecast(t *testing.T) {
	cs := NewCrowdForecastService(loadRepo(t))
	ctx := context.Background()

	tests := []struct {
		name           string
		eventID, title string
		wantName       string
		wantPercentage string
	}{
		{"known event", "1", "", "シーバンス夏祭り", "125%"},
		{"second known event", "2", "", "地蔵尊盆踊り大会", "110%"},
		{"unknown event falls back", "999", "", "B'z", "150%"},
		{"empty id falls back", "", "", "B'z", "150%"},
		{"title override on default", "", "Custom Title", "Custom Title", "150%"},
		{"title override on known event", "1", "夏祭り", "夏祭り", "125%"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Act
			rec := cs.GetForecast(ctx, test.eventID, test.title)

			// Assert
			assert.Equal(t, test.wantName, rec.Event.Name)
			assert.Equal(t, test.wantPercentage, rec.Crowdness.Percentage)
		})
	}
}

func TestCrowdForecastService_TitleOverrideKeepsOtherFields(t *testing.T) {
	cs := NewCrowdForecastService(loadRepo(t))
	ctx := context.Background()

	base := cs.GetForecast(ctx, "", "")
	renamed := cs.GetForecast(ctx, "", "Custom Title")

	renamed.Event.Name = base.Event.Name
	assert.Equal(t, base, renamed)
	assert.Equal(t, "B'z", cs.GetForecast(ctx, "", "").Event.Name)
}

func TestCrowdForecastService_Resolve(t *testing.T) {
	cs := NewCrowdForecastService(loadRepo(t))
	ctx := context.Background()

	found := cs.Resolve(ctx, "1")
	fallback := cs.Resolve(ctx, "999")

	assert.True(t, found.Found())
	assert.Equal(t, crowd.SourceDefault, fallback.Source)
	assert.Equal(t, "999", fallback.EventID)
	assert.Equal(t, cs.GetForecast(ctx, "", ""), fallback.Record)
}

func TestCrowdForecastService_Series(t *testing.T) {
	cs := NewCrowdForecastService(loadRepo(t))

	trend := cs.GetHourlyTrend()
	comparison := cs.GetDailyComparison()

	assert.Len(t, trend, 8)
	assert.Equal(t, "15時", trend[0].Hour)
	assert.Len(t, comparison, 5)
	assert.Equal(t, trend, cs.GetHourlyTrend())
	assert.Equal(t, comparison, cs.GetDailyComparison())
}

func TestCrowdForecastService_GetAllForecasts(t *testing.T) {
	cs := NewCrowdForecastService(loadRepo(t))

	all := cs.GetAllForecasts()

	if assert.Len(t, all, 2) {
		assert.Equal(t, "シーバンス夏祭り", all[0].Event.Name)
		assert.Equal(t, "地蔵尊盆踊り大会", all[1].Event.Name)
	}
}

func TestCrowdForecastService_GetForecastResolution(t *testing.T) {
	cs := NewCrowdForecastService(loadRepo(t))
	ctx := context.Background()

	tests := []struct {
		name       string
		eventID    string
		title      string
		wantSource crowd.ResolutionSource
		wantName   string
	}{
		{"known event keeps name", "1", "", crowd.SourceFound, "シーバンス夏祭り"},
		{"known event with title", "1", "夏祭り", crowd.SourceFound, "夏祭り"},
		{"unknown event with title", "999", "Custom Title", crowd.SourceDefault, "Custom Title"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := cs.GetForecastResolution(ctx, test.eventID, test.title)

			assert.Equal(t, test.wantSource, res.Source)
			assert.Equal(t, test.wantName, res.Record.Event.Name)
			assert.Equal(t, res.Record, cs.GetForecast(ctx, test.eventID, test.title))
		})
	}
}
