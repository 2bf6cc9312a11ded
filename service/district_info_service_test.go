package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"district-server/api/districtdata"
)

func fixedClock() time.Time {
	return time.Date(2023, time.June, 13, 9, 0, 0, 0, time.UTC)
}

func TestDistrictInfoService_GetOverview(t *testing.T) {
	provider := districtdata.NewDistrictDataFixtureClient(loadRepo(t), 20*time.Millisecond)
	ds := NewDistrictInfoService(provider, fixedClock)

	start := time.Now()
	overview, err := ds.GetOverview(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "6/13(火)", overview.Date)
	assert.Equal(t, "混雑度可視化", overview.Home.Title)
	assert.Len(t, overview.Events.Sections, 2)
	assert.Len(t, overview.Disaster.Shelters, 5)
	assert.Len(t, overview.LocalInfo.SnsAccounts, 2)
	// The four reads overlap, so the overview costs about one delay, not four.
	assert.Less(t, elapsed, 80*time.Millisecond)
}

func TestDistrictInfoService_GetOverview_ProviderError(t *testing.T) {
	provider := &stubProvider{
		DistrictDataAPI: districtdata.NewDistrictDataFixtureClient(loadRepo(t), 0),
		failEvents:      true,
	}
	ds := NewDistrictInfoService(provider, fixedClock)

	overview, err := ds.GetOverview(context.Background())

	assert.ErrorIs(t, err, errProviderDown)
	assert.Nil(t, overview)
}

func TestDistrictInfoService_GetOverview_Cancelled(t *testing.T) {
	provider := districtdata.NewDistrictDataFixtureClient(loadRepo(t), time.Hour)
	ds := NewDistrictInfoService(provider, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ds.GetOverview(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistrictInfoService_Records(t *testing.T) {
	ds := NewDistrictInfoService(districtdata.NewDistrictDataFixtureClient(loadRepo(t), 0), nil)
	ctx := context.Background()

	home, err := ds.GetHome(ctx)
	require.NoError(t, err)
	assert.Len(t, home.Stats, 3)

	events, err := ds.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://www.city.minato.tokyo.jp/", events.WebsiteURL)

	disaster, err := ds.GetDisaster(ctx)
	require.NoError(t, err)
	assert.Empty(t, disaster.Weather.Warnings)

	info, err := ds.GetLocalInfo(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, info.Sections)
}
