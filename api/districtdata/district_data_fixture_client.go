package districtdata

import (
	"context"
	"time"

	"district-server/dao/memory"
	"district-server/models"
	"district-server/observability"
)

// DistrictDataFixtureClient serves the provider records from the fixture repository,
// optionally after an artificial latency.
type DistrictDataFixtureClient struct {
	repo  *memory.FixtureRepository
	delay time.Duration
}

// NewDistrictDataFixtureClient creates a provider over repo. A zero delay answers immediately.
func NewDistrictDataFixtureClient(repo *memory.FixtureRepository, delay time.Duration) *DistrictDataFixtureClient {
	return &DistrictDataFixtureClient{repo: repo, delay: delay}
}

// wait sleeps for the configured delay unless ctx ends first.
func (c *DistrictDataFixtureClient) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *DistrictDataFixtureClient) GetHome(ctx context.Context) (*models.HomeFeed, error) {
	err := c.wait(ctx)
	observability.ObserveProvider("home", err)
	if err != nil {
		return nil, err
	}
	home := c.repo.Home()
	return &home, nil
}

func (c *DistrictDataFixtureClient) GetEvents(ctx context.Context) (*models.EventListing, error) {
	err := c.wait(ctx)
	observability.ObserveProvider("events", err)
	if err != nil {
		return nil, err
	}
	events := c.repo.Events()
	return &events, nil
}

func (c *DistrictDataFixtureClient) GetDisaster(ctx context.Context) (*models.DisasterInfo, error) {
	err := c.wait(ctx)
	observability.ObserveProvider("disaster", err)
	if err != nil {
		return nil, err
	}
	disaster := c.repo.Disaster()
	return &disaster, nil
}

func (c *DistrictDataFixtureClient) GetLocalInfo(ctx context.Context) (*models.LocalInfo, error) {
	err := c.wait(ctx)
	observability.ObserveProvider("local_info", err)
	if err != nil {
		return nil, err
	}
	info := c.repo.LocalInfo()
	return &info, nil
}
