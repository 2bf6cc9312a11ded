package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"district-server/api/districtdata"
	"district-server/models"
	"district-server/util"
)

// DistrictInfoService serves the info screens from the data provider.
type DistrictInfoService struct {
	provider districtdata.DistrictDataAPI
	now      func() time.Time
}

// NewDistrictInfoService constructs a DistrictInfoService. A nil clock means time.Now.
func NewDistrictInfoService(provider districtdata.DistrictDataAPI, now func() time.Time) *DistrictInfoService {
	if now == nil {
		now = time.Now
	}
	return &DistrictInfoService{provider: provider, now: now}
}

func (ds *DistrictInfoService) GetHome(ctx context.Context) (*models.HomeFeed, error) {
	return ds.provider.GetHome(ctx)
}

func (ds *DistrictInfoService) GetEvents(ctx context.Context) (*models.EventListing, error) {
	return ds.provider.GetEvents(ctx)
}

func (ds *DistrictInfoService) GetDisaster(ctx context.Context) (*models.DisasterInfo, error) {
	return ds.provider.GetDisaster(ctx)
}

func (ds *DistrictInfoService) GetLocalInfo(ctx context.Context) (*models.LocalInfo, error) {
	return ds.provider.GetLocalInfo(ctx)
}

// GetOverview fetches all four records concurrently. The first failure cancels the rest.
func (ds *DistrictInfoService) GetOverview(ctx context.Context) (*models.Overview, error) {
	var (
		home      *models.HomeFeed
		events    *models.EventListing
		disaster  *models.DisasterInfo
		localInfo *models.LocalInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		home, err = ds.provider.GetHome(gctx)
		return err
	})
	g.Go(func() (err error) {
		events, err = ds.provider.GetEvents(gctx)
		return err
	})
	g.Go(func() (err error) {
		disaster, err = ds.provider.GetDisaster(gctx)
		return err
	})
	g.Go(func() (err error) {
		localInfo, err = ds.provider.GetLocalInfo(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("[DistrictInfoService] overview: %w", err)
	}

	return &models.Overview{
		Date:      util.GetFormattedDate(ds.now()),
		Home:      *home,
		Events:    *events,
		Disaster:  *disaster,
		LocalInfo: *localInfo,
	}, nil
}
