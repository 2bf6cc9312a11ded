package districtdata

import (
	"context"

	"district-server/models"
)

// DistrictDataAPI is the read-only data provider behind the info screens.
// Every call resolves to a fixed record; only a done context makes it fail.
type DistrictDataAPI interface {
	GetHome(ctx context.Context) (*models.HomeFeed, error)
	GetEvents(ctx context.Context) (*models.EventListing, error)
	GetDisaster(ctx context.Context) (*models.DisasterInfo, error)
	GetLocalInfo(ctx context.Context) (*models.LocalInfo, error)
}
