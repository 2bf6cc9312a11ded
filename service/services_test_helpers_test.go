package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"district-server/api/districtdata"
	"district-server/api/fixtures"
	"district-server/dao/memory"
	"district-server/models"
	"district-server/resources"
)

func loadRepo(t *testing.T) *memory.FixtureRepository {
	t.Helper()
	repo, err := memory.LoadFixtureRepository(context.Background(), fixtures.NewFSSource(resources.FS, "embedded"))
	require.NoError(t, err)
	return repo
}

// stubProvider wraps the fixture client and lets a test replace the disaster record or fail one call.
type stubProvider struct {
	districtdata.DistrictDataAPI
	disaster   *models.DisasterInfo
	failEvents bool
}

var errProviderDown = errors.New("provider down")

func (s *stubProvider) GetEvents(ctx context.Context) (*models.EventListing, error) {
	if s.failEvents {
		return nil, errProviderDown
	}
	return s.DistrictDataAPI.GetEvents(ctx)
}

func (s *stubProvider) GetDisaster(ctx context.Context) (*models.DisasterInfo, error) {
	if s.disaster != nil {
		d := s.disaster.Clone()
		return &d, nil
	}
	return s.DistrictDataAPI.GetDisaster(ctx)
}
