package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"district-server/api/districtdata"
	"district-server/dao/redis"
	"district-server/models"
	"district-server/observability"
)

// SheltersIndexerService keeps the shelter geo index in sync with the disaster data.
type SheltersIndexerService struct {
	shelterDao *redis.RedisShelterDAO
	provider   districtdata.DistrictDataAPI
}

// NewSheltersIndexerService constructs a new indexer with dependencies.
func NewSheltersIndexerService(shelterDao *redis.RedisShelterDAO, provider districtdata.DistrictDataAPI) *SheltersIndexerService {
	return &SheltersIndexerService{
		shelterDao: shelterDao,
		provider:   provider,
	}
}

// IndexShelters upserts every shelter of the disaster record and drops stale ones.
func (si *SheltersIndexerService) IndexShelters(ctx context.Context) error {
	info, err := si.provider.GetDisaster(ctx)
	if err != nil {
		return fmt.Errorf("[SheltersIndexerService] failed to read disaster info: %w", err)
	}

	current := make(map[string]struct{}, len(info.Shelters))
	for _, s := range info.Shelters {
		if err := si.shelterDao.UpsertShelter(ctx, s); err != nil {
			return err
		}
		current[s.ID] = struct{}{}
	}

	if err := si.dropStale(ctx, current); err != nil {
		return err
	}

	observability.IndexedShelters.Set(float64(len(info.Shelters)))
	log.Info().Str("component", "SheltersIndexerService").Int("shelters", len(info.Shelters)).Msg("indexed shelters")
	return nil
}

func (si *SheltersIndexerService) dropStale(ctx context.Context, current map[string]struct{}) error {
	ids, err := si.shelterDao.ListShelterIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := current[id]; ok {
			continue
		}
		if err := si.shelterDao.DeleteShelter(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// GetNearbyShelters returns indexed shelters within radiusKm, nearest first.
func (si *SheltersIndexerService) GetNearbyShelters(ctx context.Context, lat, lng, radiusKm float64) ([]models.Shelter, error) {
	return si.shelterDao.GetNearbyShelters(ctx, lat, lng, radiusKm)
}

// StartPeriodicJob launches the background loop at the given interval. It stops when ctx is done.
// A non-positive interval is refused rather than left to panic inside the goroutine.
func (si *SheltersIndexerService) StartPeriodicJob(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("[SheltersIndexerService] invalid interval %s", interval)
	}
	go si.startPeriodicJob(ctx, interval)
	return nil
}

func (si *SheltersIndexerService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "SheltersIndexerService").Msg("periodic job stopped")
			return
		case <-ticker.C:
			log.Debug().Str("component", "SheltersIndexerService").Msg("running periodic shelter index job")
			if err := si.IndexShelters(ctx); err != nil {
				log.Error().Str("component", "SheltersIndexerService").Err(err).Msg("IndexShelters returned error")
			}
		}
	}
}
