package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"district-server/db"
	"district-server/models"
)

const SHELTERS_GEO_KEY_V1 = "shelters_geo_v1"
const SHELTERS_GEO_PLACE_MEMBER_FORMAT_V1 = "shelters_geo_place_v1:%s"

// RedisShelterDAO keeps the shelter geo index in redis.
type RedisShelterDAO struct {
	client db.RedisClient
}

// NewRedisShelterDAO initializes a RedisShelterDAO with the Redis client.
func NewRedisShelterDAO(client db.RedisClient) *RedisShelterDAO {
	return &RedisShelterDAO{client: client}
}

// UpsertShelter stores the shelter as a geolocation with the shelter's JSON data.
func (dao *RedisShelterDAO) UpsertShelter(ctx context.Context, s models.Shelter) error {
	key := fmt.Sprintf(SHELTERS_GEO_PLACE_MEMBER_FORMAT_V1, s.ID)
	if err := dao.client.AddLocationWithJSON(ctx, SHELTERS_GEO_KEY_V1, key, s.Lat, s.Lng, s); err != nil {
		return fmt.Errorf("[RedisShelterDAO] failed to upsert shelter %s: %w", s.ID, err)
	}
	return nil
}

// GetNearbyShelters returns shelters within radiusKm of the point, nearest first.
func (dao *RedisShelterDAO) GetNearbyShelters(ctx context.Context, lat, lng, radiusKm float64) ([]models.Shelter, error) {
	sheltersJSON, err := dao.client.GetLocationsWithinRadius(ctx, SHELTERS_GEO_KEY_V1, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisShelterDAO] failed to get shelters: %w", err)
	}

	shelters := make([]models.Shelter, len(sheltersJSON))
	for i, shelterJSON := range sheltersJSON {
		if err := json.Unmarshal([]byte(shelterJSON), &shelters[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shelter JSON: %w", err)
		}
	}
	log.Debug().Str("component", "RedisShelterDAO").Int("count", len(shelters)).Float64("radius_km", radiusKm).Msg("nearby shelters")
	return shelters, nil
}

// ListShelterIDs returns all shelter IDs present in the geo index, sorted.
func (dao *RedisShelterDAO) ListShelterIDs(ctx context.Context) ([]string, error) {
	pattern := fmt.Sprintf(SHELTERS_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelter geo keys: %w", err)
	}
	prefix := fmt.Sprintf(SHELTERS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	sort.Strings(ids)
	return ids, nil
}

// DeleteShelter drops a shelter that no longer appears in the disaster data.
func (dao *RedisShelterDAO) DeleteShelter(ctx context.Context, id string) error {
	key := fmt.Sprintf(SHELTERS_GEO_PLACE_MEMBER_FORMAT_V1, id)
	if err := dao.client.RemoveLocation(ctx, SHELTERS_GEO_KEY_V1, key); err != nil {
		return fmt.Errorf("failed to delete shelter key %s: %w", key, err)
	}
	log.Info().Str("component", "RedisShelterDAO").Str("shelter", id).Msg("deleted shelter")
	return nil
}
