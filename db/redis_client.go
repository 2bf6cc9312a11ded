package db

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// RedisClient defines the storage operations the geo index relies on.
type RedisClient interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
	Ping(ctx context.Context) error
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	// RemoveLocation drops memberKey from geoKey together with its JSON payload.
	RemoveLocation(ctx context.Context, geoKey, memberKey string) error
	// GetLocationsWithinRadius returns the JSON payloads of members within radiusKm,
	// nearest first.
	GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error)
}
