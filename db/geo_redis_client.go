package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// GeoRedisClient implements RedisClient on a real redis server.
type GeoRedisClient struct {
	client *redis.Client
}

// NewGeoRedisClient wraps client and checks the connection.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) (*GeoRedisClient, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	log.Info().Str("component", "GeoRedisClient").Str("addr", client.Options().Addr).Msg("connected to redis")
	return &GeoRedisClient{client: client}, nil
}

func (r *GeoRedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *GeoRedisClient) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return v, err
}

func (r *GeoRedisClient) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *GeoRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	return r.client.Keys(ctx, pattern).Result()
}

func (r *GeoRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// AddLocationWithJSON stores the member position in geoKey and its JSON payload under memberKey.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, geoKey, &redis.GeoLocation{
			Name:      memberKey,
			Latitude:  lat,
			Longitude: lon,
		})
		pipe.Set(ctx, memberKey, jsonData, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add geolocation: %w", err)
	}

	log.Debug().Str("component", "GeoRedisClient").Str("member", memberKey).Msg("added geolocation")
	return nil
}

func (r *GeoRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, geoKey, memberKey)
		pipe.Del(ctx, memberKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove geolocation: %w", err)
	}
	return nil
}

// GetLocationsWithinRadius finds members within radiusKm and returns their JSON payloads.
func (r *GeoRedisClient) GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error) {
	results, err := r.client.GeoRadius(ctx, geoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby locations: %w", err)
	}

	objects := make([]string, 0, len(results))
	for _, loc := range results {
		data, err := r.client.Get(ctx, loc.Name).Result()
		if err != nil {
			log.Warn().Str("component", "GeoRedisClient").Str("member", loc.Name).Err(err).Msg("skipping member")
			continue
		}
		objects = append(objects, data)
	}
	return objects, nil
}
