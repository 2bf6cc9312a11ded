package db_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"district-server/db"
)

// Minato ward points used across the cases.
const (
	azabuLat, azabuLng     = 35.6545, 139.7302
	shibaLat, shibaLng     = 35.6544, 139.7480
	aoyamaLat, aoyamaLng   = 35.6681, 139.7196
	yokohamaLat, yokohaLng = 35.4437, 139.6380
)

func newGeoClient(t *testing.T) *db.GeoRedisClient {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	client, err := db.NewGeoRedisClient(context.Background(), rdb)
	require.NoError(t, err)
	return client
}

func clients(t *testing.T) []struct {
	name   string
	client db.RedisClient
} {
	return []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient()},
		{"GeoRedisClient", newGeoClient(t)},
	}
}

func TestRedisClient_SetGetDel(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()

			// Act
			require.NoError(t, test.client.Set(ctx, "test-key", "test-value"))
			retrieved, err := test.client.Get(ctx, "test-key")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "test-value", retrieved)

			require.NoError(t, test.client.Del(ctx, "test-key"))
			_, err = test.client.Get(ctx, "test-key")
			assert.ErrorIs(t, err, db.ErrNotFound)
		})
	}
}

func TestRedisClient_Keys(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, test.client.Set(ctx, "shelter:a", "1"))
			require.NoError(t, test.client.Set(ctx, "shelter:b", "2"))
			require.NoError(t, test.client.Set(ctx, "other", "3"))

			keys, err := test.client.Keys(ctx, "shelter:*")

			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"shelter:a", "shelter:b"}, keys)
		})
	}
}

func TestRedisClient_GetLocationsWithinRadius(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			points := []struct {
				member   string
				lat, lng float64
			}{
				{"aoyama", aoyamaLat, aoyamaLng},
				{"shiba", shibaLat, shibaLng},
				{"yokohama", yokohamaLat, yokohaLng},
			}
			for _, p := range points {
				require.NoError(t, test.client.AddLocationWithJSON(ctx, "places", p.member, p.lat, p.lng, map[string]string{"id": p.member}))
			}

			// Act
			results, err := test.client.GetLocationsWithinRadius(ctx, "places", azabuLat, azabuLng, 5)

			// Assert
			require.NoError(t, err)
			require.Len(t, results, 2)
			var ids []string
			for _, r := range results {
				var v map[string]string
				require.NoError(t, json.Unmarshal([]byte(r), &v))
				ids = append(ids, v["id"])
			}
			assert.Equal(t, []string{"shiba", "aoyama"}, ids)
		})
	}
}

func TestRedisClient_GetLocationsWithinRadius_UnknownKey(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			results, err := test.client.GetLocationsWithinRadius(context.Background(), "missing", azabuLat, azabuLng, 5)

			require.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}

func TestRedisClient_Ping(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			assert.NoError(t, test.client.Ping(context.Background()))
		})
	}
}

func TestNewGeoRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	defer rdb.Close()

	_, err := db.NewGeoRedisClient(context.Background(), rdb)

	assert.Error(t, err)
}

func TestHaversineKm(t *testing.T) {
	assert.InDelta(t, 0, db.HaversineKm(azabuLat, azabuLng, azabuLat, azabuLng), 1e-9)
	// Azabu to Shiba park is about 1.6 km.
	assert.InDelta(t, 1.6, db.HaversineKm(azabuLat, azabuLng, shibaLat, shibaLng), 0.1)
}

func TestRedisClient_RemoveLocation(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, test.client.AddLocationWithJSON(ctx, "places", "shiba", shibaLat, shibaLng, map[string]string{"id": "shiba"}))
			require.NoError(t, test.client.AddLocationWithJSON(ctx, "places", "aoyama", aoyamaLat, aoyamaLng, map[string]string{"id": "aoyama"}))

			// Act
			require.NoError(t, test.client.RemoveLocation(ctx, "places", "shiba"))

			// Assert
			_, err := test.client.Get(ctx, "shiba")
			assert.ErrorIs(t, err, db.ErrNotFound)
			results, err := test.client.GetLocationsWithinRadius(ctx, "places", azabuLat, azabuLng, 5)
			require.NoError(t, err)
			assert.Equal(t, []string{`{"id":"aoyama"}`}, results)
		})
	}
}
