package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"sort"
	"sync"
)

const earthRadiusKm = 6371.0

// MockRedisClient is an in-memory RedisClient used when no redis address is configured and in tests.
type MockRedisClient struct {
	data    map[string]string
	geoData map[string]map[string]GeoLoc
	mu      sync.RWMutex
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
	}
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return value, nil
}

// Del removes key, whether it holds a string or a whole geo set. Geo members are left alone, like DEL.
func (m *MockRedisClient) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.geoData, key)
	return nil
}

// Keys matches string keys with glob patterns, like KEYS.
func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := []string{}
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockRedisClient) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	return nil
}

func (m *MockRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.geoData[geoKey], memberKey)
	delete(m.data, memberKey)
	return nil
}

// GetLocationsWithinRadius filters members by great-circle distance, nearest first.
func (m *MockRedisClient) GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		member string
		dist   float64
	}
	var hits []hit
	for member, loc := range m.geoData[geoKey] {
		if d := HaversineKm(lat, lon, loc.Latitude, loc.Longitude); d <= radiusKm {
			hits = append(hits, hit{member, d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].member < hits[j].member
		}
		return hits[i].dist < hits[j].dist
	})

	results := make([]string, 0, len(hits))
	for _, h := range hits {
		if data, exists := m.data[h.member]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// HaversineKm returns the great-circle distance between two points in kilometres.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
