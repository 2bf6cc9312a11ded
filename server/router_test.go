package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"district-server/api/districtdata"
	"district-server/api/fixtures"
	"district-server/dao/memory"
	"district-server/dao/redis"
	"district-server/db"
	"district-server/observability"
	"district-server/resources"
	"district-server/server/handlers"
	services "district-server/service"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	ctx := context.Background()
	repo, err := memory.LoadFixtureRepository(ctx, fixtures.NewFSSource(resources.FS, "embedded"))
	require.NoError(t, err)

	provider := districtdata.NewDistrictDataFixtureClient(repo, 0)
	crowdService := services.NewCrowdForecastService(repo)
	indexer := services.NewSheltersIndexerService(redis.NewRedisShelterDAO(db.NewMockRedisClient()), provider)
	require.NoError(t, indexer.IndexShelters(ctx))

	router := NewRouter(
		handlers.NewCrowdHandler(crowdService),
		handlers.NewInfoHandler(services.NewDistrictInfoService(provider, nil)),
		handlers.NewShelterHandler(indexer),
		handlers.NewChartHandler(crowdService),
		observability.InitRegistry(),
		zerolog.Nop(),
		mux.NewRouter(),
	)
	router.RegisterRoutes()
	return router
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name        string
		method      string
		path        string
		statusCode  int
		contentType string
	}{
		{"Ping Route", http.MethodGet, "/ping", http.StatusOK, "application/json"},
		{"Home", http.MethodGet, "/v1/home", http.StatusOK, "application/json"},
		{"Events", http.MethodGet, "/v1/events", http.StatusOK, "application/json"},
		{"Disaster", http.MethodGet, "/v1/disaster", http.StatusOK, "application/json"},
		{"Local Info", http.MethodGet, "/v1/local-info", http.StatusOK, "application/json"},
		{"Overview", http.MethodGet, "/v1/overview", http.StatusOK, "application/json"},
		{"Forecast", http.MethodGet, "/v1/crowd/forecast?eventId=1", http.StatusOK, "application/json"},
		{"Forecast By Path", http.MethodGet, "/v1/crowd/forecast/1", http.StatusOK, "application/json"},
		{"All Forecasts", http.MethodGet, "/v1/crowd/forecasts", http.StatusOK, "application/json"},
		{"Hourly Trend", http.MethodGet, "/v1/crowd/hourly-trend", http.StatusOK, "application/json"},
		{"Daily Comparison", http.MethodGet, "/v1/crowd/daily-comparison", http.StatusOK, "application/json"},
		{"Hourly Trend Chart", http.MethodGet, "/v1/crowd/charts/hourly-trend", http.StatusOK, "text/html"},
		{"Daily Comparison Chart", http.MethodGet, "/v1/crowd/charts/daily-comparison", http.StatusOK, "text/html"},
		{"Shelters Nearby", http.MethodGet, "/v1/disaster/shelters/nearby?lat=35.656&lng=139.735", http.StatusOK, "application/json"},
		{"Shelters Nearby Bad Args", http.MethodGet, "/v1/disaster/shelters/nearby?lat=x", http.StatusBadRequest, "application/problem+json"},
		{"Metrics", http.MethodGet, "/metrics", http.StatusOK, "text/plain"},
		{"Wrong Method", http.MethodPost, "/v1/home", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", http.MethodGet, "/invalid", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.Handler().ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.contentType != "" {
				assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), test.contentType),
					"content type %q", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRouter_MetricsUseRouteTemplate(t *testing.T) {
	router := newTestRouter(t)

	for _, id := range []string{"1", "2", "404"} {
		rr := httptest.NewRecorder()
		router.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/crowd/forecast/"+id, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	router.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()

	assert.Contains(t, body, `route="/v1/crowd/forecast/{eventId}"`)
	assert.NotContains(t, body, `route="/v1/crowd/forecast/404"`)
	assert.Contains(t, body, `district_forecast_resolutions_total{source="default"}`)
}

func TestDistrictHttpServer_StartAndShutdown(t *testing.T) {
	srv := NewDistrictHttpServer(newTestRouter(t), "127.0.0.1:0", time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
