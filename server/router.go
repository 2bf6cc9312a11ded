package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"district-server/observability"
	"district-server/server/handlers"
)

type Router struct {
	crowdHandler   *handlers.CrowdHandler
	infoHandler    *handlers.InfoHandler
	shelterHandler *handlers.ShelterHandler
	chartHandler   *handlers.ChartHandler
	registry       *prometheus.Registry
	logger         zerolog.Logger
	router         *mux.Router
	once           sync.Once
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	crowdHandler *handlers.CrowdHandler,
	infoHandler *handlers.InfoHandler,
	shelterHandler *handlers.ShelterHandler,
	chartHandler *handlers.ChartHandler,
	registry *prometheus.Registry,
	logger zerolog.Logger,
	router *mux.Router) *Router {
	return &Router{
		crowdHandler:   crowdHandler,
		infoHandler:    infoHandler,
		shelterHandler: shelterHandler,
		chartHandler:   chartHandler,
		registry:       registry,
		logger:         logger,
		router:         router,
	}
}

// RegisterRoutes mounts middleware and routes. Calls after the first are no-ops.
func (r *Router) RegisterRoutes() {
	r.once.Do(r.registerRoutes)
}

func (r *Router) registerRoutes() {
	r.router.Use(Logger(r.logger), Metrics)

	r.router.HandleFunc("/ping", handlers.Ping).Methods(http.MethodGet)
	r.router.Handle("/metrics", observability.MetricsHandler(r.registry)).Methods(http.MethodGet)

	v1 := r.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/home", r.infoHandler.GetHome).Methods(http.MethodGet)
	v1.HandleFunc("/events", r.infoHandler.GetEvents).Methods(http.MethodGet)
	v1.HandleFunc("/disaster", r.infoHandler.GetDisaster).Methods(http.MethodGet)
	v1.HandleFunc("/local-info", r.infoHandler.GetLocalInfo).Methods(http.MethodGet)
	v1.HandleFunc("/overview", r.infoHandler.GetOverview).Methods(http.MethodGet)

	// expects ?eventId={id}&eventTitle={title}, both optional
	v1.HandleFunc("/crowd/forecast", r.crowdHandler.GetForecast).Methods(http.MethodGet)
	v1.HandleFunc("/crowd/forecast/{eventId}", r.crowdHandler.GetForecast).Methods(http.MethodGet)
	v1.HandleFunc("/crowd/forecasts", r.crowdHandler.GetAllForecasts).Methods(http.MethodGet)
	v1.HandleFunc("/crowd/hourly-trend", r.crowdHandler.GetHourlyTrend).Methods(http.MethodGet)
	v1.HandleFunc("/crowd/daily-comparison", r.crowdHandler.GetDailyComparison).Methods(http.MethodGet)
	v1.HandleFunc("/crowd/charts/hourly-trend", r.chartHandler.GetHourlyTrendChart).Methods(http.MethodGet)
	v1.HandleFunc("/crowd/charts/daily-comparison", r.chartHandler.GetDailyComparisonChart).Methods(http.MethodGet)

	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={km(float), optional}
	v1.HandleFunc("/disaster/shelters/nearby", r.shelterHandler.GetSheltersNearby).Methods(http.MethodGet)
}

// Handler exposes the mux once routes are registered.
func (r *Router) Handler() http.Handler {
	return r.router
}
