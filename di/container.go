package di

import (
	"context"
	"fmt"
	"os"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"district-server/api"
	"district-server/api/districtdata"
	"district-server/api/fixtures"
	"district-server/config"
	"district-server/dao/memory"
	"district-server/dao/redis"
	"district-server/db"
	"district-server/observability"
	"district-server/resources"
	"district-server/server"
	"district-server/server/handlers"
	services "district-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                 config.Config
	Registry               *prometheus.Registry
	FixtureRepository      *memory.FixtureRepository
	DistrictDataAPI        districtdata.DistrictDataAPI
	RedisClient            db.RedisClient
	RedisShelterDao        *redis.RedisShelterDAO
	CrowdForecastService   *services.CrowdForecastService
	DistrictInfoService    *services.DistrictInfoService
	SheltersIndexerService *services.SheltersIndexerService
	MuxRouter              *mux.Router
	Router                 *server.Router
	DistrictHttpServer     *server.DistrictHttpServer

	closers []func() error
}

// NewContainer initializes and wires up all dependencies.
// It fails when the fixtures cannot be loaded or a configured redis is unreachable.
func NewContainer(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Container, error) {
	log.Info().Str("component", "Container").Str("env", cfg.AppEnv).Msg("initializing container")
	c := &Container{Config: cfg}

	c.Registry = observability.InitRegistry()

	src := fixtureSource(cfg)
	repo, err := memory.LoadFixtureRepository(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load fixtures from %s: %w", src, err)
	}
	c.FixtureRepository = repo
	c.DistrictDataAPI = districtdata.NewDistrictDataFixtureClient(repo, cfg.FixtureDelay)

	if cfg.RedisAddr == "" {
		log.Info().Str("component", "Container").Msg("REDIS_ADDR not set, using in-memory geo index")
		c.RedisClient = db.NewMockRedisClient()
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient, err := db.NewGeoRedisClient(ctx, redisInternalClient)
		if err != nil {
			_ = redisInternalClient.Close()
			return nil, err
		}
		c.RedisClient = redisClient
		c.closers = append(c.closers, redisInternalClient.Close)
	}
	c.RedisShelterDao = redis.NewRedisShelterDAO(c.RedisClient)

	c.CrowdForecastService = services.NewCrowdForecastService(repo)
	c.DistrictInfoService = services.NewDistrictInfoService(c.DistrictDataAPI, nil)
	c.SheltersIndexerService = services.NewSheltersIndexerService(c.RedisShelterDao, c.DistrictDataAPI)

	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(
		handlers.NewCrowdHandler(c.CrowdForecastService),
		handlers.NewInfoHandler(c.DistrictInfoService),
		handlers.NewShelterHandler(c.SheltersIndexerService),
		handlers.NewChartHandler(c.CrowdForecastService),
		c.Registry,
		logger,
		c.MuxRouter,
	)
	c.DistrictHttpServer = server.NewDistrictHttpServer(c.Router, cfg.HTTPAddr, cfg.ShutdownTimeout)

	return c, nil
}

// Close releases external connections.
func (c *Container) Close() error {
	var first error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// fixtureSource picks FIXTURES_DIR, then FIXTURES_BASE_URL, then the embedded resources.
func fixtureSource(cfg config.Config) fixtures.Source {
	switch {
	case cfg.FixturesDir != "":
		return fixtures.NewFSSource(os.DirFS(cfg.FixturesDir), cfg.FixturesDir)
	case cfg.FixturesBaseURL != "":
		return fixtures.NewRemoteSource(api.NewHTTPClient(cfg.FixturesBaseURL))
	default:
		return fixtures.NewFSSource(resources.FS, "embedded")
	}
}
