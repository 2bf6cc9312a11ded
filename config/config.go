package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Redis Config
const REDIS_DB_ADDRESS = ""
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Shelter indexer config
const SHELTERS_INDEXER_SCHEDULE_MINUTES = 60

// Server config
const SHUTDOWN_TIMEOUT_SECONDS = 5

// Fixture provider config
const DEV_FIXTURE_DELAY_MS = 300

// Resources file names
const RESOURCES_PATH_PREFIX = "resources"
const CROWD_DATA_RESOURCE = "crowd_data.json"
const HOME_DATA_RESOURCE = "home_data.json"
const EVENT_DATA_RESOURCE = "event_data.json"
const DISASTER_DATA_RESOURCE = "disaster_data.json"
const LOCAL_INFO_DATA_RESOURCE = "local_info_data.json"

// Config is the runtime configuration, resolved from the environment.
type Config struct {
	AppEnv          string
	HTTPAddr        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	FixturesDir     string
	FixturesBaseURL string
	FixtureDelay    time.Duration
	ShelterInterval time.Duration
	ShutdownTimeout time.Duration
}

// IsDev reports whether the app runs with developer defaults.
func (c Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		RedisAddr:       env("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:   env("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:         atoi("REDIS_DB", REDIS_DB),
		FixturesDir:     ResolvePath(env("FIXTURES_DIR", "")),
		FixturesBaseURL: env("FIXTURES_BASE_URL", ""),
		ShelterInterval: time.Duration(positiveAtoi("SHELTER_INDEX_INTERVAL_MINUTES", SHELTERS_INDEXER_SCHEDULE_MINUTES)) * time.Minute,
		ShutdownTimeout: time.Duration(positiveAtoi("SHUTDOWN_TIMEOUT_SECONDS", SHUTDOWN_TIMEOUT_SECONDS)) * time.Second,
	}

	delayDefault := 0
	if c.IsDev() {
		delayDefault = DEV_FIXTURE_DELAY_MS
	}
	c.FixtureDelay = time.Duration(atoi("FIXTURE_DELAY_MS", delayDefault)) * time.Millisecond

	if c.FixturesDir != "" && c.FixturesBaseURL != "" {
		log.Warn().Msg("both FIXTURES_DIR and FIXTURES_BASE_URL are set; FIXTURES_DIR wins")
	}
	return c
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// ResolvePath anchors a relative path at the project root.
func ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(BaseDir(), p)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer env value")
	}
	return def
}

// positiveAtoi is atoi for intervals and timeouts, which must be greater than zero.
func positiveAtoi(k string, def int) int {
	n := atoi(k, def)
	if n <= 0 {
		log.Warn().Str("key", k).Int("value", n).Int("default", def).Msg("ignoring non-positive env value")
		return def
	}
	return n
}
