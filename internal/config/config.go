package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// Strategy names accepted by STRATEGY.
const (
	StrategyInline = "inline"
	StrategyDetail = "detail"
)

type Config struct {
	BaseURL string

	// Harvest knobs.
	Strategy        string
	PageLimit       int
	ProductsPerRun  int
	RequestDelay    time.Duration
	RequestTimeout  time.Duration
	DetailWorkers   int
	MinBrandLength  int
	BrandAlias      string
	BrandName       string
	OutputDir       string
	StorePageSize   int

	// Optional infrastructure.
	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration
	MetricsPort string

	// Session headers for the API; tokens are environment-supplied, never
	// baked into the binary.
	SessionToken string
	AuthToken    string
	DeviceID     string
	UserAgent    string

	targets map[string]model.Target
}

// Per-city region, store and category registry, from the original run setup.
var defaultTargets = map[string]model.Target{
	"Москва":          model.NewTarget("Москва", 1, 104, 2),
	"Санкт-Петербург": model.NewTarget("Санкт-Петербург", 3, 3135, 2),
}

func Load() *Config {
	// project root .env first, then the current directory, then plain env
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		BaseURL:        getEnv("LENTA_BASE_URL", "https://api.lenta.com/v1"),
		Strategy:       getEnv("STRATEGY", StrategyInline),
		PageLimit:      atoiEnv("PAGE_LIMIT", 20),
		ProductsPerRun: atoiEnv("PRODUCTS_PER_STORE", 100),
		RequestDelay:   durEnvSec("REQUEST_DELAY_SEC", 1),
		RequestTimeout: durEnvSec("REQUEST_TIMEOUT_SEC", 10),
		DetailWorkers:  atoiEnv("DETAIL_WORKERS", 2),
		MinBrandLength: atoiEnv("MIN_BRAND_LENGTH", 1),
		BrandAlias:     getEnv("BRAND_ATTRIBUTE_ALIAS", "brand"),
		BrandName:      getEnv("BRAND_ATTRIBUTE_NAME", "Бренд"),
		OutputDir:      getEnv("OUTPUT_DIR", "."),
		StorePageSize:  atoiEnv("STORE_PAGE_SIZE", 100),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		CacheTTL:       durEnvSec("CACHE_TTL_SEC", 1800),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
		SessionToken:   os.Getenv("LENTA_SESSION_TOKEN"),
		AuthToken:      os.Getenv("LENTA_AUTH_TOKEN"),
		DeviceID:       os.Getenv("LENTA_DEVICE_ID"),
		UserAgent:      getEnv("LENTA_USER_AGENT", "Lenta/6.42.0 (iPhone; iOS 17.1; Scale/3.00)"),
		targets:        defaultTargets,
	}
}

// Cities lists configured cities in a stable order.
func (c *Config) Cities() []string {
	return []string{"Москва", "Санкт-Петербург"}
}

// Target resolves a city to its harvest target. Unknown cities are a
// configuration error, fatal for that city only.
func (c *Config) Target(city string) (model.Target, error) {
	t, ok := c.targets[city]
	if !ok {
		return model.Target{}, &UnknownCityError{City: city}
	}
	return t, nil
}

// UnknownCityError reports a city with no region/store mapping.
type UnknownCityError struct {
	City string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("no region/store mapping for city %q", e.City)
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func atoiEnv(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

func durEnvSec(k string, defSec int) time.Duration {
	return time.Duration(atoiEnv(k, defSec)) * time.Second
}
