// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Strategies pair a planner with the upstream it was written for.
const (
	StrategyCategory = "category"
	StrategyKeyword  = "keyword"
)

// Config holds every runtime setting.
type Config struct {
	Port               string
	Strategy           string
	MealDBBaseURL      string
	SpoonacularBaseURL string
	SpoonacularAPIKey  string
	CatalogPath        string
	ResultCount        int
	HTTPTimeout        time.Duration
	Workers            int
	QueueSize          int
	LogLevel           string
	LogFormat          string
	Seed               uint64
}

// Load reads envFiles (missing files are skipped) and then the environment.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var errs []error
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Strategy:           strings.ToLower(getEnv("MOODFOOD_STRATEGY", StrategyCategory)),
		MealDBBaseURL:      getEnv("MEALDB_BASE_URL", ""),
		SpoonacularBaseURL: getEnv("SPOONACULAR_BASE_URL", ""),
		SpoonacularAPIKey:  getEnv("SPOONACULAR_API_KEY", ""),
		CatalogPath:        getEnv("MOODFOOD_CATALOG", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}
	cfg.ResultCount = getInt("MOODFOOD_RESULT_COUNT", 20, &errs)
	cfg.Workers = getInt("MOODFOOD_WORKERS", 2, &errs)
	cfg.QueueSize = getInt("MOODFOOD_QUEUE_SIZE", 16, &errs)

	timeout, err := time.ParseDuration(getEnv("MOODFOOD_HTTP_TIMEOUT", "10s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("MOODFOOD_HTTP_TIMEOUT: %w", err))
	}
	cfg.HTTPTimeout = timeout

	seed, err := strconv.ParseUint(getEnv("MOODFOOD_SEED", "0"), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("MOODFOOD_SEED: %w", err))
	}
	cfg.Seed = seed

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Strategy {
	case StrategyCategory:
	case StrategyKeyword:
		if c.SpoonacularAPIKey == "" {
			errs = append(errs, errors.New("SPOONACULAR_API_KEY is required for the keyword strategy"))
		}
	default:
		errs = append(errs, fmt.Errorf("MOODFOOD_STRATEGY: unknown strategy %q", c.Strategy))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.ResultCount < 1 {
		errs = append(errs, errors.New("MOODFOOD_RESULT_COUNT must be positive"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("MOODFOOD_HTTP_TIMEOUT must be positive"))
	}
	if c.Workers < 1 {
		errs = append(errs, errors.New("MOODFOOD_WORKERS must be positive"))
	}
	if c.QueueSize < 1 {
		errs = append(errs, errors.New("MOODFOOD_QUEUE_SIZE must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int, errs *[]error) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}
