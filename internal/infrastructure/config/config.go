package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

// Configuration holds everything the service needs at startup. All values
// come from the environment; every key has a working local default.
type Configuration struct {
	Address            string        `env:"ADDRESS" envDefault:":8080"`                                // Listen address
	WorkshopAPIBaseURL string        `env:"WORKSHOP_API_BASE_URL" envDefault:"http://localhost:3001"`  // Upstream workshop REST API
	FetchTimeout       time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`                            // Per-request timeout against the upstream API
	RetryDelay         time.Duration `env:"RETRY_DELAY" envDefault:"1s"`                               // Pause before the single forbidden retry
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`                               // logrus level name
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`                              // "text" or "json"
}

func Load() (*Configuration, error) {
	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
