package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Contaro DocIntel"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret enables the bearer-token middleware when set. Empty
		// means the API trusts its fronting gateway.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	Analyze struct {
		MaxTextBytes int `envconfig:"MAX_TEXT_BYTES" default:"262144"`
	}

	Tables struct {
		// ChartPath and KeywordsPath point at optional YAML overrides
		// for the chart of accounts and the classifier keyword
		// families. Empty selects the built-in tables.
		ChartPath    string `envconfig:"CHART_PATH"`
		KeywordsPath string `envconfig:"KEYWORDS_PATH"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
