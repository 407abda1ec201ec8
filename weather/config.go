package weather

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the Tomorrow.io forecast endpoint.
const DefaultBaseURL = "https://api.tomorrow.io/v4/weather/forecast"

// Tomorrow.io keys are long alphanumeric tokens. Anything that doesn't fit
// this shape is rejected before a single request is made.
var apiKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{32,}$`)

type Config struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

func DefaultConfig() Config {
	return Config{BaseURL: DefaultBaseURL}
}

// LoadConfig loads weather config from a directory containing weather.yaml.
// Environment variables prefixed with TOMORROW take precedence
// (TOMORROW_API_KEY, TOMORROW_BASE_URL).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("weather")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("TOMORROW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", DefaultBaseURL)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the credential format policy. A key that fails here can
// never produce a valid call, so construction fails instead of the first use.
func (c Config) Validate() error {
	if !apiKeyPattern.MatchString(c.APIKey) {
		return fmt.Errorf("invalid API key format: key must be at least 32 characters and contain only alphanumeric characters and underscores")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	return nil
}
