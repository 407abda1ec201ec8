package agent

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	AllowTools  bool    `mapstructure:"allow_tools"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTurns    int     `mapstructure:"max_turns"`
}

func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		AllowTools:  true,
		Temperature: DefaultTemperature,
		MaxTurns:    DefaultMaxTurns,
	}
}

// LoadConfig loads agent config from a directory containing agent.yaml.
// Environment variables prefixed with AGENT take precedence (AGENT_API_KEY,
// AGENT_MODEL, ...).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("agent")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("AGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	defaults := DefaultConfig()
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", "")
	v.SetDefault("model", defaults.Model)
	v.SetDefault("allow_tools", defaults.AllowTools)
	v.SetDefault("temperature", defaults.Temperature)
	v.SetDefault("max_turns", defaults.MaxTurns)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("agent config not found, relying on env vars")
	}
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
