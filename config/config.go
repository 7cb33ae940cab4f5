package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all Smart Agro configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Market   MarketConfig   `yaml:"market"`
	Weather  WeatherConfig  `yaml:"weather"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port      string `yaml:"port"`
	JWTSecret string `yaml:"jwt_secret"`
}

// DatabaseConfig configures the MySQL connection.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// GeminiConfig configures the generative AI service.
type GeminiConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	TTSModel  string `yaml:"tts_model"`
	VoiceName string `yaml:"voice_name"`
}

// MarketConfig configures the Agmarknet (data.gov.in) feed.
type MarketConfig struct {
	APIKey string `yaml:"api_key"`
	State  string `yaml:"state"`
}

// WeatherConfig configures the OpenWeather feed.
type WeatherConfig struct {
	APIKey string `yaml:"api_key"`
}

// Default returns a config that lets the service boot with no file present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8080",
			JWTSecret: "smartagro_secret_key",
		},
		Database: DatabaseConfig{
			DSN: "root:root@tcp(127.0.0.1:3306)/smartagro?parseTime=true&charset=utf8mb4",
		},
		Gemini: GeminiConfig{
			Model:     "gemini-3-flash-preview",
			TTSModel:  "gemini-2.5-flash-preview-tts",
			VoiceName: "Kore",
		},
		Market: MarketConfig{
			State: "Maharashtra",
		},
	}
}

// Load reads the YAML config at path (if it exists) and applies
// environment overrides on top. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets deployment environments win over the file.
func (c *Config) applyEnvOverrides() {
	c.Server.Port = envOr("PORT", c.Server.Port)
	c.Server.JWTSecret = envOr("JWT_SECRET", c.Server.JWTSecret)
	c.Database.DSN = envOr("DATABASE_DSN", c.Database.DSN)
	c.Gemini.APIKey = envOr("GEMINI_API_KEY", c.Gemini.APIKey)
	c.Gemini.Model = envOr("GEMINI_MODEL", c.Gemini.Model)
	c.Market.APIKey = envOr("DATA_GOV_API_KEY", c.Market.APIKey)
	c.Weather.APIKey = envOr("OPENWEATHER_API_KEY", c.Weather.APIKey)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
