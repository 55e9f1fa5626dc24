package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Log   LogConfig   `yaml:"log"`
	Redis RedisConfig `yaml:"redis"`
	Kafka KafkaConfig `yaml:"kafka"`
}

type HTTPConfig struct {
	Address                string `yaml:"address"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	Swagger                bool   `yaml:"swagger"`
}

func (h HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(h.ShutdownTimeoutSeconds) * time.Second
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// RedisConfig configures the package catalogue cache. An empty Addr disables it.
type RedisConfig struct {
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	CatalogueTTLSec int    `yaml:"catalogue_ttl_seconds"`
}

func (r RedisConfig) CatalogueTTL() time.Duration {
	return time.Duration(r.CatalogueTTLSec) * time.Second
}

// KafkaConfig configures booking events. No brokers means nothing is published.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:                ":3000",
			ShutdownTimeoutSeconds: 5,
			Swagger:                true,
		},
		Log: LogConfig{Level: "info"},
		Redis: RedisConfig{
			CatalogueTTLSec: 30,
		},
		Kafka: KafkaConfig{
			BookingEventsTopic: "travel.booking-events",
			NotificationsTopic: "travel.notifications",
			GroupID:            "travel-notifier",
		},
	}
}

// LoadConfig reads path on top of Default. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":3000"
	}
	if cfg.HTTP.ShutdownTimeoutSeconds <= 0 {
		cfg.HTTP.ShutdownTimeoutSeconds = 5
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}
