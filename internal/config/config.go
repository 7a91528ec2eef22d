package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Simulator SimulatorConfig
	Stream    StreamConfig
	MQTT      MQTTConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type SimulatorConfig struct {
	TickInterval time.Duration
	Seed         int64
}

type StreamConfig struct {
	HeartbeatInterval time.Duration
	RetryMillis       int
	SubscriberBuffer  int
}

type MQTTConfig struct {
	BrokerURL   string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

type RateLimitConfig struct {
	GeneralRPS   float64
	GeneralBurst int
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(homeDir)
	}
	viper.AutomaticEnv()

	viper.SetDefault("SIMULATOR_TICK_INTERVAL", "3s")
	viper.SetDefault("STREAM_HEARTBEAT_INTERVAL", "15s")
	viper.SetDefault("STREAM_RETRY_MILLIS", 5000)
	viper.SetDefault("STREAM_SUBSCRIBER_BUFFER", 16)
	viper.SetDefault("MQTT_TOPIC_PREFIX", "fleet/telemetry")
	viper.SetDefault("RATE_LIMIT_GENERAL_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_GENERAL_BURST", 100)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			if _, statErr := os.Stat(".env"); statErr == nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
		Simulator: SimulatorConfig{
			TickInterval: viper.GetDuration("SIMULATOR_TICK_INTERVAL"),
			Seed:         viper.GetInt64("SIMULATOR_SEED"),
		},
		Stream: StreamConfig{
			HeartbeatInterval: viper.GetDuration("STREAM_HEARTBEAT_INTERVAL"),
			RetryMillis:       viper.GetInt("STREAM_RETRY_MILLIS"),
			SubscriberBuffer:  viper.GetInt("STREAM_SUBSCRIBER_BUFFER"),
		},
		MQTT: MQTTConfig{
			BrokerURL:   viper.GetString("MQTT_BROKER_URL"),
			ClientID:    viper.GetString("MQTT_CLIENT_ID"),
			Username:    viper.GetString("MQTT_USERNAME"),
			Password:    viper.GetString("MQTT_PASSWORD"),
			TopicPrefix: viper.GetString("MQTT_TOPIC_PREFIX"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   viper.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: viper.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   viper.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
	}

	return config, nil
}

// MQTTEnabled reports whether the optional telemetry exporter should run.
func (c *Config) MQTTEnabled() bool {
	return c.MQTT.BrokerURL != ""
}
