// Package config loads process configuration from the environment (and an
// optional .env file for local development) via viper, with production
// validation rules that fail fast on insecure defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "HOTELFORGE"

// Config holds all configuration for the process.
type Config struct {
	Environment    string
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	RabbitMQ       RabbitMQConfig
	Hotelbeds      HotelbedsConfig
	HotelPlanner   HotelPlannerConfig
	PaymentGateway PaymentGatewayConfig
	CityUpdater    CityUpdaterConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration string
}

type RabbitMQConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	VHost          string
	ReconnectDelay time.Duration
}

type HotelbedsConfig struct {
	APIKey            string
	Secret            string
	BaseURL           string
	RequestsPerMinute int
}

type HotelPlannerConfig struct {
	APIKey  string
	BaseURL string
}

type PaymentGatewayConfig struct {
	MerchantID   string
	ClientKey    string
	ServerKey    string
	IsProduction bool
}

type CityUpdaterConfig struct {
	UpdateInterval   time.Duration
	HeartbeatInterval time.Duration
	OutputPath       string
}

// Load reads configuration from HOTELFORGE_-prefixed environment variables
// (and a .env file in the working directory, if present), applies defaults,
// and validates production requirements.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "hotelforge")
	v.SetDefault("database.user", "hotelforge")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", "5672")
	v.SetDefault("rabbitmq.user", "guest")
	v.SetDefault("rabbitmq.password", "guest")
	v.SetDefault("rabbitmq.vhost", "/")
	v.SetDefault("rabbitmq.reconnectdelay", "5s")
	v.SetDefault("hotelbeds.baseurl", "https://api.test.hotelbeds.com")
	v.SetDefault("hotelbeds.requestsperminute", 60)
	v.SetDefault("hotelplanner.baseurl", "https://api.hotelplanner.com")
	v.SetDefault("cityupdater.updateinterval", "1h")
	v.SetDefault("cityupdater.heartbeatinterval", "1m")
	v.SetDefault("cityupdater.outputpath", "./data/cities.json")

	for _, key := range []string{
		"database.host", "database.port", "database.name", "database.user", "database.password", "database.sslmode",
		"redis.host", "redis.port", "redis.password", "redis.db",
		"jwt.secret", "jwt.expiration",
		"server.host", "server.port",
		"rabbitmq.host", "rabbitmq.port", "rabbitmq.user", "rabbitmq.password", "rabbitmq.vhost", "rabbitmq.reconnectdelay",
		"hotelbeds.apikey", "hotelbeds.secret", "hotelbeds.baseurl",
		"hotelplanner.apikey", "hotelplanner.baseurl",
		"paymentgateway.merchantid", "paymentgateway.clientkey", "paymentgateway.serverkey", "paymentgateway.isproduction",
		"cityupdater.updateinterval", "cityupdater.heartbeatinterval", "cityupdater.outputpath",
		"environment",
	} {
		_ = v.BindEnv(key)
	}

	reconnectDelay, err := time.ParseDuration(v.GetString("rabbitmq.reconnectdelay"))
	if err != nil {
		return nil, fmt.Errorf("invalid rabbitmq reconnect delay: %w", err)
	}
	updateInterval, err := time.ParseDuration(v.GetString("cityupdater.updateinterval"))
	if err != nil {
		return nil, fmt.Errorf("invalid city updater update interval: %w", err)
	}
	heartbeatInterval, err := time.ParseDuration(v.GetString("cityupdater.heartbeatinterval"))
	if err != nil {
		return nil, fmt.Errorf("invalid city updater heartbeat interval: %w", err)
	}

	cfg := &Config{
		Environment: v.GetString("environment"),
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetString("server.port"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetString("database.port"),
			Name:     v.GetString("database.name"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetString("jwt.expiration"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:           v.GetString("rabbitmq.host"),
			Port:           v.GetString("rabbitmq.port"),
			User:           v.GetString("rabbitmq.user"),
			Password:       v.GetString("rabbitmq.password"),
			VHost:          v.GetString("rabbitmq.vhost"),
			ReconnectDelay: reconnectDelay,
		},
		Hotelbeds: HotelbedsConfig{
			APIKey:            v.GetString("hotelbeds.apikey"),
			Secret:            v.GetString("hotelbeds.secret"),
			BaseURL:           v.GetString("hotelbeds.baseurl"),
			RequestsPerMinute: v.GetInt("hotelbeds.requestsperminute"),
		},
		HotelPlanner: HotelPlannerConfig{
			APIKey:  v.GetString("hotelplanner.apikey"),
			BaseURL: v.GetString("hotelplanner.baseurl"),
		},
		PaymentGateway: PaymentGatewayConfig{
			MerchantID:   v.GetString("paymentgateway.merchantid"),
			ClientKey:    v.GetString("paymentgateway.clientkey"),
			ServerKey:    v.GetString("paymentgateway.serverkey"),
			IsProduction: v.GetBool("paymentgateway.isproduction"),
		},
		CityUpdater: CityUpdaterConfig{
			UpdateInterval:    updateInterval,
			HeartbeatInterval: heartbeatInterval,
			OutputPath:        v.GetString("cityupdater.outputpath"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if cfg.Environment == "production" {
		if cfg.Database.Password == "" {
			return fmt.Errorf("database password is required in production")
		}
		if cfg.JWT.Secret == "dev-secret-key-change-in-production" {
			return fmt.Errorf("JWT secret must be changed in production")
		}
	}

	return nil
}
