package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration
type Config struct {
	App struct {
		Env  string `yaml:"env"`
		Port int    `yaml:"port"`
	} `yaml:"app"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	JWT struct {
		Secret    string `yaml:"secret"`
		ExpiresIn int    `yaml:"expires_in"` // minutes
		RefreshIn int    `yaml:"refresh_in"` // minutes
	} `yaml:"jwt"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
	} `yaml:"cors"`
}

// Load reads a yaml config file and applies environment overrides.
// Env vars always win over file values so deployments can keep secrets
// out of the repo.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "local" || c.App.Env == "development" || c.App.Env == "dev"
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Env = "local"
	cfg.App.Port = 8080
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 3306
	cfg.Database.User = "dealflow"
	cfg.Database.Name = "dealflow"
	cfg.JWT.ExpiresIn = 30
	cfg.JWT.RefreshIn = 60 * 24
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = 6379
	cfg.Redis.PoolSize = 10
	cfg.CORS.AllowOrigins = "http://localhost:5173,http://localhost:3000"
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.App.Env, "APP_ENV")
	setInt(&cfg.App.Port, "PORT")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setInt(&cfg.JWT.ExpiresIn, "JWT_EXPIRES_IN")
	setInt(&cfg.JWT.RefreshIn, "JWT_REFRESH_IN")
	setBool(&cfg.Redis.Enabled, "REDIS_ENABLED")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")
	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
