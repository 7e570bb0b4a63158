package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Redis    RedisConfig    `json:"redis"`
	Database DatabaseConfig `json:"database"`
	JWT      JWTConfig      `json:"jwt"`
	Throttle ThrottleConfig `json:"throttle"`
}

type ServerConfig struct {
	Port        string `json:"port"`
	Environment string `json:"environment"`
}

type RedisConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

func (r RedisConfig) GetRedisAddr() string {
	return r.Host + ":" + r.Port
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
	SSLMode  string `json:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type JWTConfig struct {
	Secret             string `json:"secret"`
	AccessExpiryMins   int    `json:"access_expiry_mins"`
	RefreshExpiryHours int    `json:"refresh_expiry_hours"`
}

// Limits are pointers so an explicit 0 (block everything) survives
// defaulting.
type ThrottleConfig struct {
	WindowDays        int  `json:"window_days"`
	UnregisteredLimit *int `json:"unregistered_limit"`
	FreeLimit         *int `json:"free_limit"`
}

func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(file, &config); err != nil {
		return nil, err
	}

	config.applyEnv()
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Secrets come from the environment when set; the config file holds the
// non-sensitive defaults checked into deployments.
func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.JWT.AccessExpiryMins == 0 {
		c.JWT.AccessExpiryMins = 30
	}
	if c.JWT.RefreshExpiryHours == 0 {
		c.JWT.RefreshExpiryHours = 24 * 7
	}
	if c.Throttle.WindowDays == 0 {
		c.Throttle.WindowDays = 30
	}
	if c.Throttle.UnregisteredLimit == nil {
		c.Throttle.UnregisteredLimit = intPtr(3)
	}
	if c.Throttle.FreeLimit == nil {
		c.Throttle.FreeLimit = intPtr(10)
	}
}

// Tokens signed with an empty key would validate against any forgery;
// refuse to start without a secret.
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required: set jwt.secret or the JWT_SECRET env var")
	}

	return nil
}

func intPtr(v int) *int {
	return &v
}
