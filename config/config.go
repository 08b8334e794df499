package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	ProviderHTTP     = "http"
	ProviderPostgres = "postgres"

	defaultHTTPAddress     = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultAccessTTL       = 5 * time.Minute
	defaultRefreshTTL      = 24 * time.Hour
	defaultProviderTimeout = 5 * time.Second
	defaultFlightsCacheTTL = 60
	defaultAccountsTopic   = "accounts.registered"
	defaultGroupID         = "flightasset-worker"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Provider ProviderConfig `yaml:"provider"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address      string        `yaml:"address" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required,min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Name     string `yaml:"name" validate:"required"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// URL renders the connection as a postgres:// URL, the form migrate expects.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0"`
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers" validate:"required,min=1,dive,required"`
	AccountsTopic string   `yaml:"accounts_topic" validate:"required"`
	GroupID       string   `yaml:"group_id" validate:"required"`
}

type AuthConfig struct {
	SigningKey string        `yaml:"signing_key" validate:"required,min=16"`
	Issuer     string        `yaml:"issuer"`
	AccessTTL  time.Duration `yaml:"access_ttl" validate:"gt=0"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" validate:"gt=0"`
}

type ProviderConfig struct {
	Type    string        `yaml:"type" validate:"oneof=http postgres"`
	BaseURL string        `yaml:"base_url" validate:"required_if=Type http"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// CacheConfig controls the flight response cache. An omitted TTL gets the
// default; an explicit 0 turns caching off.
type CacheConfig struct {
	FlightsTTLSeconds *int `yaml:"flights_ttl_seconds" validate:"omitempty,min=0"`
}

func (c CacheConfig) FlightsTTL() time.Duration {
	if c.FlightsTTLSeconds == nil {
		return 0
	}
	return time.Duration(*c.FlightsTTLSeconds) * time.Second
}

func (c CacheConfig) Enabled() bool {
	return c.FlightsTTL() > 0
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = defaultHTTPAddress
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = defaultReadTimeout
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = defaultWriteTimeout
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Kafka.AccountsTopic == "" {
		c.Kafka.AccountsTopic = defaultAccountsTopic
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = defaultGroupID
	}
	if c.Auth.AccessTTL == 0 {
		c.Auth.AccessTTL = defaultAccessTTL
	}
	if c.Auth.RefreshTTL == 0 {
		c.Auth.RefreshTTL = defaultRefreshTTL
	}
	if c.Provider.Type == "" {
		c.Provider.Type = ProviderHTTP
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = defaultProviderTimeout
	}
	if c.Cache.FlightsTTLSeconds == nil {
		ttl := defaultFlightsCacheTTL
		c.Cache.FlightsTTLSeconds = &ttl
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
