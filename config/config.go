package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Log        LogConfig        `mapstructure:"log"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Sweeper    SweeperConfig    `mapstructure:"sweeper"`
	Notify     NotifyConfig     `mapstructure:"notify"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectRetry    time.Duration `mapstructure:"connect_retry"` // how long startup waits for the server
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	PoolSize     int           `mapstructure:"pool_size"`
	ConnectRetry time.Duration `mapstructure:"connect_retry"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig describes the tokens issued by the marketplace identity service.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// SettlementConfig controls how escrowed order funds are split.
type SettlementConfig struct {
	CommissionRate    string `mapstructure:"commission_rate"` // decimal fraction, e.g. "0.05"
	Currency          string `mapstructure:"currency"`
	PlatformAccountID string `mapstructure:"platform_account_id"` // empty = commission is not credited anywhere
}

// Rate parses the commission rate. It must lie in [0, 1).
func (s SettlementConfig) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(s.CommissionRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing commission rate %q: %w", s.CommissionRate, err)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("commission rate %s out of range [0, 1)", rate)
	}
	return rate, nil
}

// GatewayConfig configures outbound payment providers and inbound callbacks.
type GatewayConfig struct {
	Timeout        time.Duration `mapstructure:"timeout"`
	CallbackSecret string        `mapstructure:"callback_secret"` // HMAC key for the generic callback endpoint
	SimulateDelay  time.Duration `mapstructure:"simulate_delay"`
	Mpesa          MpesaConfig   `mapstructure:"mpesa"`
}

type MpesaConfig struct {
	Environment    string `mapstructure:"environment"` // sandbox, production
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
	Shortcode      string `mapstructure:"shortcode"`
	Passkey        string `mapstructure:"passkey"`
	CallbackURL    string `mapstructure:"callback_url"`
}

// Enabled reports whether real Daraja credentials are configured.
func (m MpesaConfig) Enabled() bool {
	return m.ConsumerKey != "" && m.ConsumerSecret != ""
}

// BaseURL returns the Daraja API host for the configured environment.
func (m MpesaConfig) BaseURL() string {
	if m.Environment == "production" {
		return "https://api.safaricom.co.ke"
	}
	return "https://sandbox.safaricom.co.ke"
}

// SweeperConfig controls the expiry of payments stuck before a terminal state.
type SweeperConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	ProcessingTTL time.Duration `mapstructure:"processing_ttl"`
	PendingTTL    time.Duration `mapstructure:"pending_ttl"`
}

type NotifyConfig struct {
	PushBuffer int `mapstructure:"push_buffer"` // per-connection outbound queue size
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SLG_ (Settlement LedGer).
// Nested keys use underscore: SLG_DATABASE_HOST, SLG_SETTLEMENT_COMMISSION_RATE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "settlement_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.connect_retry", "30s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.connect_retry", "15s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "farm-marketplace")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("settlement.commission_rate", "0.05")
	v.SetDefault("settlement.currency", "KES")
	v.SetDefault("settlement.platform_account_id", "")
	v.SetDefault("gateway.timeout", "15s")
	v.SetDefault("gateway.callback_secret", "")
	v.SetDefault("gateway.simulate_delay", "5s")
	v.SetDefault("gateway.mpesa.environment", "sandbox")
	v.SetDefault("gateway.mpesa.consumer_key", "")
	v.SetDefault("gateway.mpesa.consumer_secret", "")
	v.SetDefault("gateway.mpesa.shortcode", "174379")
	v.SetDefault("gateway.mpesa.passkey", "")
	v.SetDefault("gateway.mpesa.callback_url", "")
	v.SetDefault("sweeper.interval", "1m")
	v.SetDefault("sweeper.processing_ttl", "15m")
	v.SetDefault("sweeper.pending_ttl", "5m")
	v.SetDefault("notify.push_buffer", 16)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SLG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SLG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if _, err := cfg.Settlement.Rate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
