package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override secrets from the config file.
const (
	EnvDatabasePassword = "DATABASE_PASSWORD"
	EnvRedisPassword    = "REDIS_PASSWORD"
)

// Config represents the reconciler configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Reconciler    ReconcilerConfig    `yaml:"reconciler"`
	Confirmations ConfirmationsConfig `yaml:"confirmations"`
	Relay         RelayConfig         `yaml:"relay"`
	Lock          LockConfig          `yaml:"lock"`
	Chains        []ChainConfig       `yaml:"chains" validate:"dive"`
	Monitoring    MonitoringConfig    `yaml:"monitoring"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver   string `yaml:"driver" default:"postgres" validate:"oneof=postgres memory"`
	Host     string `yaml:"host" default:"localhost" validate:"required_if=Driver postgres"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"bridge" validate:"required_if=Driver postgres"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// ReconcilerConfig controls the reconciliation job
type ReconcilerConfig struct {
	// Interval between scheduled runs; zero disables the in-process scheduler.
	Interval   time.Duration `yaml:"interval" default:"1m"`
	Timeout    time.Duration `yaml:"timeout" default:"2m" validate:"gt=0"`
	BatchSize  int           `yaml:"batch_size" default:"500" validate:"min=1,max=500"`
	Workers    int           `yaml:"workers" default:"8" validate:"min=1,max=64"`
	StaleAfter time.Duration `yaml:"stale_after" default:"24h"`
	RunOnStart bool          `yaml:"run_on_start" default:"true"`
}

// Confirmation sources
const (
	SourceSimulated = "simulated"
	SourceRelay     = "relay"
)

// ConfirmationsConfig selects where confirmation progress comes from
type ConfirmationsConfig struct {
	Source       string `yaml:"source" default:"simulated" validate:"oneof=simulated relay"`
	MinIncrement int    `yaml:"min_increment" default:"1" validate:"min=1"`
	MaxIncrement int    `yaml:"max_increment" default:"2" validate:"gtefield=MinIncrement"`
}

// RelayConfig configures the chain relay adapters
type RelayConfig struct {
	EVM     []EVMRelayConfig `yaml:"evm" validate:"dive"`
	Breaker BreakerConfig    `yaml:"breaker"`
}

// EVMRelayConfig points one source chain at an EVM JSON-RPC endpoint.
// FinalityBlocks is the depth at which a source transaction counts as settled.
type EVMRelayConfig struct {
	Chain             string        `yaml:"chain" validate:"required"`
	RPCURL            string        `yaml:"rpc_url" validate:"required,url"`
	RequestsPerSecond float64       `yaml:"requests_per_second" default:"10" validate:"gt=0"`
	Burst             int           `yaml:"burst" default:"5" validate:"min=1"`
	RequestTimeout    time.Duration `yaml:"request_timeout" default:"10s"`
	FinalityBlocks    int           `yaml:"finality_blocks" default:"12" validate:"min=1"`
}

// BreakerConfig configures the circuit breaker around relay RPC calls
type BreakerConfig struct {
	MaxRequests         uint32        `yaml:"max_requests" default:"1"`
	Interval            time.Duration `yaml:"interval" default:"1m"`
	Timeout             time.Duration `yaml:"timeout" default:"30s"`
	ConsecutiveFailures uint32        `yaml:"consecutive_failures" default:"5" validate:"min=1"`
}

// LockConfig configures the optional distributed run lock
type LockConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr" default:"localhost:6379" validate:"required_if=Enabled true"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Key      string        `yaml:"key" default:"bridge-reconciler:run"`
	TTL      time.Duration `yaml:"ttl" default:"5m" validate:"gt=0"`
}

// ChainConfig describes a destination chain the initiator may bridge to
type ChainConfig struct {
	Name                  string `yaml:"name" validate:"required"`
	Ready                 bool   `yaml:"ready"`
	RequiredConfirmations int    `yaml:"required_confirmations" validate:"min=0"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

var validate = validator.New()

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse builds a configuration from raw YAML, applying defaults, environment
// overrides and validation.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// defaults.Set only reaches slice elements that already exist
	for i := range cfg.Chains {
		if err := defaults.Set(&cfg.Chains[i]); err != nil {
			return nil, fmt.Errorf("failed to set chain defaults: %w", err)
		}
	}
	for i := range cfg.Relay.EVM {
		if err := defaults.Set(&cfg.Relay.EVM[i]); err != nil {
			return nil, fmt.Errorf("failed to set relay defaults: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvDatabasePassword); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		cfg.Lock.Password = v
	}
}

// Validate checks struct constraints and cross-field rules
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Chains))
	for _, ch := range c.Chains {
		if _, dup := seen[ch.Name]; dup {
			return fmt.Errorf("chains: duplicate chain %q", ch.Name)
		}
		seen[ch.Name] = struct{}{}
	}

	if c.Confirmations.Source == SourceRelay && len(c.Relay.EVM) == 0 {
		return errors.New("confirmations.source=relay requires at least one relay.evm entry")
	}

	return nil
}

// Chain returns the configuration for the named chain, if any
func (c *Config) Chain(name string) (ChainConfig, bool) {
	for _, ch := range c.Chains {
		if ch.Name == name {
			return ch, true
		}
	}
	return ChainConfig{}, false
}
