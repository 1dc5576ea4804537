// Package config provides configuration management and dependency injection
// for the settlement service. It handles loading configuration from files and
// environment variables, and sets up the DI container.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	HTTPAddr string `mapstructure:"http_addr"`

	ChainID     int64  `mapstructure:"chain_id"`
	RPCAddr     string `mapstructure:"rpc_addr"`
	WSAddr      string `mapstructure:"ws_addr"`
	ExplorerURL string `mapstructure:"explorer_url"`

	Compute    ComputeConfig    `mapstructure:"compute"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Faucet     FaucetConfig     `mapstructure:"faucet"`
}

// ComputeConfig holds the compute-network client settings. RequesterKey is
// the task-submission credential and is required for the pipeline to start.
type ComputeConfig struct {
	AppAddress        string        `mapstructure:"app_address"`
	HubAddress        string        `mapstructure:"hub_address"`
	MarketplaceURL    string        `mapstructure:"marketplace_url"`
	ResultsGatewayURL string        `mapstructure:"results_gateway_url"`
	RequesterKey      string        `mapstructure:"requester_key"`
	ObservationLimit  time.Duration `mapstructure:"observation_limit"`
}

// SettlementConfig holds the settlement contract settings. ExecutorKey is
// distinct from the task-submission credential and optional: without it the
// execute endpoint reports not-configured.
type SettlementConfig struct {
	ContractAddress string `mapstructure:"contract_address"`
	TokenAddress    string `mapstructure:"token_address"`
	TokenDecimals   int    `mapstructure:"token_decimals"`
	ExecutorKey     string `mapstructure:"executor_key"`
}

// FaucetConfig holds the faucet endpoint settings.
type FaucetConfig struct {
	Amount   string        `mapstructure:"amount"`
	Cooldown time.Duration `mapstructure:"cooldown"`
}

// DatabaseConfig represents database configuration. The backing store is
// optional; without it jobs and treasury rows are not persisted.
type DatabaseConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	DBName   string `mapstructure:"dbName"`
	SSLMode  string `mapstructure:"sslMode"`

	// Connection pool settings.
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("compute.observation_limit", "10m")
	v.SetDefault("settlement.token_decimals", 6)
	v.SetDefault("faucet.amount", "1000000")
	v.SetDefault("faucet.cooldown", "1h")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")

	// Set config file.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/settlementd")
	}

	// Enable environment variables.
	v.SetEnvPrefix("SETTLE")
	v.AutomaticEnv()

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ChainID <= 0 {
		return fmt.Errorf("chain_id must be positive")
	}

	if c.RPCAddr == "" {
		return fmt.Errorf("rpc_addr is required")
	}

	if c.Compute.ObservationLimit <= 0 {
		return fmt.Errorf("compute.observation_limit must be positive")
	}

	if c.Settlement.TokenDecimals < 0 || c.Settlement.TokenDecimals > 18 {
		return fmt.Errorf("settlement.token_decimals out of range")
	}

	return nil
}

// PipelineConfigured reports whether the task-submission side is usable.
// Fatal at serve startup when missing, per the error policy.
func (c *Config) PipelineConfigured() bool {
	return c.Compute.RequesterKey != "" &&
		c.Compute.AppAddress != "" &&
		c.Compute.HubAddress != "" &&
		c.Compute.MarketplaceURL != ""
}

// ExecutorConfigured reports whether on-chain settlement can be submitted.
func (c *Config) ExecutorConfigured() bool {
	return c.Settlement.ExecutorKey != "" && c.Settlement.ContractAddress != ""
}

// TreasuryConfigured reports whether treasury balance reads are possible.
func (c *Config) TreasuryConfigured() bool {
	return c.Settlement.ContractAddress != "" && c.Settlement.TokenAddress != ""
}

// GetDatabaseDSN returns the database connection string.
func (c *DatabaseConfig) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
