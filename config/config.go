// Package config contains aicredit node configuration definitions.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/aicredit/go-aicredit/filesystem"
	"github.com/aicredit/go-aicredit/vm"
)

const (
	defaultConfigFileName = "./config.toml"
	defaultDataDirName    = "aicredit"
	defaultDBFile         = "state.sql"
	defaultLockFile       = "LOCK"
	defaultKeypairFile    = "id.json"
)

var (
	defaultHomeDir = filesystem.GetUserHomeDirectory()
	defaultDataDir = filepath.Join(defaultHomeDir, defaultDataDirName)
)

// Config defines the top level configuration for an aicredit node.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Genesis    GenesisConfig `mapstructure:"genesis"`
	VM         vm.Config     `mapstructure:"vm"`
	LOGGING    LoggerConfig  `mapstructure:"logging"`
}

// DataDir returns the absolute path to use for the node's data.
func (cfg *Config) DataDir() string {
	return filesystem.GetCanonicalPath(cfg.DataDirParent)
}

// DBPath is a path to the sqlite database with accounts, results and slots.
func (cfg *Config) DBPath() string {
	return filepath.Join(cfg.DataDir(), cfg.DatabaseFile)
}

// LockPath is a path to the file that guards data directory from concurrent use.
func (cfg *Config) LockPath() string {
	if cfg.FileLock != "" {
		return filesystem.GetCanonicalPath(cfg.FileLock)
	}
	return filepath.Join(cfg.DataDir(), defaultLockFile)
}

// KeypairPath is a path to the keypair used to sign transactions submitted from cli.
func (cfg *Config) KeypairPath() string {
	if cfg.Keypair != "" {
		return filesystem.GetCanonicalPath(cfg.Keypair)
	}
	return filepath.Join(cfg.DataDir(), defaultKeypairFile)
}

// BaseConfig defines the default configuration options for aicredit app.
type BaseConfig struct {
	DataDirParent string `mapstructure:"data-folder"`
	FileLock      string `mapstructure:"filelock"`
	DatabaseFile  string `mapstructure:"db-file"`

	ConfigFile string `mapstructure:"config"`
	Keypair    string `mapstructure:"keypair"`

	DatabaseConnections     int  `mapstructure:"db-connections"`
	DatabaseLatencyMetering bool `mapstructure:"db-latency-metering"`

	CollectMetrics bool `mapstructure:"metrics"`
	MetricsPort    int  `mapstructure:"metrics-port"`
}

// DefaultConfig returns the default configuration for an aicredit node.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		VM:         vm.DefaultConfig(),
		LOGGING:    DefaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		DataDirParent:       defaultDataDir,
		DatabaseFile:        defaultDBFile,
		ConfigFile:          defaultConfigFileName,
		DatabaseConnections: 16,
		CollectMetrics:      false,
		MetricsPort:         1010,
	}
}

// LoadConfig load the config file.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		return nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}

// SetConfigFile overrides the default config file path.
func (cfg *BaseConfig) SetConfigFile(file string) {
	cfg.ConfigFile = file
}
