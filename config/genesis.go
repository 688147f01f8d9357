package config

import (
	"errors"
	"path/filepath"
)

// ErrNoGenesis is returned when genesis accounts file is not configured.
var ErrNoGenesis = errors.New("genesis accounts file is not configured")

// GenesisConfig points to the file with accounts created in the genesis slot.
type GenesisConfig struct {
	// Path to the accounts file in the checkpoint format.
	// Relative path is resolved against the data directory.
	Accounts string `mapstructure:"accounts"`
}

// GenesisPath returns canonical path to the genesis accounts file.
func (cfg *Config) GenesisPath() (string, error) {
	if cfg.Genesis.Accounts == "" {
		return "", ErrNoGenesis
	}
	path := cfg.Genesis.Accounts
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.DataDir(), path)
	}
	return filepath.Clean(path), nil
}
