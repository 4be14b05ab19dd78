package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Konsultn-Engineering/datagit/connector"
	"github.com/Konsultn-Engineering/datagit/query"
)

var ErrNoTable = errors.New("snapshot table is required")

// Config is the on-disk description of what to snapshot and where from.
type Config struct {
	Database  connector.Config      `json:"database" yaml:"database"`
	Snapshots []query.SnapshotQuery `json:"snapshots" yaml:"snapshots"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	for i, s := range c.Snapshots {
		if s.TableID == "" {
			return fmt.Errorf("snapshots[%d]: %w", i, ErrNoTable)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("snapshots[%d] (%s): %w", i, s.TableID, err)
		}
	}
	return nil
}
