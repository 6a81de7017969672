// Package configfile loads an evmgr.Config from TOML or YAML files, mirroring
// the teacher module's feeders package (config_feeders.go), which loads the
// application's Configuration from multiple file formats. The kernel itself
// has no wire formats of its own (§6 of the spec); these loaders only ever
// populate the Config struct, never event or subscriber state.
package configfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dreamguest/evmgr"
)

// LoadTOML reads a TOML-encoded evmgr.Config from path.
func LoadTOML(path string) (*evmgr.Config, error) {
	cfg := evmgr.DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("configfile: decode toml %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadYAML reads a YAML-encoded evmgr.Config from path.
func LoadYAML(path string) (*evmgr.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configfile: read %s: %w", path, err)
	}
	cfg := evmgr.DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("configfile: decode yaml %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
