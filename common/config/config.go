package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	env "github.com/jhunt/go-envirotron"
)

// Config carries the data-source locations and the login-history command.
// Every field can be set from a YAML config file or a GETUSERS_* variable.
type Config struct {
	PasswdFile  string   `yaml:"passwd_file" env:"GETUSERS_PASSWD_FILE"`
	GroupFile   string   `yaml:"group_file" env:"GETUSERS_GROUP_FILE"`
	SudoersFile string   `yaml:"sudoers_file" env:"GETUSERS_SUDOERS_FILE"`
	DefsFile    string   `yaml:"defs_file" env:"GETUSERS_DEFS_FILE"`
	WtmpFile    string   `yaml:"wtmp_file" env:"GETUSERS_WTMP_FILE"`
	LastCommand []string `yaml:"last_command"`
	LastTimeout int      `yaml:"last_timeout" env:"GETUSERS_LAST_TIMEOUT"`
}

// Default returns the stock source locations.
func Default() Config {
	return Config{
		PasswdFile:  "/etc/passwd",
		GroupFile:   "/etc/group",
		SudoersFile: "/etc/sudoers",
		DefsFile:    "/etc/login.defs",
		WtmpFile:    "/var/log/wtmp",
		LastCommand: []string{"last", "-w", "-i", "-f"},
		LastTimeout: 10,
	}
}

// Load resolves the effective configuration: defaults, then the YAML file
// at path (skipped when path is empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	env.Override(&cfg)

	if len(cfg.LastCommand) == 0 {
		return cfg, fmt.Errorf("last_command must not be empty")
	}
	if cfg.LastTimeout <= 0 {
		return cfg, fmt.Errorf("last_timeout must be a positive number of seconds")
	}

	return cfg, nil
}
