package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"qtermstab/verify"
)

// Config holds the settings that can be set from a YAML file. Command line
// flags override individual fields.
type Config struct {
	// Trials is the number of randomized trials per flow.
	Trials int `yaml:"trials"`
	// Seed makes audits and simulations reproducible.
	Seed uint64 `yaml:"seed"`
	// Workers bounds how many gates are audited at once.
	Workers int `yaml:"workers"`
	// Unsigned accepts flows that only hold up to sign.
	Unsigned bool `yaml:"unsigned"`
	// LogLevel is a zap level name such as "info" or "debug".
	LogLevel string `yaml:"log_level"`
	// Qubits is the register size the editor starts with.
	Qubits int `yaml:"qubits"`
	// SavePath is where the editor writes circuits on ctrl+s.
	SavePath string `yaml:"save_path"`
}

// DefaultConfig returns the settings used when no file or flag sets them.
func DefaultConfig() Config {
	return Config{
		Trials:   verify.DefaultTrials,
		Seed:     1,
		Workers:  runtime.GOMAXPROCS(0),
		LogLevel: "info",
		Qubits:   2,
		SavePath: "circuit.txt",
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate reports the first field outside its allowed range.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return errors.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Qubits < 1 {
		return errors.Errorf("qubits must be positive, got %d", c.Qubits)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}
