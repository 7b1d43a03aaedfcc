package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultR            = 3.99
	DefaultWorkers      = 0 // 0 = one per CPU
	DefaultEncryptedOut = "./encrypted.png"
	DefaultDecryptedOut = "./decrypted.png"
)

// Config is both the tool configuration and the key file format: the
// (seed, r) pair is everything decryption needs to reproduce the
// encryption keystream. Anyone holding this file can decrypt.
type Config struct {
	Seed    float64 `yaml:"seed"`
	R       float64 `yaml:"r"`
	Workers int     `yaml:"workers"`
	Output  Outputs `yaml:"output"`
}

type Outputs struct {
	Encrypted string `yaml:"encrypted"`
	Decrypted string `yaml:"decrypted"`
}

func DefaultConfig() *Config {
	return &Config{
		R:       DefaultR,
		Workers: DefaultWorkers,
		Output: Outputs{
			Encrypted: DefaultEncryptedOut,
			Decrypted: DefaultDecryptedOut,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config with owner-only permissions since the seed
// is the decryption key.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks the generator domain: seed strictly inside (0, 1),
// r positive.
func (c *Config) Validate() error {
	if c.Seed <= 0 || c.Seed >= 1 {
		return fmt.Errorf("seed must lie strictly inside (0, 1), got %g", c.Seed)
	}
	if c.R <= 0 {
		return fmt.Errorf("r must be positive, got %g", c.R)
	}
	return nil
}
