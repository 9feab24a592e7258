package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MaxUCSD/ddm-simulator/internal/ddm"
)

const (
	DefaultDriftRate  = 1.5
	DefaultThreshold  = 2.0
	DefaultBias       = 0.0
	DefaultNoiseScale = 1.0
	DefaultDt         = 0.05
	DefaultMaxTime    = 5.0
	DefaultTrials     = 100
)

type Config struct {
	DriftRate    float64 `yaml:"drift_rate"`
	Threshold    float64 `yaml:"threshold"`
	StartingBias float64 `yaml:"starting_bias"`
	NoiseScale   float64 `yaml:"noise_scale"`
	Dt           float64 `yaml:"dt"`
	MaxTime      float64 `yaml:"max_time"`
	Seed         int64   `yaml:"seed"`
	Trials       int     `yaml:"trials"`
}

func DefaultConfig() *Config {
	return &Config{
		DriftRate:    DefaultDriftRate,
		Threshold:    DefaultThreshold,
		StartingBias: DefaultBias,
		NoiseScale:   DefaultNoiseScale,
		Dt:           DefaultDt,
		MaxTime:      DefaultMaxTime,
		Trials:       DefaultTrials,
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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() ddm.Params {
	return ddm.Params{
		DriftRate:    c.DriftRate,
		Threshold:    c.Threshold,
		StartingBias: c.StartingBias,
		NoiseScale:   c.NoiseScale,
		Dt:           c.Dt,
		MaxTime:      c.MaxTime,
	}
}
