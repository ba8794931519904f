package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBodies    = 64
	DefaultWorldSize = 10.0
	DefaultMaxSpeed  = 2.0
	DefaultBodySize  = 1.0
	DefaultSteps     = 500
	DefaultDt        = 0.01
	DefaultTableSize = 16
)

type Config struct {
	Scene SceneConfig `yaml:"scene"`
	Run   RunConfig   `yaml:"run"`
	Table TableConfig `yaml:"table"`
}

type SceneConfig struct {
	Bodies    int     `yaml:"bodies"`
	WorldSize float64 `yaml:"world_size"`
	MaxSpeed  float64 `yaml:"max_speed"`
	BodySize  float64 `yaml:"body_size"`
}

type RunConfig struct {
	Steps int     `yaml:"steps"`
	Dt    float64 `yaml:"dt"`
	Seed  int64   `yaml:"seed"`
}

type TableConfig struct {
	InitialSize int  `yaml:"initial_size"`
	ShrinkAfter bool `yaml:"shrink_after"` // call Shrink once the run ends
}

func DefaultConfig() *Config {
	return &Config{
		Scene: SceneConfig{
			Bodies:    DefaultBodies,
			WorldSize: DefaultWorldSize,
			MaxSpeed:  DefaultMaxSpeed,
			BodySize:  DefaultBodySize,
		},
		Run: RunConfig{
			Steps: DefaultSteps,
			Dt:    DefaultDt,
			Seed:  1,
		},
		Table: TableConfig{
			InitialSize: DefaultTableSize,
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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
