package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	DatabaseConfig DatabaseConfig `yaml:"database"`
	CodecConfig    CodecConfig    `yaml:"codec"`
}

var GlobalConfig *Config = nil

func InitializeGlobalConfig(path string) error {
	if GlobalConfig != nil {
		return nil
	}

	var err error
	GlobalConfig, err = LoadConfigFile(path)

	return err
}

func DefaultConfig() *Config {
	return &Config{
		DatabaseConfig: DefaultDatabaseConfig(),
		CodecConfig:    DefaultCodecConfig(),
	}
}

// LoadConfigFile decodes the file over the defaults, then applies environment overrides.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)

	if err := d.Decode(config); err != nil {
		return nil, err
	}

	config.DatabaseConfig.ApplyEnvironment()

	return config, nil
}
