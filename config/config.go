package config

import (
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

/*
Config holds the runtime settings of the bookstore.

	[catalog]
	seed_classics = true
	seed_random   = 0

	[log]
	level = info

	[cli]
	color = true

Every key is optional; missing keys keep their defaults.
*/
type Config struct {
	SeedClassics bool
	SeedRandom   int
	LogLevel     string
	Color        bool
}

func Default() *Config {
	return &Config{
		SeedClassics: true,
		SeedRandom:   0,
		LogLevel:     "info",
		Color:        true,
	}
}

// Load reads the INI file at path on top of the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %q", path)
	}
	if err := cfg.parse(file); err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// Parse reads INI content from memory on top of the defaults.
func Parse(data []byte) (*Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg := Default()
	if err := cfg.parse(file); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

func (cfg *Config) parse(file *ini.File) error {
	catalog := file.Section("catalog")
	cfg.SeedClassics = catalog.Key("seed_classics").MustBool(cfg.SeedClassics)
	cfg.SeedRandom = catalog.Key("seed_random").MustInt(cfg.SeedRandom)
	if cfg.SeedRandom < 0 {
		return errors.Errorf("catalog.seed_random must not be negative, got %d", cfg.SeedRandom)
	}

	cfg.LogLevel = file.Section("log").Key("level").MustString(cfg.LogLevel)
	cfg.Color = file.Section("cli").Key("color").MustBool(cfg.Color)
	return nil
}
