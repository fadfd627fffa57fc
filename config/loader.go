package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// LoadAppConfig loads the application configuration. The config.yml
// file is optional; KOMOOTGPX_* environment variables override it, and
// defaults fill anything left unset.
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig

	paths := []string{"config.yml", "komootgpx.yml"}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		break
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return cfg, err
	}

	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Komoot.BaseURL == "" {
		cfg.Komoot.BaseURL = "https://www.komoot.com"
	}
	if cfg.Komoot.UserAgent == "" {
		cfg.Komoot.UserAgent = "komootgpx"
	}
	if cfg.Komoot.TimeoutMS == 0 {
		cfg.Komoot.TimeoutMS = 10000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
