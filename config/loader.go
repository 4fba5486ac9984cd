package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Default returns the built-in configuration used when no config.yml exists.
func Default() AppConfig {
	return AppConfig{
		Provider: ProviderConfig{
			BaseURL:     "https://www.bahn.de/web/api",
			TimeoutMS:   15000,
			MaxJourneys: 6,
		},
		Map: MapConfig{
			Zoom:               8,
			CircleRadiusMeters: 1000,
			MarkerColor:        "crimson",
			OutputPath:         "output.html",
		},
		Realtime: RealtimeConfig{
			TimeoutMS: 10000,
		},
	}
}

// LoadAppConfig loads and validates the application configuration from config.yml.
// A missing file falls back to Default; a present but invalid file is an error.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./cmd/journeymap/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			Config = Default()
			return nil
		}
		return err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

// applyDefaults fills zero values left by partial config files.
func applyDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = def.Provider.BaseURL
	}
	if cfg.Provider.TimeoutMS == 0 {
		cfg.Provider.TimeoutMS = def.Provider.TimeoutMS
	}
	if cfg.Provider.MaxJourneys == 0 {
		cfg.Provider.MaxJourneys = def.Provider.MaxJourneys
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = def.Map.Zoom
	}
	if cfg.Map.CircleRadiusMeters == 0 {
		cfg.Map.CircleRadiusMeters = def.Map.CircleRadiusMeters
	}
	if cfg.Map.MarkerColor == "" {
		cfg.Map.MarkerColor = def.Map.MarkerColor
	}
	if cfg.Map.OutputPath == "" {
		cfg.Map.OutputPath = def.Map.OutputPath
	}
	if cfg.Realtime.TimeoutMS == 0 {
		cfg.Realtime.TimeoutMS = def.Realtime.TimeoutMS
	}
}
