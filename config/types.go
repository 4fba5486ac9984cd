package config

// ProviderConfig contains the journey-planning provider configuration
type ProviderConfig struct {
	BaseURL     string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gte=0"`
	MaxJourneys int    `yaml:"maxJourneys" validate:"gte=0"`
}

// MapConfig contains map rendering configuration
type MapConfig struct {
	Zoom               int     `yaml:"zoom" validate:"gte=0,lte=19"`
	CircleRadiusMeters float64 `yaml:"circleRadiusMeters" validate:"gte=0"`
	MarkerColor        string  `yaml:"markerColor"`
	OutputPath         string  `yaml:"outputPath"`
}

// RealtimeConfig contains the optional GTFS-Realtime overlay configuration
type RealtimeConfig struct {
	TripUpdatesURL string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Provider ProviderConfig `yaml:"provider"`
	Map      MapConfig      `yaml:"map"`
	Realtime RealtimeConfig `yaml:"realtime"`
}
