package config

// KomootConfig contains tour fetching configuration
type KomootConfig struct {
	BaseURL   string `yaml:"baseURL" env:"KOMOOTGPX_BASE_URL, overwrite" validate:"omitempty,url"`
	UserAgent string `yaml:"userAgent" env:"KOMOOTGPX_USER_AGENT, overwrite"`
	TimeoutMS int    `yaml:"timeoutMS" env:"KOMOOTGPX_TIMEOUT_MS, overwrite" validate:"gte=0"`
}

// OutputConfig contains GPX output configuration
type OutputConfig struct {
	Dir string `yaml:"dir" env:"KOMOOTGPX_OUTPUT_DIR, overwrite"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level" env:"KOMOOTGPX_LOG_LEVEL, overwrite" validate:"omitempty,oneof=trace debug info warn warning error"`
	Pretty bool   `yaml:"pretty" env:"KOMOOTGPX_LOG_PRETTY, overwrite"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Komoot KomootConfig `yaml:"komoot"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}
