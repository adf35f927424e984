package redelex

// Config holds configuration for the upstream Redelex API.
type Config struct {
	// BaseURL is the root of the Redelex REST API.
	BaseURL string `mapstructure:"base_url" default:"https://api.redelex.com/api"`
	// APIKey is sent as bearer token on every call.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds each upstream call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// CacheSeconds keeps upstream answers this long. Zero disables caching.
	CacheSeconds int `mapstructure:"cache_seconds" default:"60"`
}
