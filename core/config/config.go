package config

import (
	"reflect"
	"strings"

	"redelex-panel/core/database"
	"redelex-panel/core/logger"
	"redelex-panel/core/redelex"
	"redelex-panel/core/server"
	"redelex-panel/core/session"
	"redelex-panel/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the panel database.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the report archive (S3/MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Session holds configuration for the Redis session store.
	Session session.Config `mapstructure:"session"`
	// Redelex holds configuration for the upstream Redelex API.
	Redelex redelex.Config `mapstructure:"redelex"`
}

// LoadConfig loads configuration from environment variables and the .env
// file found in path. Environment variables win over .env values.
func LoadConfig(path string) (*Config, error) {
	envPath := ".env"
	if path != "." && path != "" {
		envPath = strings.TrimSuffix(path, "/") + "/.env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Load(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues walks the struct and registers every mapstructure key in Viper
// with its 'default' tag value, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
