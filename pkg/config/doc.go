// Package config loads typed configuration from the environment.
//
// It combines github.com/joho/godotenv, which reads an optional .env file,
// with github.com/caarlos0/env/v11, which maps variables onto struct fields via
// `env` and `envDefault` tags. Parsed values are cached per type, so calling
// Load from several packages parses the environment once.
//
//	type Config struct {
//	    Addr     string     `env:"FIELDCHECK_ADDR" envDefault:":8080"`
//	    LogLevel slog.Level `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Besides basic kinds and time.Duration, any encoding.TextUnmarshaler such as
// slog.Level can be used as a field type.
package config
