package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

type SeedConfig struct {
	DataDir string
}

// Load reads configuration from a local .env file (if present) and the
// process environment. Environment variables are prefixed with EVENTHUB,
// e.g. EVENTHUB_AUTH_JWT_SECRET overrides auth.jwt_secret.
func Load() (*Config, error) {
	// Best effort; absence of a .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EVENTHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:4000")
	v.SetDefault("database.path", "data/eventhub.db")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("seed.data_dir", "data")

	cfg := &Config{
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Auth: AuthConfig{
			JWTSecret:     v.GetString("auth.jwt_secret"),
			TokenTTLHours: v.GetInt("auth.token_ttl_hours"),
		},
		Seed: SeedConfig{
			DataDir: v.GetString("seed.data_dir"),
		},
	}
	return cfg, nil
}
