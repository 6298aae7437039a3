package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime knob for the service. Values come from
// environment variables prefixed with AURORA_ and, optionally, a YAML file
// pointed at by CONFIG_PATH; the environment wins over the file.
type Config struct {
	Env          string   // current environment: local, dev, prod
	Addr         string   // HTTP listen address
	DatabasePath string   // path to the SQLite database file
	JWTSecret    string   // HMAC secret for session tokens
	BcryptCost   int      // bcrypt work factor for password hashing
	CookieSecure bool     // mark the auth cookie Secure
	CORSOrigins  []string // origins allowed to call the API with credentials
}

const minJWTSecretLen = 32

// Load reads configuration and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AURORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "local")
	v.SetDefault("addr", ":8080")
	v.SetDefault("database_path", "aurora-rrhh.db")
	v.SetDefault("bcrypt_cost", 12)
	v.SetDefault("cookie_secure", true)
	v.SetDefault("cors_origins", "http://localhost:5173")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Env:          v.GetString("env"),
		Addr:         v.GetString("addr"),
		DatabasePath: v.GetString("database_path"),
		JWTSecret:    v.GetString("jwt_secret"),
		BcryptCost:   v.GetInt("bcrypt_cost"),
		CookieSecure: v.GetBool("cookie_secure"),
		CORSOrigins:  splitOrigins(v.GetString("cors_origins")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("AURORA_JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < minJWTSecretLen {
		return nil, fmt.Errorf("AURORA_JWT_SECRET must be at least %d characters for HMAC-SHA256", minJWTSecretLen)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("bcrypt cost must be between 4 and 14, got %d", cfg.BcryptCost)
	}

	return cfg, nil
}

// MustLoad is Load that panics on error. Intended for use from main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config: " + err.Error())
	}
	return cfg
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
