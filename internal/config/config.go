package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvURL   = "YOLINK_URL"
	EnvToken = "YOLINK_TOKEN"
)

// Config holds the hub connection settings. It is read once at startup and
// threaded into the client rather than consulted globally.
type Config struct {
	URL   string
	Token string
}

// MissingEnvError lists every required environment variable that was unset,
// so the caller can name them all in one diagnostic.
type MissingEnvError struct {
	Vars []string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Vars, ", ")
}

// Load reads hub settings from the environment. A .env file in the working
// directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	viper.AutomaticEnv()

	cfg := &Config{
		URL:   viper.GetString(EnvURL),
		Token: viper.GetString(EnvToken),
	}

	var missing []string
	if cfg.URL == "" {
		missing = append(missing, EnvURL)
	}
	if cfg.Token == "" {
		missing = append(missing, EnvToken)
	}
	if len(missing) > 0 {
		return nil, &MissingEnvError{Vars: missing}
	}

	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return cfg, nil
}
