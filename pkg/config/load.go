package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When env file paths are
// given, the first one that loads wins; otherwise a best-effort default .env
// is tried. Missing files are not an error — system environment variables
// always apply.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using system environment variables")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loadable", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		return loadFromEnv()
	}

	logger.Warn("no usable environment file found, using system environment variables")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Info("app config loaded",
		"env", cfg.Env,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"log_format", cfg.Log.Format,
		"eur_ron_rate", cfg.Exchange.EurRonRate,
	)
	return &cfg, nil
}
