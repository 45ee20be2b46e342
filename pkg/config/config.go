// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import "time"

// Server holds the HTTP listener settings.
type Server struct {
	Host        string        `envconfig:"HOST" default:"0.0.0.0"`
	Port        int           `envconfig:"PORT" default:"3000"`
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
}

// Log holds the structured-logger settings.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"bancar"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// Exchange holds the EUR/RON reference-rate settings served by the live
// provider. Real rate fetching is out of scope; the rate is configured.
type Exchange struct {
	EurRonRate float64 `envconfig:"EUR_RON_RATE" default:"4.97"`
}

// App is the root configuration object.
type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Server   *Server   `envconfig:"SERVER"`
	Log      *Log      `envconfig:"LOG"`
	Exchange *Exchange `envconfig:"EXCHANGE"`
}
