// Package initializer wires process-level dependencies: the structured
// logger, the live collaborators and the account service.
package initializer

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fintech-ro/bancar/pkg/config"
)

// SetupLogger builds a slog.Logger on top of a charmbracelet handler styled
// per log level, installs it as the process default and returns it.
func SetupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()

	levelStyles := map[log.Level]struct {
		label string
		color lipgloss.AdaptiveColor
	}{
		log.InfoLevel:  {"INFO", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
		log.WarnLevel:  {"WARN", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
		log.ErrorLevel: {"ERROR", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
		log.DebugLevel: {"DEBUG", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
	}
	for level, s := range levelStyles {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(s.label).
			Bold(true).
			Padding(0, 1).
			Foreground(s.color)
	}

	formatter := log.TextFormatter
	if cfg != nil && cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	opts := log.Options{
		ReportTimestamp: true,
		Formatter:       formatter,
	}
	if cfg != nil {
		opts.Level = log.Level(cfg.Level)
		opts.Prefix = cfg.Prefix
		opts.TimeFormat = cfg.TimeFormat
	}

	handler := log.NewWithOptions(os.Stdout, opts)
	handler.SetStyles(styles)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
