package app

import (
	"io"
	"log/slog"

	"github.com/vk/eratosgo/internal/console"
	"github.com/vk/eratosgo/internal/prompt"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	sink     console.Sink
	prompter *prompt.Prompter
	logger   *slog.Logger
	config   *Config
}

// NewApp wires an App that reads answers from inR, draws on outW and logs
// to logW. The sink is chosen from cfg.ColorMode.
func NewApp(inR io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	sink := console.New(outW, cfg.ColorMode)
	logger.Debug("Console sink selected.", "mode", cfg.ColorMode, "sink", sinkName(sink))

	return newApp(outW, sink, prompt.New(inR, outW), logger, cfg)
}

func newApp(outW io.Writer, sink console.Sink, prompter *prompt.Prompter, logger *slog.Logger, cfg *Config) *App {
	return &App{
		outW:     outW,
		sink:     sink,
		prompter: prompter,
		logger:   logger,
		config:   cfg,
	}
}

func sinkName(s console.Sink) string {
	switch s.(type) {
	case *console.Terminal:
		return "terminal"
	case *console.Plain:
		return "plain"
	default:
		return "custom"
	}
}
