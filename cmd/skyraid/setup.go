package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// session is everything a host needs to start the game.
type session struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger
	close   func()
}

// options are the global flags in one place.
type options struct {
	fps     int
	seed    int64
	debug   bool
	config  string
	logFile string
}

func globalOptions() options {
	return options{
		fps:     flagFPS,
		seed:    flagSeed,
		debug:   flagDebug,
		config:  flagConfig,
		logFile: flagLogFile,
	}
}

// bootstrap loads the configuration and opens the logger. Logs go to the
// --log-file if set, otherwise to fallback. Callers must call close.
func bootstrap(opts options, fallback io.Writer) (*session, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}

	out, closeLog, err := openLogOutput(opts.logFile, fallback)
	if err != nil {
		return nil, err
	}

	logger := newLogger(out, opts.debug)
	rt := runtimeConfig(cfg, opts)
	logger.Debug("configuration loaded", "path", opts.config, "screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height), "tps", rt.TickRate)

	return &session{cfg: cfg, runtime: rt, logger: logger, close: closeLog}, nil
}

// runtimeConfig derives host settings from the config and flags.
// The screen size is filled in by the host.
func runtimeConfig(cfg config.Config, opts options) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = cfg.Screen.FPS
	if opts.fps > 0 {
		rt.TickRate = opts.fps
	}
	rt.Seed = opts.seed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.Debug = opts.debug
	return rt
}

// newLogger creates the application logger.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyraid",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogOutput opens path for appending, or returns fallback if path is empty.
func openLogOutput(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}, nil
}
