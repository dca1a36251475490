package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagekit/internal/config"
	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/preferences"
	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings *config.Settings
	Logger   ports.Logger
	Store    ports.PreferenceStore

	closers []io.Closer
}

// newAppContext loads settings, builds the logger and opens the preference
// store. Messages logged before the real logger exists are buffered and
// replayed into it.
func newAppContext(ctx context.Context, flags *rootFlags, stderr io.Writer, interactive bool) (*AppContext, error) {
	startup := logging.NewStartupLogger(0)

	settings, err := config.Load(ctx, flags.configPath, startup)
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Fix the configuration file or pass another one with --config.")
	}

	app := &AppContext{Settings: settings}

	logger, err := app.buildLogger(flags, stderr, interactive)
	if err != nil {
		return nil, newCommandError("start", "opening log", err, "Check log_file and log_level in your configuration.")
	}
	app.Logger = logger
	startup.Flush(logger)

	store, err := preferences.NewFileStore(settings.PreferencesPath)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "opening preferences", err, fmt.Sprintf("Check or remove %s.", settings.PreferencesPath))
	}
	app.Store = store

	logger.Debug(ctx, "application ready",
		"config", settings.Source,
		"preferences", settings.PreferencesPath,
	)

	return app, nil
}

// buildLogger writes to the log file by default. Verbose non-interactive
// commands log human readable output to stderr instead; the terminal page owns
// the screen so it never logs there.
func (a *AppContext) buildLogger(flags *rootFlags, stderr io.Writer, interactive bool) (ports.Logger, error) {
	level := a.Settings.LogLevel
	if flags.verbose {
		level = "debug"
	}

	if flags.verbose && !interactive {
		return logging.New(logging.Options{Writer: stderr, Level: level, HumanReadable: true, Layer: "cli"})
	}

	if a.Settings.LogFile == "" {
		return logging.NewNoOpLogger(), nil
	}

	if err := os.MkdirAll(filepath.Dir(a.Settings.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(a.Settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := logging.New(logging.Options{Writer: file, Level: level, Layer: "cli"})
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	a.closers = append(a.closers, file)
	return logger, nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger scoped to the command.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("component", component)
}

// Close releases the log file.
func (a *AppContext) Close() {
	for _, closer := range a.closers {
		_ = closer.Close()
	}
	a.closers = nil
}
