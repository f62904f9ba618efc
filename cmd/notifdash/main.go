// Command notifdash is a terminal dashboard for browsing and triaging an
// in-memory notification inbox.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nhle/notifdash/internal/app"
	"github.com/nhle/notifdash/internal/dashboard"
	"github.com/nhle/notifdash/internal/logging"
	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/seed"
	"github.com/nhle/notifdash/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options are the flags that are not config keys.
type options struct {
	configPath  string
	writeConfig bool
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"seed":      "seed.path",
	"store":     "store.driver",
	"page-size": "display.page_size",
	"view":      "display.view_mode",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// parseConfig parses args and loads the config file with the flags layered
// on top.
func parseConfig(args []string, out io.Writer) (*model.AppConfig, options, error) {
	var opts options

	fs := pflag.NewFlagSet("notifdash", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.configPath, "config", model.DefaultConfigPath(), "path to the YAML config file")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "write the effective config to --config and exit")
	fs.String("seed", "", "YAML seed file replacing the built-in notifications")
	fs.String("store", model.StoreDriverMemory, "session store driver (memory or sqlite)")
	fs.Int("page-size", 6, "notifications per page")
	fs.String("view", string(model.ViewModeList), "initial view mode (list or grid)")
	fs.String("log-file", "", "log file path")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	v := viper.New()
	for name, key := range flagKeys {
		// Unchanged flags are ignored by viper, so file values still win
		// over flag defaults.
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, opts, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	cfg, err := model.LoadConfigWith(v, opts.configPath)
	if err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, opts, err := parseConfig(args, out)
	if err != nil {
		return err
	}

	if opts.writeConfig {
		if err := model.SaveConfig(opts.configPath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", opts.configPath)
		return nil
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer closer.Close()

	mgr, err := newManager(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}
	defer func() {
		if err := mgr.CloseAll(); err != nil {
			logger.Warn().Err(err).Msg("closing sessions")
		}
	}()

	root, err := app.New(ctx, mgr, app.Options{Logger: logger})
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}

	logger.Info().
		Str("store", cfg.Store.Driver).
		Int("page_size", cfg.Display.PageSize).
		Str("session", root.SessionID()).
		Msg("starting")

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error().Err(err).Msg("program exited")
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newManager loads the seed dataset and builds the session manager that
// every dashboard session is created from.
func newManager(cfg *model.AppConfig, logger zerolog.Logger) (*session.Manager, error) {
	records := seed.Default()
	if cfg.Seed.Path != "" {
		loaded, err := seed.LoadFile(cfg.Seed.Path)
		if err != nil {
			return nil, err
		}
		records = loaded
	}

	viewMode, err := model.ParseViewMode(cfg.Display.ViewMode)
	if err != nil {
		return nil, err
	}

	return session.NewManager(session.Config{
		Factory: session.DriverFactory(cfg.Store.Driver),
		Records: records,
		Options: []dashboard.Option{
			dashboard.WithPageSize(cfg.Display.PageSize),
			dashboard.WithViewMode(viewMode),
		},
		Logger: logger,
	}), nil
}
