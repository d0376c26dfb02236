package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"portanav/internal/config"
	"portanav/internal/locale"
	"portanav/internal/logging"
	"portanav/internal/power"
	"portanav/internal/screens"
	"portanav/internal/snapshot"
	"portanav/internal/trace"
	"portanav/internal/ui"
)

var (
	cfgFile     string
	logFile     string
	logLevel    string
	snapshotDir string
	localeFlag  string
	maxDepth    int
)

var rootCmd = &cobra.Command{
	Use:           "portanav",
	Short:         "portanav is a menu shell for a single-display device",
	Long:          `portanav shows a stack of menus and apps under a one-row status bar. esc goes back, tab reaches the status controls, ? lists every key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/portanav/config.toml)")
	f.StringVar(&logFile, "log-file", "", "write logs to this file")
	f.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&snapshotDir, "snapshot-dir", "", "directory for screen snapshots")
	f.StringVar(&localeFlag, "locale", "", "status bar language (en, de)")
	f.IntVar(&maxDepth, "max-depth", 0, "navigation stack depth bound")
}

// loadConfig reads the config file, then applies flags given on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, "", err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, path, err
	}

	applyFlags(cmd, &cfg)
	return cfg, path, cfg.Validate()
}

// applyFlags overlays flags given on the command line onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("snapshot-dir") {
		cfg.Snapshot.Dir = snapshotDir
	}
	if flags.Changed("locale") {
		cfg.Locale = localeFlag
	}
	if flags.Changed("max-depth") {
		cfg.Navigation.MaxDepth = maxDepth
	}
}

// captionsFor resolves the status bar captions: config overrides, then the
// locale catalog.
func captionsFor(cfg config.Config) (ui.Captions, *locale.Catalog, error) {
	cat, err := locale.New(cfg.Locale)
	if err != nil {
		return ui.Captions{}, nil, err
	}
	d := cfg.Display
	override := ui.Captions{
		BackEnabled:  d.BackEnabled,
		BackDisabled: d.BackDisabled,
		DefaultTitle: d.DefaultTitle,
		Camera:       d.Camera,
		Sleep:        d.Sleep,
	}
	return override.Merge(cat.Captions()), cat, nil
}

// reloadedCaptions recomputes captions for a config re-read from disk.
// Command-line flags still win over the file.
func reloadedCaptions(cmd *cobra.Command, cfg config.Config) (ui.Captions, error) {
	applyFlags(cmd, &cfg)
	c, _, err := captionsFor(cfg)
	return c, err
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closer.Close()

	captions, cat, err := captionsFor(cfg)
	if err != nil {
		return err
	}
	if !cat.Supported() {
		logger.Warn("no translations for locale, using English", "locale", cat.Tag(), "available", cat.Languages())
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	rec, err := trace.NewOTLPRecorder(ctx, cfg.Navigation.History)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer scancel()
		if err := rec.Shutdown(sctx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	events := make(chan power.Event, 1)
	sink := &power.LogSink{Logger: logger, Next: &power.ChanSink{Ch: events}}

	router := screens.Register(ui.NewRouter(), screens.Deps{Power: sink, History: rec})
	opts := []ui.ShellOption{
		ui.WithScreens(router),
		ui.WithStackDepth(cfg.Navigation.MaxDepth),
		ui.WithCaptions(captions),
		ui.WithPowerSink(sink),
		ui.WithTracer(rec),
		ui.WithLogger(logger),
	}

	store, err := snapshot.NewStore(cfg.Snapshot.Dir, cfg.Snapshot.Pattern)
	if err != nil {
		logger.Warn("snapshots disabled", "err", err)
	} else {
		opts = append(opts, ui.WithSnapshotter(store))
		if cfg.Snapshot.CopyPath {
			opts = append(opts, ui.WithClipboard(clipboard.WriteAll))
		}
	}

	shell := ui.NewShell(screens.Root(), opts...)
	p := tea.NewProgram(shell, tea.WithAltScreen(), tea.WithContext(ctx))

	go power.Forward(ctx, events, func(ev power.Event) { p.Send(ev) })

	watcher, err := config.NewWatcher(path,
		func(c config.Config) {
			caps, err := reloadedCaptions(cmd, c)
			if err != nil {
				logger.Warn("reload captions", "err", err)
				return
			}
			p.Send(ui.ConfigReloadedMsg{Captions: caps})
		},
		func(err error) { logger.Warn("config watch", "err", err) },
	)
	if err != nil {
		logger.Warn("config watch disabled", "path", path, "err", err)
	} else {
		defer watcher.Close()
	}

	logger.Info("starting", "locale", cat.Tag(), "max_depth", cfg.Navigation.MaxDepth)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	shell.Close()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		charmlog.Error("portanav", "err", err)
		os.Exit(1)
	}
}
