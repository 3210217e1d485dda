//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"strings"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"pagegrid/app"
	"pagegrid/hal"
	"pagegrid/internal/buildinfo"
	"pagegrid/internal/config"
	"pagegrid/ui/termview"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "pagegrid",
		Short: "Paged widget grid driven by a 5-way switch",
		Long: `pagegrid - a focus-driven 8x3 widget grid with a 4-row viewport.
Runs in a window by default; --headless drives it from the serial console
on stdin/stdout.`,
		Args: cobra.NoArgs,
		RunE: runDevice,
	}

	tuiCmd = &cobra.Command{
		Use:   "tui",
		Short: "Run the page grid in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	validateCmd = &cobra.Command{
		Use:   "validate <layout.yaml>",
		Short: "Check a page layout file",
		Args:  cobra.ExactArgs(1),
		RunE:  validate,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file path (default $XDG_CONFIG_HOME/pagegrid/pagegrid.yaml)")
	flags.Bool("headless", false, "Run without a window")
	flags.Int("hz", 60, "Frame rate")
	flags.Uint64("ticks", 0, "Stop after N frames in headless mode (0 = run forever)")
	flags.String("layout", "", "Page layout file (default built-in pages)")
	flags.String("theme", "", "Theme for every page: default, red, blue, green")
	flags.String("start-page", "", "Page shown first")
	rootCmd.AddCommand(tuiCmd, validateCmd, versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(cmd *cobra.Command, _ []string) {
	fmt.Fprint(cmd.OutOrStdout(), buildinfo.Long())
}

// loadConfig reads the config file, env and flags. changes receives reloads.
func loadConfig(cmd *cobra.Command, changes chan<- config.Config) (*config.Loader, config.Config, error) {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return nil, config.Config{}, errors.Join(err, errApp)
	}

	loader := config.NewLoader(changes, cfgFile)
	for key, flag := range map[string]string{
		"headless":   "headless",
		"hz":         "hz",
		"ticks":      "ticks",
		"layout":     "layout",
		"theme":      "theme",
		"start_page": "start-page",
	} {
		if err := loader.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, config.Config{}, errors.Join(err, errApp)
		}
	}

	userConfig, err := loader.Read()
	if err != nil {
		return nil, config.Config{}, errors.Join(err, errApp)
	}

	return loader, userConfig, nil
}

func appConfig(userConfig config.Config, themes <-chan string) (app.Config, error) {
	cfg := app.Config{
		Theme:         userConfig.Theme,
		StartPage:     userConfig.StartPage,
		Settle:        uint64(userConfig.SettleMs),
		ConfirmSettle: uint64(userConfig.ConfirmSettleMs),
		Themes:        themes,
	}
	if userConfig.Layout != "" {
		data, err := os.ReadFile(userConfig.Layout)
		if err != nil {
			return app.Config{}, errors.Join(err, errApp)
		}
		cfg.Layout = data
	}

	return cfg, nil
}

func closeLog(closer io.Closer) {
	if err := closer.Close(); err != nil {
		slog.Error("Failed to close log file", slog.String("error", err.Error()))
	}
}

// runDevice runs the emulated device, windowed or headless. Edits to the
// config file's theme are applied live.
func runDevice(cmd *cobra.Command, _ []string) error {
	changes := make(chan config.Config, 1)
	loader, userConfig, err := loadConfig(cmd, changes)
	if err != nil {
		return err
	}
	level, _ := userConfig.Level()
	config.ConsoleLoggerInit(os.Stderr, level)

	themes := make(chan string, 1)
	cfg, err := appConfig(userConfig, themes)
	if err != nil {
		return err
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	loader.Watch()
	slog.Info("Starting pagegrid", slog.String("version", buildinfo.Short()),
		slog.String("config", loader.Path()), slog.Bool("headless", userConfig.Headless))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return config.ForwardThemes(gctx, changes, themes, userConfig.Theme)
	})

	if userConfig.Headless {
		g.Go(func() error {
			defer cancel()
			err := hal.RunHeadless(gctx, newApp, hal.HeadlessConfig{
				Enabled: true,
				Hz:      userConfig.Hz,
				Ticks:   userConfig.Ticks,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		})
	} else {
		// ebiten owns the main goroutine until the window closes.
		errWindow := hal.RunWindow(newApp)
		cancel()
		if errWindow != nil {
			_ = g.Wait()

			return errors.Join(errWindow, errApp)
		}
	}

	if err := g.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// runTUI runs the grid in the terminal. The terminal belongs to the UI, so
// logs go to a file under the config home.
func runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.Join(errors.New("tui needs a terminal on stdout"), errApp)
	}

	changes := make(chan config.Config, 1)
	loader, userConfig, err := loadConfig(cmd, changes)
	if err != nil {
		return err
	}
	level, _ := userConfig.Level()
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}
	defer closeLog(logFile)

	themes := make(chan string, 1)
	cfg, err := appConfig(userConfig, themes)
	if err != nil {
		return err
	}

	h := termview.NewHAL()
	sys, err := app.Build(h, cfg)
	if err != nil {
		return errors.Join(err, errApp)
	}
	loader.Watch()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return config.ForwardThemes(gctx, changes, themes, userConfig.Theme)
	})
	g.Go(func() error {
		defer cancel()
		program := tea.NewProgram(termview.New(sys, h, userConfig.Hz), tea.WithAltScreen(), tea.WithContext(gctx))
		final, err := program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		if m, ok := final.(interface{ Err() error }); ok {
			return m.Err()
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// validate builds a layout file against the stock actions and lists its pages.
func validate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Join(err, errApp)
	}

	h := hal.NewWith(nil, io.Discard)
	sys, err := app.Build(h, app.Config{Layout: data})
	if err != nil {
		return errors.Join(err, errApp)
	}

	names := sys.Manager().PageNames()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pages: %s\n", args[0], len(names), strings.Join(names, ", "))

	return nil
}
