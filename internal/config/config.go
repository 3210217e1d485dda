package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/adrg/xdg"

	"pagegrid/ui/theme"
)

var (
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "pagegrid"
	DefaultConfigName = "pagegrid"
	DefaultLogName    = "pagegrid.log"
	EnvPrefix         = "pagegrid"
)

// Config is the host process configuration.
type Config struct {
	Headless bool   `mapstructure:"headless"`
	Hz       int    `mapstructure:"hz"`
	Ticks    uint64 `mapstructure:"ticks"`
	// Layout is a page document path; empty uses the built-in pages.
	Layout string `mapstructure:"layout"`
	// Theme overrides every page palette when set.
	Theme     string `mapstructure:"theme"`
	StartPage string `mapstructure:"start_page"`
	// Settle delays are in milliseconds.
	SettleMs        int    `mapstructure:"settle_ms"`
	ConfirmSettleMs int    `mapstructure:"confirm_settle_ms"`
	LogLevel        string `mapstructure:"log_level"`
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.Hz <= 0 {
		return fmt.Errorf("%w: hz must be positive, got %d", errConfigInvalid, c.Hz)
	}
	if c.SettleMs < 0 || c.ConfirmSettleMs < 0 {
		return fmt.Errorf("%w: settle delays must not be negative", errConfigInvalid)
	}
	if c.Theme != "" {
		if _, err := theme.Lookup(c.Theme); err != nil {
			return errors.Join(errConfigInvalid, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. Empty means info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.Join(errConfigInvalid, err)
	}
	return level, nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file, for modes
// where the terminal belongs to the UI.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

// ConsoleLoggerInit sets up the slog global handler to write to w.
func ConsoleLoggerInit(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
