package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader returns a loader. When file is empty the config is looked up as
// pagegrid.yaml under $XDG_CONFIG_HOME/pagegrid and the working directory.
func NewLoader(changes chan<- Config, file string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("headless", false)
	loader.SetDefault("hz", 60)
	loader.SetDefault("ticks", 0)
	loader.SetDefault("layout", "")
	loader.SetDefault("theme", "")
	loader.SetDefault("start_page", "")
	loader.SetDefault("settle_ms", 150)
	loader.SetDefault("confirm_settle_ms", 200)
	loader.SetDefault("log_level", "info")
	loader.SetConfigType("yaml")
	if file != "" {
		loader.SetConfigFile(file)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Watch reloads the file on change and sends the result to the changes
// channel. Changes are dropped while the receiver is busy.
func (cl *Loader) Watch() {
	if cl.changes == nil || cl.ConfigFileUsed() == "" {
		return
	}
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	select {
	case cl.changes <- config:
	default:
		slog.Warn("Dropped config change, receiver busy")
	}
}

// Read loads the config file when present, then env overrides, and validates.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
