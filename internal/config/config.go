// Package config loads pipeline settings from an optional scraper.yaml,
// SCRAPER_* environment variables and bound command-line flags, in that
// ascending order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Viper keys. CLI flags bind to these so flag values win over file and
// environment values.
const (
	KeyDatasetRoot     = "dataset_root"
	KeyTxtDir          = "txt_dir"
	KeyGamblingFile    = "gambling_sites_file"
	KeyNonGamblingFile = "non_gambling_sites_file"
	KeyNavTimeout      = "nav_timeout"
	KeyProbeTimeout    = "probe_timeout"
	KeyConcurrency     = "concurrency"
	KeyHeadless        = "headless"
	KeyLogLevel        = "log_level"
	KeyLogFile         = "log_file"
)

// Config carries every knob the pipeline commands read.
type Config struct {
	DatasetRoot     string
	TxtDir          string
	GamblingFile    string
	NonGamblingFile string
	NavTimeout      time.Duration
	ProbeTimeout    time.Duration
	Concurrency     int
	Headless        bool
	LogLevel        string
	LogFile         string
}

func setDefaults() {
	viper.SetDefault(KeyDatasetRoot, "datasets")
	viper.SetDefault(KeyTxtDir, ".")
	viper.SetDefault(KeyGamblingFile, "")
	viper.SetDefault(KeyNonGamblingFile, "")
	viper.SetDefault(KeyNavTimeout, 30*time.Second)
	viper.SetDefault(KeyProbeTimeout, 15*time.Second)
	viper.SetDefault(KeyConcurrency, 4)
	viper.SetDefault(KeyHeadless, true)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFile, "app.log")
}

// Load reads the configuration. A missing config file is fine; a broken
// one is not.
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName("scraper")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("scraper")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		DatasetRoot:     viper.GetString(KeyDatasetRoot),
		TxtDir:          viper.GetString(KeyTxtDir),
		GamblingFile:    viper.GetString(KeyGamblingFile),
		NonGamblingFile: viper.GetString(KeyNonGamblingFile),
		NavTimeout:      viper.GetDuration(KeyNavTimeout),
		ProbeTimeout:    viper.GetDuration(KeyProbeTimeout),
		Concurrency:     viper.GetInt(KeyConcurrency),
		Headless:        viper.GetBool(KeyHeadless),
		LogLevel:        viper.GetString(KeyLogLevel),
		LogFile:         viper.GetString(KeyLogFile),
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return cfg, nil
}
