package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	HostPaths      []string // hcl and yaml files or directories
	OutDir         string
	PropertiesPath string // optional dotenv file of build properties

	LogFormat string
	LogLevel  string
	Workers   int
	CacheSize int
	Debounce  time.Duration
}

// Defaults used when the corresponding Config field is left zero.
const (
	DefaultOutDir    = "snapshots"
	DefaultWorkers   = 5
	DefaultCacheSize = 16
	DefaultDebounce  = 200 * time.Millisecond
)

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.HostPaths) == 0 {
		return nil, errors.New("at least one host path is required")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers must be a positive number")
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheSize < 0 {
		return nil, errors.New("cache-size must be a positive number")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if _, err := parseLogFormat(cfg.LogFormat); err != nil {
		return nil, err
	}

	return &cfg, nil
}
