package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MarkupPath     string // markup files to compile
	ComponentsPath string // manifest files + renderer packs

	LogFormat string
	LogLevel  string
	Strict    bool
	Workers   int
	Indent    bool
	Dump      bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.MarkupPath == "" {
		return nil, errors.New("MarkupPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, errors.New("Workers must be at least 1")
	}

	return &cfg, nil
}
