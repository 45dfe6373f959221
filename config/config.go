// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads process configuration for sketch tools.
//
// Values come from SKETCH_* environment variables, with defaults, and may
// be overlaid by a YAML file. Values present in the file take precedence
// over the environment. The result is validated before it is returned.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/storage"
	"github.com/gogpu/sketch/surface"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SKETCH"

// ErrInvalid wraps a failed validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the configuration of a sketch session and its storage.
type Config struct {
	Width          int    `envconfig:"WIDTH" default:"800" yaml:"width" validate:"gt=0,lte=16384"`
	Height         int    `envconfig:"HEIGHT" default:"600" yaml:"height" validate:"gt=0,lte=16384"`
	Storage        string `envconfig:"STORAGE" default:"memory" yaml:"storage" validate:"oneof=memory file sqlite"`
	DSN            string `envconfig:"DSN" yaml:"dsn" validate:"required_unless=Storage memory"`
	CollectionKey  string `envconfig:"COLLECTION_KEY" default:"paintingAppPages" yaml:"collection_key" validate:"required"`
	HistoryLimit   int    `envconfig:"HISTORY_LIMIT" default:"0" yaml:"history_limit" validate:"gte=0"`
	ThumbnailWidth int    `envconfig:"THUMBNAIL_WIDTH" default:"160" yaml:"thumbnail_width" validate:"gt=0"`
	CacheSize      int    `envconfig:"CACHE_SIZE" default:"8" yaml:"cache_size" validate:"gte=0"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info" yaml:"log_level" validate:"oneof=debug info warn error"`

	// Settings are the initial tool settings. Only the file sets them;
	// fields it omits keep their defaults.
	Settings *sketch.Settings `ignored:"true" yaml:"settings" validate:"-"`
}

// Load reads the environment and, when path is not empty, the YAML file at
// path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if path != "" {
		if err := cfg.overlay(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Settings == nil {
		defaults := sketch.DefaultSettings()
		c.Settings = &defaults
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

// Validate checks every field, including the tool settings if present.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(e.Field()), e.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Settings != nil {
		if err := c.Settings.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// OpenStorage opens the configured key-value store.
func (c *Config) OpenStorage(ctx context.Context) (storage.KV, error) {
	return storage.Open(ctx, c.Storage, c.DSN)
}

// SessionOptions returns the options that apply c to a new session. kv is
// the store returned by OpenStorage.
func (c *Config) SessionOptions(kv storage.KV) []sketch.SessionOption {
	opts := []sketch.SessionOption{
		sketch.WithSize(c.Width, c.Height),
		sketch.WithStorage(kv),
		sketch.WithCollectionKey(c.CollectionKey),
		sketch.WithHistoryLimit(c.HistoryLimit),
		sketch.WithThumbnailWidth(c.ThumbnailWidth),
		sketch.WithSurfaceOptions(surface.WithCacheSize(c.CacheSize)),
	}
	if c.Settings != nil {
		opts = append(opts, sketch.WithSettings(*c.Settings))
	}
	return opts
}
