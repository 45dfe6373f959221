// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/shape"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Storage != "memory" || cfg.CollectionKey != "paintingAppPages" {
		t.Errorf("storage = %q key = %q", cfg.Storage, cfg.CollectionKey)
	}
	if cfg.Settings != nil {
		t.Error("Settings should be nil without a file")
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v", cfg.Level())
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("SKETCH_WIDTH", "320")
	t.Setenv("SKETCH_STORAGE", "sqlite")
	t.Setenv("SKETCH_DSN", filepath.Join(t.TempDir(), "pages.db"))
	t.Setenv("SKETCH_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 320 || cfg.Storage != "sqlite" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadFileOverridesEnvironment(t *testing.T) {
	t.Setenv("SKETCH_WIDTH", "320")
	path := writeFile(t, `
width: 640
history_limit: 50
settings:
  tool: shape
  shape: star
  width: 3
  style: dashed
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 600 || cfg.HistoryLimit != 50 {
		t.Errorf("cfg = %+v", cfg)
	}
	st := cfg.Settings
	if st == nil {
		t.Fatal("Settings not loaded")
	}
	if st.Tool != sketch.ToolShape || st.Shape != shape.Star || st.Width != 3 || st.Style != sketch.StyleDashed {
		t.Errorf("settings = %+v", st)
	}
	if st.Color != "#000000" || st.FontSize != 16 {
		t.Errorf("omitted settings lost their defaults: %+v", st)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{"zero width", map[string]string{"SKETCH_WIDTH": "0"}, ""},
		{"unknown backend", map[string]string{"SKETCH_STORAGE": "redis"}, ""},
		{"file without dsn", map[string]string{"SKETCH_STORAGE": "file"}, ""},
		{"bad log level", map[string]string{"SKETCH_LOG_LEVEL": "loud"}, ""},
		{"bad settings", nil, "settings:\n  color: blue\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}
	if _, err := Load(writeFile(t, "width: [")); err == nil {
		t.Error("Load(malformed) should fail")
	}
	t.Setenv("SKETCH_WIDTH", "wide")
	if _, err := Load(""); err == nil {
		t.Error("Load() with a non-numeric width should fail")
	}
}

func TestSessionOptions(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "width: 64\nheight: 48\nsettings:\n  tool: eraser\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	kv, err := cfg.OpenStorage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { kv.Close() })

	s, err := sketch.New(cfg.SessionOptions(kv)...)
	if err != nil {
		t.Fatalf("sketch.New() error = %v", err)
	}
	if b := s.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("Bounds() = %v", b)
	}
	if s.Settings().Tool != sketch.ToolEraser {
		t.Errorf("tool = %v, want eraser", s.Settings().Tool)
	}
}
