// Command sketch replays a YAML action script against a drawing session
// and writes the resulting page as PNG.
//
// Usage:
//
//	sketch -script actions.yaml -out page.png
//	sketch -config sketch.yaml -list
//
// Configuration is read from SKETCH_* environment variables and the
// optional -config file; see package config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sketch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file")
		scriptPath = fs.String("script", "", "YAML action script to replay")
		output     = fs.String("out", "page.png", "output PNG file")
		list       = fs.Bool("list", false, "list saved pages and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	sketch.SetLogger(logger)
	defer sketch.SetLogger(nil)

	kv, err := cfg.OpenStorage(ctx)
	if err != nil {
		return err
	}
	defer kv.Close()

	warnings := 0
	opts := append(cfg.SessionOptions(kv), sketch.WithNotifier(func(n sketch.Notice) {
		if n.Level == sketch.LevelWarn {
			warnings++
		}
		fmt.Fprintln(stderr, n)
	}))
	s, err := sketch.New(opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	if *list {
		names, err := s.SavedNames(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if *scriptPath != "" {
		n, err := replay(ctx, s, *scriptPath)
		if err != nil {
			return err
		}
		logger.Info("script replayed", "steps", n, "warnings", warnings)
	}
	return writePNG(s, *output)
}

func replay(ctx context.Context, s *sketch.Session, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc, err := ParseScript(f)
	if err != nil {
		return 0, err
	}
	for i, st := range sc.Steps {
		actions, err := st.actions(s.Settings())
		if err != nil {
			return i, fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, a := range actions {
			if err := s.Dispatch(ctx, a); err != nil {
				return i, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return len(sc.Steps), nil
}

func writePNG(s *sketch.Session, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.EncodePNG(f)
}
