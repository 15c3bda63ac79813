// Command demo runs the standard memory-semantics walkthrough on the
// console: nine narrated steps, executed once, in sequence.
//
// Configuration comes from the environment:
//
//	MEMSEMX_CONFIG          path to a YAML walk config (default: built-in standard walk)
//	MEMSEMX_TRANSCRIPT_DIR  directory for transcript files (default: none recorded)
//	MEMSEMX_FORMAT          transcript format, "json" or "yaml" (default: json)
//	MEMSEMX_PLAIN           "true" for ASCII-only narration
//	MEMSEMX_VERBOSE         "true" for engine diagnostics on stderr
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/comalice/memsemx"
	"github.com/comalice/memsemx/internal/production"
)

type config struct {
	ConfigPath    string `env:"MEMSEMX_CONFIG"`
	TranscriptDir string `env:"MEMSEMX_TRANSCRIPT_DIR"`
	Format        string `env:"MEMSEMX_FORMAT" envDefault:"json"`
	Plain         bool   `env:"MEMSEMX_PLAIN"`
	Verbose       bool   `env:"MEMSEMX_VERBOSE"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	walkConfig, err := loadWalkConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}

	opts := []memsemx.Option{
		memsemx.WithNarrator(&production.ConsoleNarrator{W: os.Stdout, Plain: cfg.Plain}),
	}

	if cfg.TranscriptDir != "" {
		recorder, err := newRecorder(cfg.Format, cfg.TranscriptDir)
		if err != nil {
			return err
		}
		opts = append(opts, memsemx.WithRecorder(recorder))
	}

	if cfg.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, memsemx.WithLogger(production.NewSlogLogger(slog.New(handler))))
	}

	// Buffer sized for the whole walk so no event is dropped.
	events := make(chan memsemx.StepEvent, len(walkConfig.Steps))
	publisher := production.NewChannelPublisher(events)
	opts = append(opts, memsemx.WithPublisher(publisher))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	transcript, err := memsemx.New(walkConfig, opts...).Run(ctx)
	if err != nil {
		return err
	}
	if err := publisher.Close(); err != nil {
		return err
	}

	var total time.Duration
	steps := 0
	for event := range events {
		total += event.Duration
		steps++
	}
	fmt.Printf("\nrun %s: %d steps in %s\n", transcript.RunID, steps, total.Round(time.Microsecond))
	if cfg.TranscriptDir != "" {
		fmt.Printf("transcript recorded under %s\n", cfg.TranscriptDir)
	}
	return nil
}

// loadWalkConfig reads a YAML walk config, or falls back to the built-in
// standard walk when no path is given.
func loadWalkConfig(path string) (memsemx.WalkConfig, error) {
	if path == "" {
		return memsemx.StandardWalk(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return memsemx.WalkConfig{}, fmt.Errorf("read %s: %w", path, err)
	}

	var walkConfig memsemx.WalkConfig
	if err := yaml.Unmarshal(data, &walkConfig); err != nil {
		return memsemx.WalkConfig{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := walkConfig.Validate(); err != nil {
		return memsemx.WalkConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return walkConfig, nil
}

func newRecorder(format, dir string) (memsemx.Recorder, error) {
	switch format {
	case "json":
		return production.NewJSONRecorder(dir)
	case "yaml":
		return production.NewYAMLRecorder(dir)
	default:
		return nil, fmt.Errorf("unknown transcript format %q (want json or yaml)", format)
	}
}
