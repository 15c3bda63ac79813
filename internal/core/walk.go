// Package core provides the runtime tier of the walkthrough engine: the
// Walk runner, the per-step Runtime handed to step implementations, and the
// pluggable component interfaces (Narrator, Recorder, Publisher, Logger).
//
// Execution is sequential and fully synchronous: one step at a time, in
// config order, on the caller's goroutine. The steps themselves are the
// concurrency lesson; the engine stays out of the way.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/memsemx/internal/primitives"
)

// LineKind classifies a narrated line so narrators can choose a prefix
// glyph. The kinds mirror the markers the walkthrough prints: creation and
// success, storage release, neutral commentary, and caveats.
type LineKind int

const (
	KindText LineKind = iota
	KindOK
	KindFreed
	KindInfo
	KindWarn
)

// Narrator renders walkthrough commentary. Implementations decide the
// medium (console, test sink); the engine decides the content.
type Narrator interface {
	// Begin opens the walkthrough with its title banner.
	Begin(title string)
	// Section opens a demonstration step.
	Section(title string)
	// Line renders one narrated line of the given kind.
	Line(kind LineKind, text string)
	// End closes the walkthrough with a summary line.
	End(text string)
}

// Recorder persists transcripts of finished walks.
type Recorder interface {
	Save(ctx context.Context, transcript Transcript) error
	Load(ctx context.Context, runID string) (Transcript, error)
}

// Publisher receives a StepEvent after each step completes.
type Publisher interface {
	Publish(ctx context.Context, event StepEvent) error
	Close() error
}

// Logger is the engine's diagnostic log interface. It is dependency-free
// so callers can back it with any structured logger; args are alternating
// key/value pairs, slog-style.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option applies configuration to Walk via functional options pattern.
type Option func(*Walk)

// Walk is a runnable sequence of demonstration steps.
// Single-goroutine use: construct, Run once, inspect the transcript.
type Walk struct {
	config   primitives.WalkConfig
	catalog  *Catalog
	narrator Narrator
	recorder Recorder
	pub      Publisher
	logger   Logger
	clock    func() time.Time
}

// NewWalk creates a Walk for the given configuration. Without options the
// walk narrates to nothing, records nothing, and resolves steps against an
// empty catalog.
func NewWalk(config primitives.WalkConfig, opts ...Option) *Walk {
	w := &Walk{
		config:   config,
		catalog:  NewCatalog(),
		narrator: nopNarrator{},
		logger:   nopLogger{},
		clock:    time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Config returns the walk's configuration.
func (w *Walk) Config() primitives.WalkConfig {
	return w.config
}

// Run validates the configuration and executes every step in order,
// narrating as it goes. It returns the transcript of what ran; on error
// the transcript covers the steps completed so far.
//
// A step failure, an unknown step name, or context cancellation aborts the
// walk. If a Recorder is configured the transcript is saved after the last
// step.
func (w *Walk) Run(ctx context.Context) (Transcript, error) {
	if err := w.config.Validate(); err != nil {
		return Transcript{}, fmt.Errorf("invalid walk config: %w", err)
	}

	transcript := Transcript{
		RunID:         uuid.NewString(),
		WalkID:        w.config.ID,
		Title:         w.config.Title,
		SchemaVersion: primitives.TranscriptSchemaVersion,
		ConfigVersion: primitives.ComputeVersion(&w.config),
		StartedAt:     w.clock(),
	}

	w.logger.Debug("walk starting",
		"walk", w.config.ID, "run", transcript.RunID, "steps", len(w.config.Steps))
	w.narrator.Begin(w.config.Title)

	for i, sc := range w.config.Steps {
		if err := ctx.Err(); err != nil {
			return transcript, fmt.Errorf("walk %q interrupted before step %d: %w", w.config.ID, i, err)
		}

		fn, ok := w.catalog.Lookup(sc.Step)
		if !ok {
			return transcript, fmt.Errorf("step %d: %w: %q", i, ErrUnknownStep, sc.Step)
		}

		w.narrator.Section(sc.SectionTitle())
		record := StepRecord{
			Step:      sc.Step,
			Title:     sc.SectionTitle(),
			Index:     i,
			StartedAt: w.clock(),
		}
		rt := &Runtime{
			walkID:   w.config.ID,
			config:   sc,
			narrator: w.narrator,
			logger:   w.logger,
			record:   &record,
		}

		stepErr := fn(ctx, rt)
		record.Duration = w.clock().Sub(record.StartedAt)
		transcript.Steps = append(transcript.Steps, record)

		w.publish(ctx, StepEvent{
			RunID:    transcript.RunID,
			WalkID:   w.config.ID,
			Step:     sc.Step,
			Index:    i,
			Duration: record.Duration,
			Err:      errString(stepErr),
		})

		if stepErr != nil {
			w.logger.Error("step failed", "walk", w.config.ID, "step", sc.Step, "err", stepErr)
			return transcript, fmt.Errorf("step %q: %w", sc.Step, stepErr)
		}
	}

	transcript.FinishedAt = w.clock()
	w.narrator.End("All demonstration storage is unreachable now; the garbage collector reclaims it.")

	if w.recorder != nil {
		if err := w.recorder.Save(ctx, transcript); err != nil {
			return transcript, fmt.Errorf("record transcript %q: %w", transcript.RunID, err)
		}
	}

	w.logger.Debug("walk finished",
		"walk", w.config.ID, "run", transcript.RunID, "duration", transcript.FinishedAt.Sub(transcript.StartedAt))
	return transcript, nil
}

// publish forwards a step event if a publisher is configured. Publish
// errors are logged, not fatal: events are advisory.
func (w *Walk) publish(ctx context.Context, event StepEvent) {
	if w.pub == nil {
		return
	}
	if err := w.pub.Publish(ctx, event); err != nil {
		w.logger.Warn("publish step event", "step", event.Step, "err", err)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// nopNarrator discards all narration.
type nopNarrator struct{}

func (nopNarrator) Begin(string)          {}
func (nopNarrator) Section(string)        {}
func (nopNarrator) Line(LineKind, string) {}
func (nopNarrator) End(string)            {}

// nopLogger discards all diagnostics.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
