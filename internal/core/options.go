// Package core provides the runtime tier of the walkthrough engine.
// Options for configuring Walk instances.
package core

import "time"

// WithCatalog configures the Walk with the step catalog to resolve step
// names against.
func WithCatalog(c *Catalog) Option {
	return func(w *Walk) {
		w.catalog = c
	}
}

// WithNarrator configures the Walk with a custom Narrator.
func WithNarrator(n Narrator) Option {
	return func(w *Walk) {
		w.narrator = n
	}
}

// WithRecorder configures the Walk with a transcript Recorder.
func WithRecorder(r Recorder) Option {
	return func(w *Walk) {
		w.recorder = r
	}
}

// WithPublisher configures the Walk with a step-event Publisher.
func WithPublisher(p Publisher) Option {
	return func(w *Walk) {
		w.pub = p
	}
}

// WithLogger configures the Walk with a diagnostic Logger.
func WithLogger(l Logger) Option {
	return func(w *Walk) {
		w.logger = l
	}
}

// WithClock overrides the time source. Used by tests for deterministic
// transcript timestamps.
func WithClock(clock func() time.Time) Option {
	return func(w *Walk) {
		w.clock = clock
	}
}
