// Package testutil provides in-memory implementations of the engine's
// pluggable interfaces for use in tests: a narration sink, a transcript
// store, and an event collector. All are single-goroutine, matching how
// walks execute.
package testutil

import (
	"context"
	"fmt"

	"github.com/comalice/memsemx/internal/core"
)

// SinkNarrator records narration calls instead of rendering them.
type SinkNarrator struct {
	Begins   []string
	Sections []string
	Lines    []string
	Ends     []string
}

func (n *SinkNarrator) Begin(title string)                { n.Begins = append(n.Begins, title) }
func (n *SinkNarrator) Section(title string)              { n.Sections = append(n.Sections, title) }
func (n *SinkNarrator) Line(_ core.LineKind, text string) { n.Lines = append(n.Lines, text) }
func (n *SinkNarrator) End(text string)                   { n.Ends = append(n.Ends, text) }

// MemoryRecorder stores transcripts by run ID.
type MemoryRecorder struct {
	Saved map[string]core.Transcript
}

func (r *MemoryRecorder) Save(_ context.Context, transcript core.Transcript) error {
	if r.Saved == nil {
		r.Saved = make(map[string]core.Transcript)
	}
	r.Saved[transcript.RunID] = transcript
	return nil
}

func (r *MemoryRecorder) Load(_ context.Context, runID string) (core.Transcript, error) {
	transcript, ok := r.Saved[runID]
	if !ok {
		return core.Transcript{}, fmt.Errorf("run %q: not found", runID)
	}
	return transcript, nil
}

// CollectPublisher gathers published step events in order.
type CollectPublisher struct {
	Events []core.StepEvent
	Closed bool
}

func (p *CollectPublisher) Publish(_ context.Context, event core.StepEvent) error {
	p.Events = append(p.Events, event)
	return nil
}

func (p *CollectPublisher) Close() error {
	p.Closed = true
	return nil
}

var (
	_ core.Narrator  = (*SinkNarrator)(nil)
	_ core.Recorder  = (*MemoryRecorder)(nil)
	_ core.Publisher = (*CollectPublisher)(nil)
)
