// Tests for the Walk runner: ordering, transcript contents, error paths,
// publisher and recorder wiring.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/comalice/memsemx/internal/primitives"
)

// sinkNarrator collects narration for assertions.
type sinkNarrator struct {
	begins   []string
	sections []string
	lines    []string
	ends     []string
}

func (n *sinkNarrator) Begin(title string)           { n.begins = append(n.begins, title) }
func (n *sinkNarrator) Section(title string)         { n.sections = append(n.sections, title) }
func (n *sinkNarrator) Line(_ LineKind, text string) { n.lines = append(n.lines, text) }
func (n *sinkNarrator) End(text string)              { n.ends = append(n.ends, text) }

// memoryRecorder stores transcripts by run ID.
type memoryRecorder struct {
	saved map[string]Transcript
	err   error
}

func (r *memoryRecorder) Save(_ context.Context, tr Transcript) error {
	if r.err != nil {
		return r.err
	}
	if r.saved == nil {
		r.saved = make(map[string]Transcript)
	}
	r.saved[tr.RunID] = tr
	return nil
}

func (r *memoryRecorder) Load(_ context.Context, runID string) (Transcript, error) {
	tr, ok := r.saved[runID]
	if !ok {
		return Transcript{}, fmt.Errorf("run %q: not found", runID)
	}
	return tr, nil
}

// collectPublisher gathers published events.
type collectPublisher struct {
	events []StepEvent
	err    error
}

func (p *collectPublisher) Publish(_ context.Context, ev StepEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func (p *collectPublisher) Close() error { return nil }

func twoStepConfig() primitives.WalkConfig {
	return primitives.WalkConfig{
		ID:    "test-walk",
		Title: "Test Walk",
		Steps: []primitives.StepConfig{
			{Step: "first", Title: "First Step"},
			{Step: "second"},
		},
	}
}

func twoStepCatalog(t *testing.T, order *[]string) *Catalog {
	t.Helper()
	c := NewCatalog()
	c.MustRegister("first", func(_ context.Context, rt *Runtime) error {
		*order = append(*order, "first")
		rt.OK("created something")
		rt.Check("sum", int64(21))
		return nil
	})
	c.MustRegister("second", func(_ context.Context, rt *Runtime) error {
		*order = append(*order, "second")
		rt.Info("still valid")
		return nil
	})
	return c
}

func TestWalkRun_OrderAndTranscript(t *testing.T) {
	var order []string
	narrator := &sinkNarrator{}
	w := NewWalk(twoStepConfig(),
		WithCatalog(twoStepCatalog(t, &order)),
		WithNarrator(narrator),
	)

	tr, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got, want := strings.Join(order, ","), "first,second"; got != want {
		t.Errorf("execution order: got %q, want %q", got, want)
	}
	if tr.RunID == "" {
		t.Error("transcript has no run ID")
	}
	if tr.WalkID != "test-walk" {
		t.Errorf("WalkID: got %q, want %q", tr.WalkID, "test-walk")
	}
	if tr.SchemaVersion != primitives.TranscriptSchemaVersion {
		t.Errorf("SchemaVersion: got %d, want %d", tr.SchemaVersion, primitives.TranscriptSchemaVersion)
	}
	if tr.FinishedAt.IsZero() {
		t.Error("FinishedAt not set")
	}
	if len(tr.Steps) != 2 {
		t.Fatalf("step records: got %d, want 2", len(tr.Steps))
	}

	first := tr.Steps[0]
	if first.Title != "First Step" {
		t.Errorf("first step title: got %q", first.Title)
	}
	if len(first.Lines) != 1 || first.Lines[0] != "created something" {
		t.Errorf("first step lines: got %v", first.Lines)
	}
	if v, ok := first.Check("sum"); !ok || v.(int64) != 21 {
		t.Errorf("first step check sum: got %v, present %v", v, ok)
	}

	// Narration mirrors the records.
	if len(narrator.begins) != 1 || narrator.begins[0] != "Test Walk" {
		t.Errorf("Begin calls: %v", narrator.begins)
	}
	if got, want := strings.Join(narrator.sections, ","), "First Step,second"; got != want {
		t.Errorf("sections: got %q, want %q", got, want)
	}
	if len(narrator.ends) != 1 {
		t.Errorf("End calls: %v", narrator.ends)
	}
}

func TestWalkRun_TranscriptLookup(t *testing.T) {
	var order []string
	w := NewWalk(twoStepConfig(), WithCatalog(twoStepCatalog(t, &order)))
	tr, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if rec, ok := tr.Step("second"); !ok || rec.Index != 1 {
		t.Errorf("Step lookup: got %+v, present %v", rec, ok)
	}
	if _, ok := tr.Step("missing"); ok {
		t.Error("lookup of missing step succeeded")
	}
}

func TestWalkRun_UnknownStep(t *testing.T) {
	config := primitives.WalkConfig{
		ID:    "test-walk",
		Steps: []primitives.StepConfig{{Step: "nonexistent"}},
	}
	w := NewWalk(config)

	_, err := w.Run(context.Background())
	if !errors.Is(err, ErrUnknownStep) {
		t.Errorf("Run error = %v, want ErrUnknownStep", err)
	}
}

func TestWalkRun_InvalidConfig(t *testing.T) {
	w := NewWalk(primitives.WalkConfig{ID: "no-steps"})
	if _, err := w.Run(context.Background()); err == nil {
		t.Error("Run accepted invalid config")
	}
}

func TestWalkRun_StepFailureAborts(t *testing.T) {
	boom := errors.New("boom")
	c := NewCatalog()
	c.MustRegister("failing", func(_ context.Context, _ *Runtime) error { return boom })
	ran := false
	c.MustRegister("after", func(_ context.Context, _ *Runtime) error {
		ran = true
		return nil
	})

	config := primitives.WalkConfig{
		ID:    "test-walk",
		Steps: []primitives.StepConfig{{Step: "failing"}, {Step: "after"}},
	}
	tr, err := NewWalk(config, WithCatalog(c)).Run(context.Background())

	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want wrapped boom", err)
	}
	if ran {
		t.Error("step after failure still ran")
	}
	if len(tr.Steps) != 1 {
		t.Errorf("partial transcript: got %d records, want 1", len(tr.Steps))
	}
}

func TestWalkRun_PublisherReceivesEvents(t *testing.T) {
	var order []string
	pub := &collectPublisher{}
	w := NewWalk(twoStepConfig(),
		WithCatalog(twoStepCatalog(t, &order)),
		WithPublisher(pub),
	)

	tr, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(pub.events) != 2 {
		t.Fatalf("events: got %d, want 2", len(pub.events))
	}
	if pub.events[0].Step != "first" || pub.events[1].Step != "second" {
		t.Errorf("event steps: %v, %v", pub.events[0].Step, pub.events[1].Step)
	}
	if pub.events[0].RunID != tr.RunID {
		t.Errorf("event run ID %q does not match transcript %q", pub.events[0].RunID, tr.RunID)
	}
	if pub.events[0].Err != "" {
		t.Errorf("successful step carries error %q", pub.events[0].Err)
	}
}

func TestWalkRun_PublisherErrorNotFatal(t *testing.T) {
	var order []string
	pub := &collectPublisher{err: errors.New("pipe broken")}
	w := NewWalk(twoStepConfig(),
		WithCatalog(twoStepCatalog(t, &order)),
		WithPublisher(pub),
	)

	if _, err := w.Run(context.Background()); err != nil {
		t.Errorf("publish failure aborted the walk: %v", err)
	}
}

func TestWalkRun_RecorderSaves(t *testing.T) {
	var order []string
	rec := &memoryRecorder{}
	w := NewWalk(twoStepConfig(),
		WithCatalog(twoStepCatalog(t, &order)),
		WithRecorder(rec),
	)

	tr, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	saved, err := rec.Load(context.Background(), tr.RunID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(saved.Steps) != len(tr.Steps) {
		t.Errorf("saved %d steps, returned %d", len(saved.Steps), len(tr.Steps))
	}
}

func TestWalkRun_RecorderErrorSurfaces(t *testing.T) {
	var order []string
	rec := &memoryRecorder{err: errors.New("disk full")}
	w := NewWalk(twoStepConfig(),
		WithCatalog(twoStepCatalog(t, &order)),
		WithRecorder(rec),
	)

	if _, err := w.Run(context.Background()); err == nil {
		t.Error("recorder failure not surfaced")
	}
}

func TestWalkRun_ContextCancelled(t *testing.T) {
	var order []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWalk(twoStepConfig(), WithCatalog(twoStepCatalog(t, &order)))
	_, err := w.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if len(order) != 0 {
		t.Errorf("steps ran under cancelled context: %v", order)
	}
}
