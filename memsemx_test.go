// End-to-end tests: the standard walk through the public facade with the
// test doubles standing in for console and disk.
package memsemx

import (
	"context"
	"strings"
	"testing"

	"github.com/comalice/memsemx/testutil"
)

func TestStandardWalkRuns(t *testing.T) {
	narrator := &testutil.SinkNarrator{}
	recorder := &testutil.MemoryRecorder{}
	publisher := &testutil.CollectPublisher{}

	walk := New(StandardWalk(),
		WithNarrator(narrator),
		WithRecorder(recorder),
		WithPublisher(publisher),
	)

	transcript, err := walk.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(transcript.Steps) != 9 {
		t.Errorf("steps run: got %d, want 9", len(transcript.Steps))
	}
	if len(publisher.Events) != 9 {
		t.Errorf("events published: got %d, want 9", len(publisher.Events))
	}
	if _, err := recorder.Load(context.Background(), transcript.RunID); err != nil {
		t.Errorf("transcript not recorded: %v", err)
	}

	// The narrated sections follow the configured teaching order.
	wantSections := []string{
		"Ownership Handoff",
		"Shared Read Access",
		"Exclusive Mutation",
		"Consuming a Value",
		"Heap Allocation",
		"Collections and Ownership",
		"Scope and Lifetime",
		"Mass Allocation and the Collector",
		"Memory Safety Guarantees",
	}
	if got, want := strings.Join(narrator.Sections, "|"), strings.Join(wantSections, "|"); got != want {
		t.Errorf("sections:\n got %s\nwant %s", got, want)
	}
	if len(narrator.Begins) != 1 || !strings.Contains(narrator.Begins[0], "Memory Management") {
		t.Errorf("walk banner: %v", narrator.Begins)
	}
	if len(narrator.Ends) != 1 {
		t.Errorf("End calls: %v", narrator.Ends)
	}
}

func TestStandardWalkChecks(t *testing.T) {
	walk := New(StandardWalk(), WithNarrator(&testutil.SinkNarrator{}))
	transcript, err := walk.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	consume, ok := transcript.Step(StepConsume)
	if !ok {
		t.Fatal("consume record missing")
	}
	// Default consume step fills 1..6: sum is 21.
	if sum, ok := consume.Check("sum"); !ok || sum.(int64) != 21 {
		t.Errorf("consume sum: got %v, present %v", sum, ok)
	}

	collections, ok := transcript.Step(StepCollections)
	if !ok {
		t.Fatal("collections record missing")
	}
	if absent, ok := collections.Check("absent_after"); !ok || absent.(bool) != true {
		t.Errorf("collections absent_after: got %v, present %v", absent, ok)
	}

	handoff, ok := transcript.Step(StepHandoff)
	if !ok {
		t.Fatal("handoff record missing")
	}
	if shares, ok := handoff.Check("shares_backing"); !ok || shares.(bool) != true {
		t.Errorf("handoff shares_backing: got %v, present %v", shares, ok)
	}
}

func TestNewUnknownStepSurfaces(t *testing.T) {
	config := WalkConfig{
		ID:    "bad-walk",
		Steps: []StepConfig{{Step: "does-not-exist"}},
	}
	if _, err := New(config).Run(context.Background()); err == nil {
		t.Error("unknown step did not error")
	}
}

func TestCustomCatalogOverride(t *testing.T) {
	catalog := NewCatalog()
	ran := false
	catalog.MustRegister("custom", func(_ context.Context, rt *Runtime) error {
		ran = true
		rt.Say("custom step")
		return nil
	})

	config := WalkConfig{ID: "custom-walk", Steps: []StepConfig{{Step: "custom"}}}
	if _, err := New(config, WithCatalog(catalog)).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !ran {
		t.Error("custom step did not run")
	}
}
