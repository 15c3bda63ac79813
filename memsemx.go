// Package memsemx runs narrated walkthroughs of Go memory semantics: short
// demonstration steps that copy, alias, mutate, consume, and heap-allocate
// toy data while explaining what the runtime does where an
// ownership-checked language would enforce rules at compile time.
//
// The package is a facade over the internal tiers: primitives (the Buffer
// aggregate and walk configs), core (the sequential step runner and its
// pluggable interfaces), steps (the demonstrations), and production
// (console narration, transcript recorders, event publishing).
//
// Typical use:
//
//	walk := memsemx.New(memsemx.StandardWalk(),
//		memsemx.WithNarrator(production.NewConsoleNarrator(os.Stdout)))
//	transcript, err := walk.Run(ctx)
package memsemx

import (
	"time"

	"github.com/comalice/memsemx/internal/core"
	"github.com/comalice/memsemx/internal/primitives"
	"github.com/comalice/memsemx/internal/steps"
)

// Engine types, re-exported for callers outside internal.
type (
	Walk       = core.Walk
	Option     = core.Option
	Catalog    = core.Catalog
	StepFunc   = core.StepFunc
	Runtime    = core.Runtime
	Narrator   = core.Narrator
	Recorder   = core.Recorder
	Publisher  = core.Publisher
	Logger     = core.Logger
	LineKind   = core.LineKind
	Transcript = core.Transcript
	StepRecord = core.StepRecord
	StepEvent  = core.StepEvent

	WalkConfig = primitives.WalkConfig
	StepConfig = primitives.StepConfig
	Params     = primitives.Params
)

// Narration line kinds.
const (
	KindText  = core.KindText
	KindOK    = core.KindOK
	KindFreed = core.KindFreed
	KindInfo  = core.KindInfo
	KindWarn  = core.KindWarn
)

// Standard step names.
const (
	StepHandoff        = steps.StepHandoff
	StepSharedRead     = steps.StepSharedRead
	StepExclusiveWrite = steps.StepExclusiveWrite
	StepConsume        = steps.StepConsume
	StepHeapAlloc      = steps.StepHeapAlloc
	StepCollections    = steps.StepCollections
	StepGuarantees     = steps.StepGuarantees
	StepLifecycle      = steps.StepLifecycle
	StepMassAlloc      = steps.StepMassAlloc
)

var (
	ErrUnknownStep = core.ErrUnknownStep
	ErrStepExists  = core.ErrStepExists
)

// New creates a Walk for the given configuration, resolving step names
// against the default catalog. Options may override any component,
// including the catalog itself.
func New(config WalkConfig, opts ...Option) *Walk {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, core.WithCatalog(steps.DefaultCatalog()))
	all = append(all, opts...)
	return core.NewWalk(config, all...)
}

// DefaultCatalog returns a catalog with every standard step registered.
// Callers extending the walkthrough register their own steps on it.
func DefaultCatalog() *Catalog { return steps.DefaultCatalog() }

// NewCatalog returns an empty step catalog.
func NewCatalog() *Catalog { return core.NewCatalog() }

// WithCatalog configures the Walk with a custom step catalog.
func WithCatalog(c *Catalog) Option { return core.WithCatalog(c) }

// WithNarrator configures the Walk with a custom Narrator.
func WithNarrator(n Narrator) Option { return core.WithNarrator(n) }

// WithRecorder configures the Walk with a transcript Recorder.
func WithRecorder(r Recorder) Option { return core.WithRecorder(r) }

// WithPublisher configures the Walk with a step-event Publisher.
func WithPublisher(p Publisher) Option { return core.WithPublisher(p) }

// WithLogger configures the Walk with a diagnostic Logger.
func WithLogger(l Logger) Option { return core.WithLogger(l) }

// WithClock overrides the Walk's time source.
func WithClock(clock func() time.Time) Option { return core.WithClock(clock) }

// StandardWalk returns the full demonstration sequence: the seven classic
// memory-mechanics steps plus the scope/lifetime and batch-allocation
// studies, in teaching order.
func StandardWalk() WalkConfig {
	return WalkConfig{
		ID:    "memory-walk",
		Title: "GO: Memory Management with a Garbage Collector",
		Steps: []StepConfig{
			{Step: StepHandoff, Title: "Ownership Handoff"},
			{Step: StepSharedRead, Title: "Shared Read Access"},
			{Step: StepExclusiveWrite, Title: "Exclusive Mutation"},
			{Step: StepConsume, Title: "Consuming a Value"},
			{Step: StepHeapAlloc, Title: "Heap Allocation"},
			{Step: StepCollections, Title: "Collections and Ownership"},
			{Step: StepLifecycle, Title: "Scope and Lifetime"},
			{Step: StepMassAlloc, Title: "Mass Allocation and the Collector"},
			{Step: StepGuarantees, Title: "Memory Safety Guarantees"},
		},
	}
}
