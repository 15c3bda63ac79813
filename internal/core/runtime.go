package core

import (
	"fmt"

	"github.com/comalice/memsemx/internal/primitives"
)

// Runtime is the per-step execution context handed to a StepFunc. It
// narrates lines (mirroring them into the step's transcript record) and
// records the step's observable check values.
//
// Not safe for concurrent use; a step runs on a single goroutine.
type Runtime struct {
	walkID   string
	config   primitives.StepConfig
	narrator Narrator
	logger   Logger
	record   *StepRecord
}

// WalkID returns the ID of the walk the step runs in.
func (rt *Runtime) WalkID() string { return rt.walkID }

// Params returns the step's configured parameters.
func (rt *Runtime) Params() primitives.Params { return rt.config.Params }

// Logger returns the engine's diagnostic logger.
func (rt *Runtime) Logger() Logger { return rt.logger }

// Say narrates a plain commentary line.
func (rt *Runtime) Say(format string, args ...any) {
	rt.line(KindText, format, args...)
}

// OK narrates a creation or success line.
func (rt *Runtime) OK(format string, args ...any) {
	rt.line(KindOK, format, args...)
}

// Freed narrates a storage-release line.
func (rt *Runtime) Freed(format string, args ...any) {
	rt.line(KindFreed, format, args...)
}

// Info narrates a neutral explanatory line.
func (rt *Runtime) Info(format string, args ...any) {
	rt.line(KindInfo, format, args...)
}

// Warn narrates a caveat line.
func (rt *Runtime) Warn(format string, args ...any) {
	rt.line(KindWarn, format, args...)
}

// Check records an observable value under name, for tests and transcripts.
func (rt *Runtime) Check(name string, value any) {
	if rt.record.Checks == nil {
		rt.record.Checks = make(map[string]any)
	}
	rt.record.Checks[name] = value
}

func (rt *Runtime) line(kind LineKind, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	rt.narrator.Line(kind, text)
	rt.record.Lines = append(rt.record.Lines, text)
}
