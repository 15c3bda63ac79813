// WalkConfig represents the top-level configuration of a walkthrough: an
// identifier, a display title, and the ordered list of demonstration steps
// to run. Validation ensures ID presence, a non-empty step list, and sane
// per-step parameters.

package primitives

import (
	"errors"
	"fmt"
)

// Params carries the per-step tuning knobs. Zero values mean "use the
// step's default"; negative values are invalid.
type Params struct {
	// Size is the element count of buffers the step creates.
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
	// Start is the first value used when filling a buffer.
	Start int32 `json:"start,omitempty" yaml:"start,omitempty"`
	// Multiplier scales buffer elements in mutation steps.
	Multiplier int32 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	// Count is the batch size for steps that allocate many buffers.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`
}

// StepConfig names one demonstration step and its parameters.
type StepConfig struct {
	// Step is the catalog name of the step implementation.
	Step string `json:"step" yaml:"step"`
	// Title overrides the narrated section title; empty uses the step name.
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Params Params `json:"params,omitempty" yaml:"params,omitempty"`
}

// WalkConfig defines the complete walkthrough configuration.
type WalkConfig struct {
	Version string       `json:"version,omitempty" yaml:"version,omitempty"`
	ID      string       `json:"id" yaml:"id"`
	Title   string       `json:"title,omitempty" yaml:"title,omitempty"`
	Steps   []StepConfig `json:"steps" yaml:"steps"`
}

// SectionTitle returns the narrated title for the step.
func (s StepConfig) SectionTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Step
}

// Validate validates the step configuration: a non-empty step name and
// non-negative parameters.
func (s *StepConfig) Validate() error {
	if s.Step == "" {
		return errors.New("step name is required")
	}
	if s.Params.Size < 0 {
		return fmt.Errorf("step %q: size cannot be negative", s.Step)
	}
	if s.Params.Count < 0 {
		return fmt.Errorf("step %q: count cannot be negative", s.Step)
	}
	return nil
}

// Validate validates the entire walk configuration:
// - Non-empty ID
// - At least one step
// - All individual steps validate
func (w *WalkConfig) Validate() error {
	if w.ID == "" {
		return errors.New("walk ID is required")
	}
	if len(w.Steps) == 0 {
		return errors.New("steps list is required and cannot be empty")
	}
	for i := range w.Steps {
		if err := w.Steps[i].Validate(); err != nil {
			return fmt.Errorf("step %d validation failed: %w", i, err)
		}
	}
	return nil
}
