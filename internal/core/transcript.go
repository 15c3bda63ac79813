package core

import (
	"time"
)

// Transcript is the serializable record of one walk execution.
type Transcript struct {
	RunID         string       `json:"runID" yaml:"runID"`
	WalkID        string       `json:"walkID" yaml:"walkID"`
	Title         string       `json:"title,omitempty" yaml:"title,omitempty"`
	SchemaVersion int          `json:"schemaVersion" yaml:"schemaVersion"`
	ConfigVersion string       `json:"configVersion" yaml:"configVersion"`
	StartedAt     time.Time    `json:"startedAt" yaml:"startedAt"`
	FinishedAt    time.Time    `json:"finishedAt,omitempty" yaml:"finishedAt,omitempty"`
	Steps         []StepRecord `json:"steps" yaml:"steps"`
}

// StepRecord captures one executed step: its narration lines and the
// observable values the step chose to record (sums, counts, addresses).
type StepRecord struct {
	Step      string         `json:"step" yaml:"step"`
	Title     string         `json:"title" yaml:"title"`
	Index     int            `json:"index" yaml:"index"`
	StartedAt time.Time      `json:"startedAt" yaml:"startedAt"`
	Duration  time.Duration  `json:"duration" yaml:"duration"`
	Lines     []string       `json:"lines,omitempty" yaml:"lines,omitempty"`
	Checks    map[string]any `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// Check returns a recorded observable by name.
func (r *StepRecord) Check(name string) (any, bool) {
	v, ok := r.Checks[name]
	return v, ok
}

// StepEvent announces a completed step to a Publisher.
type StepEvent struct {
	RunID    string        `json:"runID" yaml:"runID"`
	WalkID   string        `json:"walkID" yaml:"walkID"`
	Step     string        `json:"step" yaml:"step"`
	Index    int           `json:"index" yaml:"index"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Err      string        `json:"err,omitempty" yaml:"err,omitempty"`
}

// Step returns the record for the named step, if present.
func (t *Transcript) Step(name string) (*StepRecord, bool) {
	for i := range t.Steps {
		if t.Steps[i].Step == name {
			return &t.Steps[i], true
		}
	}
	return nil, false
}
