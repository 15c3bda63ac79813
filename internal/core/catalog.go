// Package core defines the Catalog that maps step names to their
// implementations.
package core

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// StepFunc is one demonstration step. It narrates through the Runtime and
// returns an error only for genuine failures; the toy manipulations
// themselves cannot fail.
type StepFunc func(ctx context.Context, rt *Runtime) error

var (
	ErrUnknownStep = errors.New("step not found in catalog")
	ErrStepExists  = errors.New("step already registered")
)

// Catalog is a named registry of step implementations.
type Catalog struct {
	mu    sync.RWMutex
	steps map[string]StepFunc
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{steps: make(map[string]StepFunc)}
}

// Register adds a step under name. Registering the same name twice is an
// error.
func (c *Catalog) Register(name string, fn StepFunc) error {
	if name == "" {
		return errors.New("step name is required")
	}
	if fn == nil {
		return errors.New("step func is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.steps[name]; exists {
		return ErrStepExists
	}
	c.steps[name] = fn
	return nil
}

// MustRegister is Register that panics on error. Intended for package-level
// catalog assembly where a failure is a programming error.
func (c *Catalog) MustRegister(name string, fn StepFunc) {
	if err := c.Register(name, fn); err != nil {
		panic("catalog: " + name + ": " + err.Error())
	}
}

// Lookup returns the step registered under name.
func (c *Catalog) Lookup(name string) (StepFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.steps[name]
	return fn, ok
}

// Names returns all registered step names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.steps))
	for name := range c.steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
