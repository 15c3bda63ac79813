package steps

import "github.com/comalice/memsemx/internal/core"

// Catalog names of the standard demonstration steps.
const (
	StepHandoff        = "ownership-handoff"
	StepSharedRead     = "shared-read"
	StepExclusiveWrite = "exclusive-write"
	StepConsume        = "consume"
	StepHeapAlloc      = "heap-alloc"
	StepCollections    = "collections"
	StepGuarantees     = "guarantees"
	StepLifecycle      = "lifecycle"
	StepMassAlloc      = "mass-alloc"
)

// DefaultCatalog returns a catalog with every standard step registered.
func DefaultCatalog() *core.Catalog {
	c := core.NewCatalog()
	c.MustRegister(StepHandoff, Handoff)
	c.MustRegister(StepSharedRead, SharedRead)
	c.MustRegister(StepExclusiveWrite, ExclusiveWrite)
	c.MustRegister(StepConsume, Consume)
	c.MustRegister(StepHeapAlloc, HeapAlloc)
	c.MustRegister(StepCollections, Collections)
	c.MustRegister(StepGuarantees, Guarantees)
	c.MustRegister(StepLifecycle, Lifecycle)
	c.MustRegister(StepMassAlloc, MassAlloc)
	return c
}

func sizeOrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func countOrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func startOrDefault(v, def int32) int32 {
	if v == 0 {
		return def
	}
	return v
}

func multiplierOrDefault(v, def int32) int32 {
	if v == 0 {
		return def
	}
	return v
}
