// Package primitives provides the foundational, zero-dependency data types
// for the walkthrough engine.
//
// This package uses ONLY the Go standard library. It holds the illustrative
// Buffer aggregate that the demonstration steps copy, alias, mutate, and
// consume, plus the declarative WalkConfig that describes which steps run
// and with which parameters.
//
// Core invariants:
//   - Buffer arithmetic is deterministic: Fill(start) sets element i to
//     start+i, Scale(m) multiplies every element by m.
//   - Configs are plain serializable values (yaml/json tags) validated
//     before a walk runs.
package primitives
