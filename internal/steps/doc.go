// Package steps implements the demonstration steps of the memory-semantics
// walkthrough. Each step is a single illustrative function: it builds toy
// data, performs one memory mechanic (copying, aliasing, exclusive
// mutation, consumption, heap allocation, map ownership), and narrates what
// the Go runtime actually does where an ownership-checked language would
// enforce rules at compile time.
//
// Steps are independent: no step reads another step's output, and every
// buffer a step creates is released or made unreachable before the step
// returns.
package steps
