package steps

import (
	"context"

	"github.com/comalice/memsemx/internal/core"
)

// Guarantees narrates what the Go runtime promises about memory safety,
// and where those promises are weaker than compile-time ownership
// checking. No data is manipulated; this step is pure commentary.
func Guarantees(ctx context.Context, rt *core.Runtime) error {
	rt.OK("no dangling pointers: anything reachable stays alive, the collector sees to it")
	rt.OK("no double free: deallocation belongs to the runtime, not the program")
	rt.OK("no use-after-free: a value you can still name has, by definition, not been freed")
	rt.Say("out-of-range indexing and nil dereference panic at runtime instead of corrupting memory")
	rt.Warn("data races are not caught at compile time; run tests with -race")
	rt.Info("ownership-checked languages prove these properties before the program runs; Go defers them to the runtime and pays with GC pauses and runtime panics")
	rt.Check("narrated", true)
	return nil
}
