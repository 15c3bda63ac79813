package steps

import (
	"context"
	"runtime"
	"time"

	"github.com/comalice/memsemx/internal/core"
	"github.com/comalice/memsemx/internal/primitives"
)

// cleanupWait bounds how long the step waits for the collector to run the
// registered cleanup. The collector owes us nothing on a schedule.
const cleanupWait = 250 * time.Millisecond

// Lifecycle is the scope-and-lifetime demonstration: a buffer used inside
// a scope, a cleanup registered where a destructor would be, the reference
// dropped, and the collector invited to run. Unlike a Drop impl or a
// destructor, the cleanup is best effort: the step reports either outcome.
func Lifecycle(ctx context.Context, rt *core.Runtime) error {
	size := sizeOrDefault(rt.Params().Size, 50)
	start := startOrDefault(rt.Params().Start, 1)

	collected := make(chan struct{})

	buf := new(primitives.Buffer)
	*buf = primitives.NewBuffer("scoped", size)
	rt.OK("creating buffer %q with %d elements", buf.Name(), buf.Len())
	buf.Fill(start)
	rt.Say("inside scope, sum: %d", buf.Sum())
	rt.Check("scoped_sum", buf.Sum())

	// The closest Go gets to a destructor. It may run late or, in a short
	// program, never.
	runtime.AddCleanup(buf, func(ch chan struct{}) { close(ch) }, collected)
	rt.Info("registered a cleanup where a destructor would be")

	buf.Release()
	buf = nil
	_ = buf
	rt.Say("reference dropped; the buffer is now unreachable")

	runtime.GC()
	select {
	case <-collected:
		rt.Freed("collector ran the cleanup: buffer reclaimed")
		rt.Check("cleanup_ran", true)
	case <-time.After(cleanupWait):
		rt.Info("collector has not run the cleanup yet; it is under no obligation to")
		rt.Check("cleanup_ran", false)
	}

	rt.Info("deterministic destruction is exactly what Go trades away for a collector")
	return nil
}
