package steps

import (
	"context"

	"github.com/comalice/memsemx/internal/core"
	"github.com/comalice/memsemx/internal/primitives"
)

// ExclusiveWrite is the exclusive mutation demonstration: fill, then scale
// the buffer through a pointer. Where a borrow checker would allow exactly
// one mutable reference, Go relies on single-goroutine discipline and the
// race detector.
func ExclusiveWrite(ctx context.Context, rt *core.Runtime) error {
	size := sizeOrDefault(rt.Params().Size, 8)
	start := startOrDefault(rt.Params().Start, 10)
	multiplier := multiplierOrDefault(rt.Params().Multiplier, 2)

	buf := primitives.NewBuffer("buffer3", size)
	rt.OK("creating buffer %q with %d elements", buf.Name(), buf.Len())

	buf.Fill(start)
	rt.OK("filled buffer %q from %d", buf.Name(), start)

	scale(rt, &buf, multiplier)

	rt.Say("buffer %q has %d elements at %s", buf.Name(), buf.Len(), buf.Addr())
	rt.Say("element 0 is now %d, element %d is now %d",
		buf.ValueAt(0), buf.Len()-1, buf.ValueAt(buf.Len()-1))
	rt.Info("two goroutines mutating through this pointer would compile fine; only `go test -race` would object")
	rt.Check("first", buf.ValueAt(0))
	rt.Check("last", buf.ValueAt(buf.Len()-1))
	rt.Check("multiplier", multiplier)

	buf.Release()
	rt.Freed("released buffer %q", buf.Name())
	return nil
}

// scale is the single writer mutating through its pointer.
func scale(rt *core.Runtime, b *primitives.Buffer, m int32) {
	b.Scale(m)
	rt.OK("scaled buffer %q by %d", b.Name(), m)
}
