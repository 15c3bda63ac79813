package steps

import (
	"context"

	"github.com/comalice/memsemx/internal/core"
	"github.com/comalice/memsemx/internal/primitives"
)

// SharedRead is the shared, read-only access demonstration: two readers
// inspect the same buffer through a pointer and the buffer stays valid and
// unchanged. Go permits any number of such readers; the discipline that
// they only read is the program's, not the compiler's.
func SharedRead(ctx context.Context, rt *core.Runtime) error {
	size := sizeOrDefault(rt.Params().Size, 5)
	start := startOrDefault(rt.Params().Start, 1)

	buf := primitives.NewBuffer("buffer2", size)
	rt.OK("creating buffer %q with %d elements", buf.Name(), buf.Len())
	buf.Fill(start)
	rt.OK("filled buffer %q from %d", buf.Name(), start)

	count1 := readPositive(rt, &buf)
	count2 := readPositive(rt, &buf)
	rt.Say("counts: %d, %d", count1, count2)
	rt.Check("count_first", count1)
	rt.Check("count_second", count2)

	rt.Say("buffer %q still has %d elements at %s", buf.Name(), buf.Len(), buf.Addr())
	rt.Info("any number of readers may hold a pointer at once; read-only-ness is a convention here, not a compiler rule")
	rt.Check("still_valid", !buf.Released())

	buf.Release()
	rt.Freed("released buffer %q", buf.Name())
	return nil
}

// readPositive is the read-only access both "borrows" perform.
func readPositive(rt *core.Runtime, b *primitives.Buffer) int {
	rt.Say("processing buffer %q through a read-only view...", b.Name())
	return b.CountGreater(0)
}
