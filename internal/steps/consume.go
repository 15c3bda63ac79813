package steps

import (
	"context"

	"github.com/comalice/memsemx/internal/core"
	"github.com/comalice/memsemx/internal/primitives"
)

// Consume is the ownership-consumption demonstration: the buffer is reduced
// to a sum and its storage released in one operation. Filling from 1 over N
// elements, the sum is N*(N+1)/2.
func Consume(ctx context.Context, rt *core.Runtime) error {
	size := sizeOrDefault(rt.Params().Size, 6)
	start := startOrDefault(rt.Params().Start, 1)

	buf := primitives.NewBuffer("buffer4", size)
	rt.OK("creating buffer %q with %d elements", buf.Name(), buf.Len())
	buf.Fill(start)
	rt.OK("filled buffer %q from %d", buf.Name(), start)

	sum := buf.TakeSum()
	rt.OK("buffer %q consumed, sum = %d", buf.Name(), sum)
	rt.Say("final sum: %d", sum)
	rt.Check("sum", sum)
	rt.Check("released", buf.Released())

	rt.Info("a consuming operation would end the value's lifetime at compile time")
	rt.Freed("here the binding forgets its storage and the array becomes garbage for the collector")
	return nil
}
