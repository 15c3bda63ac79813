package steps

import (
	"context"
	"runtime"

	"github.com/comalice/memsemx/internal/core"
)

const largeBlockSize = 1 << 20 // 1 MiB

// HeapAlloc is the heap allocation demonstration: a boxed scalar via new,
// then a large block. Go has no Box type; escape analysis decides where an
// allocation lives, and the collector reclaims it once unreachable.
func HeapAlloc(ctx context.Context, rt *core.Runtime) error {
	boxed := new(int32)
	*boxed = 42
	rt.Say("boxed value: %d at %p", *boxed, boxed)
	rt.Info("new(T) always yields a pointer; whether the int32 lives on stack or heap is the escape analyzer's call, not the program's")
	rt.Check("boxed", *boxed)

	large := make([]byte, largeBlockSize)
	rt.OK("large block (1 MiB) allocated on the heap at %p", &large[0])
	rt.Check("large_len", len(large))

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	rt.Say("heap in use: %d KiB", ms.HeapAlloc/1024)

	large = nil
	_ = large
	rt.Freed("reference dropped; the block is collectable whenever the GC next runs")
	rt.Info("there is no delete or free to forget, and no double free to commit")
	return nil
}
