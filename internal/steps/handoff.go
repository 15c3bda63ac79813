package steps

import (
	"context"

	"github.com/comalice/memsemx/internal/core"
	"github.com/comalice/memsemx/internal/primitives"
)

// Handoff shows what Go does where an ownership system would move a value:
// assignment copies the Buffer struct, and the slice inside the copy
// aliases the same backing array. Neither binding is invalidated.
func Handoff(ctx context.Context, rt *core.Runtime) error {
	size := sizeOrDefault(rt.Params().Size, 5)

	original := primitives.NewBuffer("buffer1", size)
	rt.OK("creating buffer %q with %d elements (live buffers: %d)",
		original.Name(), original.Len(), primitives.LiveBuffers())
	rt.Say("buffer %q backing array at %s", original.Name(), original.Addr())

	handed := original // struct copy; the slice field aliases the same array
	rt.Say("after `handed := original`, handed's backing array is at %s", handed.Addr())
	rt.Check("shares_backing", handed.SharesBacking(original))

	// Mutation through one binding is visible through the other.
	handed.Fill(1)
	rt.Say("filling through the new binding; original now reads element 0 as %d",
		original.ValueAt(0))

	rt.Info("a move-semantics language would invalidate the original binding here")
	rt.Info("Go instead copies the struct and lets both bindings alias one array")
	rt.Check("original_sees_fill", original.ValueAt(0) == 1)

	original.Release()
	rt.Freed("released through one binding; the array survives while any alias remains")
	rt.Check("alias_survives", !handed.Released() && handed.ValueAt(0) == 1)

	return nil
}
