package steps

import (
	"context"

	"github.com/comalice/memsemx/internal/core"
)

// Collections is the map ownership demonstration: insert two integer
// sequences, read one in place, then take one out. Go's delete returns
// nothing, so taking a value out is a lookup followed by a delete; the
// taken slice stays alive as long as the caller holds it.
func Collections(ctx context.Context, rt *core.Runtime) error {
	cache := map[string][]int32{}

	cache["key1"] = []int32{1, 2, 3}
	cache["key2"] = []int32{4, 5, 6}
	rt.OK("inserted %d sequences into the cache", len(cache))

	// Read without taking: the map keeps the entry.
	if values, ok := cache["key1"]; ok {
		rt.Say("cache values for %q: %v", "key1", values)
	}

	// Take the value out: lookup, then delete.
	removed, ok := cache["key2"]
	if ok {
		delete(cache, "key2")
		rt.Say("took %q out of the cache: %v", "key2", removed)
	}
	rt.Info("delete returns nothing in Go, so transferring a value out is a lookup-then-delete")

	_, still := cache["key2"]
	rt.Say("cache now holds %d entries; %q present: %v", len(cache), "key2", still)
	rt.Check("removed", removed)
	rt.Check("absent_after", !still)
	rt.Check("remaining", len(cache))

	rt.Freed("cache and the taken slice both become garbage at end of step")
	return nil
}
