// Buffer is the illustrative aggregate every demonstration step works on:
// a labelled int32 sequence. Steps copy it, alias it through pointers,
// mutate it, and consume it; the arithmetic it performs is deliberately
// trivial so the narration stays the point.

package primitives

import (
	"fmt"
	"sync/atomic"
)

// liveBuffers tracks buffers whose backing storage has not been released.
// Mirrors the instance counters the walkthrough narrates.
var liveBuffers atomic.Int64

// Buffer pairs an int32 sequence with a display label.
//
// Buffer is a value type on purpose: assigning one Buffer to another copies
// the struct while both copies alias the same backing array. That aliasing
// is exactly what the ownership-handoff step demonstrates, so consumers
// should not "fix" it by deep-copying on assignment. Use Clone for an
// independent copy.
type Buffer struct {
	data []int32
	name string
}

// NewBuffer allocates a zeroed buffer with the given label and size.
// A non-positive size yields a released (empty) buffer.
func NewBuffer(name string, size int) Buffer {
	if size <= 0 {
		return Buffer{name: name}
	}
	liveBuffers.Add(1)
	return Buffer{
		data: make([]int32, size),
		name: name,
	}
}

// LiveBuffers returns the number of buffers currently holding backing
// storage. Clones count; released buffers do not.
func LiveBuffers() int64 {
	return liveBuffers.Load()
}

// Name returns the buffer's display label.
func (b Buffer) Name() string { return b.name }

// Len returns the number of elements.
func (b Buffer) Len() int { return len(b.data) }

// Released reports whether the buffer no longer holds backing storage.
func (b Buffer) Released() bool { return b.data == nil }

// ValueAt returns element i. Panics on out-of-range i, the same way a raw
// slice index would; the steps never index out of range.
func (b Buffer) ValueAt(i int) int32 { return b.data[i] }

// Values returns an independent copy of the elements.
func (b Buffer) Values() []int32 {
	if b.data == nil {
		return nil
	}
	out := make([]int32, len(b.data))
	copy(out, b.data)
	return out
}

// Addr returns the address of the backing array, or "<released>" if the
// buffer no longer has one. Two buffers printing the same address share
// storage.
func (b Buffer) Addr() string {
	if len(b.data) == 0 {
		return "<released>"
	}
	return fmt.Sprintf("%p", &b.data[0])
}

// SharesBacking reports whether both buffers alias the same backing array.
func (b Buffer) SharesBacking(other Buffer) bool {
	if len(b.data) == 0 || len(other.data) == 0 {
		return false
	}
	return &b.data[0] == &other.data[0]
}

// Fill sets element i to start+i.
func (b *Buffer) Fill(start int32) {
	for i := range b.data {
		b.data[i] = start + int32(i)
	}
}

// Scale multiplies every element by m.
func (b *Buffer) Scale(m int32) {
	for i := range b.data {
		b.data[i] *= m
	}
}

// Sum returns the sum of all elements without consuming the buffer.
func (b Buffer) Sum() int64 {
	var sum int64
	for _, v := range b.data {
		sum += int64(v)
	}
	return sum
}

// CountGreater returns how many elements exceed threshold. This is the
// read-only access the shared-read step performs twice through the same
// pointer.
func (b Buffer) CountGreater(threshold int32) int {
	n := 0
	for _, v := range b.data {
		if v > threshold {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy labelled name. Mutating the clone
// never touches the original.
func (b Buffer) Clone(name string) Buffer {
	if b.data == nil {
		return Buffer{name: name}
	}
	liveBuffers.Add(1)
	out := Buffer{
		data: make([]int32, len(b.data)),
		name: name,
	}
	copy(out.data, b.data)
	return out
}

// Release drops the backing storage, leaving the buffer empty. The array
// becomes garbage once no other copy aliases it; reclamation is the GC's
// business, which is what the consuming steps narrate.
//
// Release is idempotent. Note that copies sharing the backing array are
// not affected: only this binding forgets the storage.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	b.data = nil
	liveBuffers.Add(-1)
}

// TakeSum consumes the buffer: it returns the sum of all elements and
// releases the backing storage in one operation, the closest Go spelling
// of an ownership-consuming reduction.
func (b *Buffer) TakeSum() int64 {
	sum := b.Sum()
	b.Release()
	return sum
}
