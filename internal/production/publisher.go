package production

import (
	"context"

	"github.com/comalice/memsemx/internal/core"
)

// ChannelPublisher forwards step events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- core.StepEvent
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- core.StepEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event core.StepEvent) error {
	select {
	case p.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
