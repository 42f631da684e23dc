package treesvc

import (
	"context"
	"fmt"

	"github.com/npillmayer/ordtree"
)

// EventKind tells what happened to a tree.
type EventKind int

// Kinds of tree events
const (
	Inserted EventKind = iota // a record has been inserted
	Rejected                  // an insert has been rejected, e.g. as duplicate
	Cleared                   // the tree has been cleared
)

func (k EventKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Rejected:
		return "rejected"
	case Cleared:
		return "cleared"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event describes a single mutation (or attempted mutation) of a tree.
//
// Events are published after the tree's lock has been released, so with
// concurrent writers they may be delivered out of order. Seq is taken while
// the lock is held and reflects the order in which mutations happened.
type Event struct {
	Kind    EventKind
	Variant ordtree.Variant
	Record  ordtree.Record // the record inserted or rejected; zero for Cleared
	Count   int            // records in the tree after the event; removed ones for Cleared
	Err     error          // reason for rejection
	Seq     uint64         // increasing across all trees of a service, starting at 1
}

func (e Event) String() string {
	switch e.Kind {
	case Cleared:
		return fmt.Sprintf("%s: cleared %d records", e.Variant, e.Count)
	case Rejected:
		return fmt.Sprintf("%s: rejected %v: %v", e.Variant, e.Record, e.Err)
	}
	return fmt.Sprintf("%s: %s %v, %d records", e.Variant, e.Kind, e.Record, e.Count)
}

// Subscribe registers for tree events. The returned channel is closed when
// ctx is done or the service is closed. Events are dropped for subscribers
// whose buffer (Config.EventBuffer) is full.
//
// After Close, events published before are still delivered until the channel
// is closed. Cancelling ctx drops events not yet received.
func (s *Service) Subscribe(ctx context.Context) (<-chan Event, error) {
	ch, ok := s.cast.Sub(ctx, s.cfg.EventBuffer)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan Event, s.cfg.EventBuffer)
	go func() {
		defer close(out)
		for msg := range ch {
			e, ok := msg.(Event)
			if !ok {
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (s *Service) publish(e Event) {
	if !s.cast.TryPub(e) {
		tracer().Debugf("event not published: %v", e)
	}
}
