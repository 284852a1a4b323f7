package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	ActionSessionCreated       = "session_created"
	ActionSessionDestroyed     = "session_destroyed"
	ActionAccessDenied         = "access_denied"
	ActionAppointmentSubmitted = "appointment_submitted"
	ActionAppointmentRejected  = "appointment_rejected"
)

type Event struct {
	SessionID string
	UserID    *uint
	Action    string
	Entity    string
	RequestID string
	Metadata  any
}

// Sink persists audit events.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

// Dispatcher writes events off the request path. A full queue drops the event.
type Dispatcher struct {
	sink   Sink
	log    *zap.Logger
	queue  chan Event
	done   chan struct{}
	closed bool
	mu     sync.RWMutex
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	return newDispatcher(sink, log, 100)
}

func newDispatcher(sink Sink, log *zap.Logger, size int) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Write(context.Background(), ev); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queue is drained or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
