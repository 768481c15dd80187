// Package notifications delivers push messages emitted by the command
// handlers. Delivery is fire-and-forget: handlers enqueue after commit and
// move on, and every failure mode here ends in a log line, never in an error
// surfacing back to the delivery lifecycle.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// DefaultQueueSize is the dispatch buffer used when the configured size is
// not positive.
const DefaultQueueSize = 256

// Dispatcher is the buffered queue between command handlers and the push
// gateway. A single worker goroutine drains the buffer, resolves each
// entity id to a device token, and sends. Entities without a registered
// device are skipped.
type Dispatcher struct {
	directory ports.DeviceDirectory
	notifier  ports.Notifier
	logger    *slog.Logger

	queue chan commands.Notification
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher with the given buffer size and starts
// its delivery worker.
func NewDispatcher(
	directory ports.DeviceDirectory,
	notifier ports.Notifier,
	logger *slog.Logger,
	queueSize int,
) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		directory: directory,
		notifier:  notifier,
		logger:    logger,
		queue:     make(chan commands.Notification, queueSize),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	go d.run()
	return d
}

// Enqueue accepts a notification for delivery. Never blocks and never
// panics: when the buffer is full or the dispatcher is closed the message is
// dropped and logged. The delivery lifecycle does not wait for notification
// capacity.
func (d *Dispatcher) Enqueue(n commands.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn("dispatcher closed, dropping message",
			"entityID", n.EntityID.String(),
			"title", n.Title,
		)
		return
	}

	select {
	case d.queue <- n:
	default:
		d.logger.Warn("notification queue full, dropping message",
			"entityID", n.EntityID.String(),
			"title", n.Title,
		)
	}
}

// Close stops accepting messages and waits until the worker has drained the
// buffer. Safe to call more than once; Enqueue calls racing or following
// Close drop their message.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()

		close(d.stop)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		case <-d.stop:
			// The closed flag is set before stop is signalled, so the
			// buffer cannot grow past this point.
			for {
				select {
				case n := <-d.queue:
					d.deliver(n)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(n commands.Notification) {
	ctx := context.Background()

	token, err := d.directory.LookupDeviceToken(ctx, n.EntityID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		d.logger.Debug("no device registered, skipping notification",
			"entityID", n.EntityID.String(),
			"title", n.Title,
		)
		return
	}
	if err != nil {
		d.logger.Error("device token lookup failed",
			"entityID", n.EntityID.String(),
			"error", err,
		)
		return
	}

	if err = d.notifier.Send(ctx, token, n.Title, n.Body); err != nil {
		d.logger.Error("push delivery failed",
			"entityID", n.EntityID.String(),
			"title", n.Title,
			"error", err,
		)
	}
}
