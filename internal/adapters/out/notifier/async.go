package notifier

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/ports"
)

const defaultQueueSize = 256

// AsyncDispatcher decouples notification delivery from the request path. The
// enqueue never blocks: when the queue is full the notification is dropped
// and logged, which is acceptable under the best-effort contract. A single
// worker goroutine drains the queue, so deliveries for one process are
// serialized.
//
// Dispatch always returns nil; delivery failures surface only in the logs.
type AsyncDispatcher struct {
	delegate ports.NotificationDispatcher
	logger   *slog.Logger

	queue chan ports.Notification
	stop  chan struct{}
	done  sync.WaitGroup
}

// NewAsyncDispatcher wraps delegate with an asynchronous queue. Start must be
// called before the first Dispatch.
func NewAsyncDispatcher(
	delegate ports.NotificationDispatcher,
	logger *slog.Logger,
) *AsyncDispatcher {
	return &AsyncDispatcher{
		delegate: delegate,
		logger:   logger,
		queue:    make(chan ports.Notification, defaultQueueSize),
		stop:     make(chan struct{}),
	}
}

// Start launches the delivery worker.
func (d *AsyncDispatcher) Start() {
	d.done.Add(1)
	go d.run()
}

// Stop drains the queue and waits for the worker to finish. Notifications
// enqueued after Stop are dropped.
func (d *AsyncDispatcher) Stop() {
	close(d.stop)
	d.done.Wait()
}

// Dispatch enqueues the notification and returns immediately. The error is
// always nil; a full queue drops the notification with a log entry.
func (d *AsyncDispatcher) Dispatch(_ context.Context, notification ports.Notification) error {
	select {
	case <-d.stop:
		d.logger.Warn("notification dropped, dispatcher stopped",
			"order_id", notification.OrderID, "type", notification.Type)
	case d.queue <- notification:
	default:
		d.logger.Warn("notification dropped, queue full",
			"order_id", notification.OrderID, "type", notification.Type)
	}
	return nil
}

func (d *AsyncDispatcher) run() {
	defer d.done.Done()

	for {
		select {
		case notification := <-d.queue:
			d.deliver(notification)
		case <-d.stop:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case notification := <-d.queue:
					d.deliver(notification)
				default:
					return
				}
			}
		}
	}
}

func (d *AsyncDispatcher) deliver(notification ports.Notification) {
	if err := d.delegate.Dispatch(context.Background(), notification); err != nil {
		d.logger.Warn("notification delivery failed",
			"order_id", notification.OrderID,
			"type", notification.Type,
			"error", err,
		)
	}
}
