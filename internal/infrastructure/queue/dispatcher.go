package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/demobank/banking-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// LogSink is the destination log entries are drained to.
type LogSink interface {
	Insert(ctx context.Context, entry domain.LogEntry) error
}

// LogDispatcher writes request log entries asynchronously through a fixed set
// of workers, keeping the log insert off the request path. Entries for the
// same description hash to the same worker. A full worker channel drops the
// entry: the log is opportunistic and must never block a request.
type LogDispatcher struct {
	workers []chan domain.LogEntry
	sink    LogSink
	log     zerolog.Logger
}

// NewLogDispatcher creates a LogDispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewLogDispatcher(numWorkers int, sink LogSink, log zerolog.Logger) *LogDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &LogDispatcher{
		workers: make([]chan domain.LogEntry, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.LogEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *LogDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an entry to its worker without blocking; entries are dropped
// when the worker is saturated.
func (d *LogDispatcher) Enqueue(entry domain.LogEntry) {
	select {
	case d.workers[d.shardIndex(entry.Description)] <- entry:
	default:
		d.log.Warn().Str("description", entry.Description).Msg("log entry dropped, worker saturated")
	}
}

// shardIndex maps a description deterministically to a worker index.
func (d *LogDispatcher) shardIndex(description string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(description))
	return int(h.Sum32()) % len(d.workers)
}

func (d *LogDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.LogEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Insert(ctx, entry); err != nil {
				d.log.Warn().Err(err).
					Str("description", entry.Description).
					Int("worker_id", id).
					Msg("log insert failed")
			}
		}
	}
}
