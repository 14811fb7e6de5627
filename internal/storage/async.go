package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrArchiveQueueFull = errors.New("archive queue full")

// Archiver stores a copy of an export file.
type Archiver interface {
	Archive(ctx context.Context, key string, body []byte) error
}

type archiveJob struct {
	key  string
	body []byte
}

// AsyncArchiver hands uploads to a single background worker so an export
// download never waits on object storage. When the queue is full the job
// is dropped and reported to the caller.
type AsyncArchiver struct {
	next    Archiver
	log     *zap.Logger
	queue   chan archiveJob
	timeout time.Duration
	done    chan struct{}
}

func NewAsyncArchiver(next Archiver, size int, log *zap.Logger) *AsyncArchiver {
	a := &AsyncArchiver{
		next:    next,
		log:     log,
		queue:   make(chan archiveJob, size),
		timeout: 30 * time.Second,
		done:    make(chan struct{}),
	}

	go a.worker()
	return a
}

func (a *AsyncArchiver) worker() {
	defer close(a.done)

	for job := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		if err := a.next.Archive(ctx, job.key, job.body); err != nil {
			a.log.Warn("export archive failed", zap.String("key", job.key), zap.Error(err))
		}
		cancel()
	}
}

// Archive enqueues the upload. ctx is not used by the upload itself since
// it outlives the request.
func (a *AsyncArchiver) Archive(_ context.Context, key string, body []byte) error {
	select {
	case a.queue <- archiveJob{key: key, body: body}:
		return nil
	default:
		return ErrArchiveQueueFull
	}
}

// Close stops accepting jobs and waits for queued uploads to finish.
func (a *AsyncArchiver) Close() {
	close(a.queue)
	<-a.done
}
