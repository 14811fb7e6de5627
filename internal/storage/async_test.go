package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
)

type blockingArchiver struct {
	mu      sync.Mutex
	keys    []string
	release chan struct{}
}

func (b *blockingArchiver) Archive(_ context.Context, key string, _ []byte) error {
	<-b.release
	b.mu.Lock()
	b.keys = append(b.keys, key)
	b.mu.Unlock()
	return nil
}

func TestAsyncArchiverDrainsOnClose(t *testing.T) {
	next := &blockingArchiver{release: make(chan struct{})}
	close(next.release)

	a := NewAsyncArchiver(next, 4, zap.NewNop())
	for _, k := range []string{"a", "b", "c"} {
		if err := a.Archive(context.Background(), k, nil); err != nil {
			t.Fatal(err)
		}
	}
	a.Close()

	if len(next.keys) != 3 {
		t.Errorf("archived = %v", next.keys)
	}
}

func TestAsyncArchiverQueueFull(t *testing.T) {
	next := &blockingArchiver{release: make(chan struct{})}
	a := NewAsyncArchiver(next, 1, zap.NewNop())

	// one job may be held by the worker, one sits in the queue
	var full bool
	for i := 0; i < 3; i++ {
		if err := a.Archive(context.Background(), "k", nil); errors.Is(err, ErrArchiveQueueFull) {
			full = true
		}
	}
	if !full {
		t.Error("expected queue full error")
	}

	close(next.release)
	a.Close()
}
