package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type closeRecorder struct{ closed chan struct{} }

func (c *closeRecorder) Close() { close(c.closed) }

func TestDrainWorker_WaitsForWorker(t *testing.T) {
	intake := &closeRecorder{closed: make(chan struct{})}
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})

	// The worker finishes once intake closes, without being cancelled.
	go func() {
		defer close(workerDone)
		<-intake.closed
		time.Sleep(20 * time.Millisecond)
		assert.NoError(t, workerCtx.Err(), "worker cancelled while still draining")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.True(t, drainWorker(ctx, intake, workerDone, stopWorker))
	assert.Error(t, workerCtx.Err(), "worker context released afterwards")
}

func TestDrainWorker_CancelsAfterGrace(t *testing.T) {
	intake := &closeRecorder{closed: make(chan struct{})}
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})

	go func() {
		defer close(workerDone)
		<-workerCtx.Done()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.False(t, drainWorker(ctx, intake, workerDone, stopWorker))
	select {
	case <-intake.closed:
	default:
		t.Fatal("intake was not closed")
	}
}
