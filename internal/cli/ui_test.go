package cli

import (
	"io"
	"sync"
	"testing"

	"github.com/briandowns/spinner"

	"github.com/agbru/u128calc/internal/progress"
)

// fakeSpinner records spinner lifecycle calls without touching the terminal.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func withFakeSpinner(t *testing.T) *fakeSpinner {
	t.Helper()
	fake := &fakeSpinner{}
	original := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	t.Cleanup(func() { newSpinner = original })
	return fake
}

func TestDisplayProgressConsumesUpdates(t *testing.T) {
	fake := withFakeSpinner(t)

	progressChan := make(chan progress.ProgressUpdate, 8)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 2, io.Discard)

	progressChan <- progress.ProgressUpdate{WorkerIndex: 0, Value: 0.5}
	progressChan <- progress.ProgressUpdate{WorkerIndex: 1, Value: 1.0}
	close(progressChan)
	wg.Wait()

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if !fake.started {
		t.Error("spinner was never started")
	}
	if !fake.stopped {
		t.Error("spinner was never stopped")
	}
	if len(fake.suffixes) < 2 {
		t.Errorf("expected at least 2 suffix updates, got %d", len(fake.suffixes))
	}
}

func TestDisplayProgressZeroWorkersDrains(t *testing.T) {
	withFakeSpinner(t)

	progressChan := make(chan progress.ProgressUpdate, 4)
	progressChan <- progress.ProgressUpdate{WorkerIndex: 0, Value: 0.3}
	close(progressChan)

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		DisplayProgress(&wg, progressChan, 0, io.Discard)
	}()
	<-done
	// Channel drained without panicking or blocking.
}
