package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"quizadmin/internal/domain"
	"quizadmin/internal/fingerprint"
)

// settle is how long the file must stay quiet before a change is reported.
const settle = 100 * time.Millisecond

// Watch reports edits made to the document by other processes. After each
// burst of filesystem activity settles, onChange receives the newly loaded
// document, or the load error if the file is now unreadable. Writes made
// through this store are not reported. Errors raised by the watcher while
// running, such as a queue overflow, are passed to onChange and watching
// continues. Watch blocks until ctx is done and returns an error only when
// the watch cannot be set up.
func (s *TreeFileStore) Watch(ctx context.Context, onChange func(domain.Document, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Saves rename a temp file over the target, so watch the directory.
	target := filepath.Clean(s.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}
	s.watchLoop(ctx, w.Events, w.Errors, onChange)
	return nil
}

func (s *TreeFileStore) watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	onChange func(domain.Document, error),
) {
	target := filepath.Clean(s.path)
	seen := s.currentSum()
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target || ev.Op == fsnotify.Chmod {
				continue
			}
			timer.Reset(settle)

		case err, ok := <-errs:
			if !ok {
				return
			}
			onChange(domain.Document{}, fmt.Errorf("watch %s: %w", target, err))
			// Events may have been lost; recheck the file once things settle.
			timer.Reset(settle)

		case <-timer.C:
			sum := s.currentSum()
			if sum == seen || sum == s.lastWritten() {
				seen = sum
				continue
			}
			seen = sum
			onChange(s.Load(ctx))
		}
	}
}

// currentSum fingerprints the file as it is now; "" when it cannot be read.
func (s *TreeFileStore) currentSum() string {
	b, err := readFile(s.path)
	if err != nil || b == nil {
		return ""
	}
	return fingerprint.Sum(b)
}

func (s *TreeFileStore) lastWritten() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}
