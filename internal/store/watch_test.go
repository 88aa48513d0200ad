package store_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizadmin/internal/domain"
	"quizadmin/internal/store"
)

type change struct {
	doc domain.Document
	err error
}

func startWatch(t *testing.T, s *store.TreeFileStore) <-chan change {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan change, 16)
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, func(doc domain.Document, err error) {
			changes <- change{doc: doc, err: err}
		})
	}()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	return changes
}

// touchUntilSeen rewrites the file from outside until the watcher reports it,
// which also proves the watcher is live.
func touchUntilSeen(t *testing.T, path string, changes <-chan change) change {
	t.Helper()
	var got change
	n := 0
	require.Eventually(t, func() bool {
		select {
		case got = <-changes:
			return true
		default:
		}
		n++
		body := fmt.Sprintf(`{"domains":[{"id":%d,"name":"external","categories":[]}]}`, n)
		assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return false
	}, 5*time.Second, 150*time.Millisecond)
	return got
}

func TestWatch_ReportsExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := store.NewTreeFileStore(path)
	changes := startWatch(t, s)

	got := touchUntilSeen(t, path, changes)
	require.NoError(t, got.err)
	require.Len(t, got.doc.Domains, 1)
	assert.Equal(t, "external", got.doc.Domains[0].Name)
}

func TestWatch_IgnoresOwnWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := store.NewTreeFileStore(path)
	changes := startWatch(t, s)
	touchUntilSeen(t, path, changes)

	// Drain anything queued by the last external write.
	time.Sleep(300 * time.Millisecond)
	for len(changes) > 0 {
		<-changes
	}

	err := s.Update(context.Background(), func(doc *domain.Document) error {
		doc.Domains = append(doc.Domains, domain.Domain{ID: 99, Name: "internal"})
		return nil
	})
	require.NoError(t, err)

	select {
	case c := <-changes:
		t.Fatalf("own write reported: %+v", c)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatch_ReportsCorruptEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := store.NewTreeFileStore(path)
	changes := startWatch(t, s)
	touchUntilSeen(t, path, changes)

	require.NoError(t, os.WriteFile(path, []byte(`{"domains": nul`), 0o644))
	require.Eventually(t, func() bool {
		select {
		case c := <-changes:
			return errors.Is(c.err, domain.ErrCorruptStore)
		default:
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatch_MissingDirectory(t *testing.T) {
	s := store.NewTreeFileStore(filepath.Join(t.TempDir(), "gone", "db.json"))
	err := s.Watch(context.Background(), func(domain.Document, error) {})
	assert.Error(t, err)
}
